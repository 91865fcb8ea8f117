package taskRoutes

import (
	taskControllers "internhub/controllers/task"
	"internhub/middleware"
	taskValidators "internhub/validators/task"

	"github.com/gofiber/fiber/v2"
)

func SetupTaskRoutes(app *fiber.App) {
	taskGroup := app.Group("/task")

	taskGroup.Get("/", middleware.JWTMiddleware, taskControllers.GetTasks)
	taskGroup.Get("/:id", middleware.JWTMiddleware, taskValidators.TaskID(), taskControllers.GetTaskById)

	// Writes are admin only
	taskGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), taskValidators.CreateOrUpdateTask(), taskControllers.CreateTask)
	taskGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), taskValidators.TaskID(), taskValidators.CreateOrUpdateTask(), taskControllers.UpdateTask)
	taskGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), taskValidators.TaskID(), taskControllers.DeleteTask)
}
