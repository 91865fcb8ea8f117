package userRoutes

import (
	authControllers "internhub/controllers/auth"
	enrollmentControllers "internhub/controllers/enrollment"
	"internhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, authControllers.GetProfile)
	userGroup.Get("/enrollments", middleware.JWTMiddleware, enrollmentControllers.GetUserEnrollments)
}
