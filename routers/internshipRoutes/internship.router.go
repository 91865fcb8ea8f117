package internshipRoutes

import (
	internshipControllers "internhub/controllers/internship"
	"internhub/middleware"
	internshipValidators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

func SetupInternshipRoutes(app *fiber.App) {
	internshipGroup := app.Group("/internship")

	internshipGroup.Get("/", middleware.JWTMiddleware, internshipControllers.GetInternships)
	internshipGroup.Get("/:id", middleware.JWTMiddleware, internshipValidators.InternshipID(), internshipControllers.GetInternshipById)

	// Writes are admin only
	internshipGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), internshipValidators.CreateOrUpdateInternship(), internshipControllers.CreateInternship)
	internshipGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), internshipValidators.InternshipID(), internshipValidators.CreateOrUpdateInternship(), internshipControllers.UpdateInternship)
	internshipGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), internshipValidators.InternshipID(), internshipControllers.DeleteInternship)
}
