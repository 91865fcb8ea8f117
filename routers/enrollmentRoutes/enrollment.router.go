package enrollmentRoutes

import (
	enrollmentControllers "internhub/controllers/enrollment"
	"internhub/middleware"
	enrollmentValidators "internhub/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	app.Post("/internship/:id/enroll", middleware.JWTMiddleware, enrollmentValidators.EnrollInternship(), enrollmentControllers.EnrollInInternship)
	app.Post("/enrollment/:id/task/:task_id/submit", middleware.JWTMiddleware, enrollmentValidators.SubmitTask(), enrollmentControllers.SubmitTask)
}
