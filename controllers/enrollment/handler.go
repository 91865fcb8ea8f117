package enrollmentController

import (
	"errors"
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"internhub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// EnrollInInternship enrolls the authenticated user into an internship.
func EnrollInInternship(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	internshipID := c.Locals("internshipID").(int)

	enrollment, err := EnrollUser(database.Database.Db, userID, uint(internshipID))
	if err != nil {
		switch {
		case errors.Is(err, ErrInternshipNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
		case errors.Is(err, ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this internship!", nil)
		default:
			log.Printf("Error enrolling user %d in internship %d: %v", userID, internshipID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in internship!", nil)
		}
	}

	utils.SendEnrollmentEmail(user.Email, user.Name, enrollment.Internship.Title, enrollment.EndDate)
	utils.RenderWelcomeImage(user.Name, enrollment.Internship.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in internship successfully!", enrollment)
}

// SubmitTask records the GitHub and live links for one task of the
// authenticated user's enrollment and puts it into review.
func SubmitTask(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	taskID := c.Locals("taskID").(int)
	reqData := c.Locals("validatedSubmission").(*struct {
		GithubLink string `json:"githubLink"`
		LiveLink   string `json:"liveLink"`
	})

	submission, err := SubmitTaskLink(database.Database.Db, userID, uint(enrollmentID), uint(taskID), reqData.GithubLink, reqData.LiveLink)
	if err != nil {
		switch {
		case errors.Is(err, ErrEnrollmentNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		case errors.Is(err, ErrTaskNotInEnrollment):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found in enrollment!", nil)
		default:
			log.Printf("Error submitting task %d for enrollment %d: %v", taskID, enrollmentID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit task!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "GitHub link submitted successfully!", submission)
}

// GetUserEnrollments lists the authenticated user's enrollments. Review of
// overdue submissions happens as a side effect, so the response always
// reflects settled review state.
func GetUserEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	enrollments, err := ListAndReview(database.Database.Db, userID)
	if err != nil {
		log.Printf("Error listing enrollments for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}
