package enrollmentValidator

import (
	"internhub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// EnrollInternship validates the :id path parameter for enrolling
func EnrollInternship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid internship id!", nil)
		}

		c.Locals("internshipID", id)
		return c.Next()
	}
}

// SubmitTask validates the submission path parameters and body
func SubmitTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := strconv.Atoi(c.Params("id"))
		if err != nil || enrollmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
		}

		taskID, err := strconv.Atoi(c.Params("task_id"))
		if err != nil || taskID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
		}

		reqData := new(struct {
			GithubLink string `json:"githubLink"`
			LiveLink   string `json:"liveLink"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// The link's validity is judged later by review, not here
		if strings.TrimSpace(reqData.GithubLink) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"githubLink": "GitHub link is required!",
			})
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("taskID", taskID)
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
