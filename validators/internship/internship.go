package internshipValidator

import (
	"internhub/middleware"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// InternshipID validates the :id path parameter
func InternshipID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid internship id!", nil)
		}

		c.Locals("internshipID", id)
		return c.Next()
	}
}

// CreateOrUpdateInternship validates the internship payload for create and update
func CreateOrUpdateInternship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3"`
			Description string `json:"description" validate:"required"`
			MediaURL    string `json:"mediaUrl" validate:"omitempty,url"`
			TaskIDs     []uint `json:"taskIds" validate:"required,min=1,dive,gt=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Failed validation: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInternship", reqData)
		return c.Next()
	}
}
