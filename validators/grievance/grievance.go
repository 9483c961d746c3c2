package grievanceValidator

import (
	"regexp"
	"strings"

	"janseva/middleware"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type DocumentPayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Data string `json:"data"`
}

type CreateRequest struct {
	Category           string            `json:"category"`
	DetailDescription  string            `json:"detail_description"`
	ContactNo          string            `json:"contact_no"`
	Email              string            `json:"email"`
	AdditionalInfo     string            `json:"additional_info"`
	SupportedDocuments []DocumentPayload `json:"supported_documents"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if strings.TrimSpace(reqData.DetailDescription) == "" {
			errors["detail_description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.ContactNo) == "" {
			errors["contact_no"] = "Contact number is required!"
		}
		if reqData.Email == "" || !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrievance", reqData)
		return c.Next()
	}
}
