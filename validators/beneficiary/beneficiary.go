package beneficiaryValidator

import (
	"janseva/middleware"
	applicationValidator "janseva/validators/application"

	"github.com/gofiber/fiber/v2"
)

// Create validator middleware. Beneficiary creation takes the same household
// payload as an application submission.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(applicationValidator.CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := applicationValidator.ValidateHousehold(reqData)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBeneficiary", reqData)
		return c.Next()
	}
}
