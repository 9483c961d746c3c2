package fpsValidator

import (
	"janseva/middleware"

	"github.com/gofiber/fiber/v2"
)

type NearbyRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Nearby validator middleware
func Nearby() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(NearbyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Latitude == nil {
			errors["latitude"] = "Latitude is required!"
		}
		if reqData.Longitude == nil {
			errors["longitude"] = "Longitude is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNearby", reqData)
		return c.Next()
	}
}
