package geoValidator

import (
	"strings"

	"janseva/middleware"

	"github.com/gofiber/fiber/v2"
)

type CoordinatesRequest struct {
	Country      string `json:"country"`
	State        string `json:"state"`
	District     string `json:"district"`
	TalukaTehsil string `json:"taluka_tehsil"`
}

// Coordinates validator middleware
func Coordinates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoordinatesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		for field, value := range map[string]string{
			"country":       reqData.Country,
			"state":         reqData.State,
			"district":      reqData.District,
			"taluka_tehsil": reqData.TalukaTehsil,
		} {
			if strings.TrimSpace(value) == "" {
				errors[field] = "All fields are required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCoordinates", reqData)
		return c.Next()
	}
}
