package geoController

import (
	"log"

	"janseva/middleware"
	"janseva/utils"
	geoValidator "janseva/validators/geo"

	"github.com/gofiber/fiber/v2"
)

// GetCoordinates forward-geocodes an address down to taluka level.
func GetCoordinates(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCoordinates").(*geoValidator.CoordinatesRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lat, lng, err := utils.NewOpenCageClient().Coordinates(
		reqData.Country, reqData.State, reqData.District, reqData.TalukaTehsil)
	if err != nil {
		log.Println("Geocoding failed:", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Could not resolve coordinates for this address!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coordinates fetched successfully!", fiber.Map{
		"latitude":  lat,
		"longitude": lng,
	})
}
