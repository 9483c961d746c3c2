package geoRoutes

import (
	geoController "janseva/controllers/geo"
	geoValidator "janseva/validators/geo"

	"github.com/gofiber/fiber/v2"
)

func SetupGeoRoutes(app *fiber.App) {
	app.Post("/api/get-coordinates", geoValidator.Coordinates(), geoController.GetCoordinates)
}
