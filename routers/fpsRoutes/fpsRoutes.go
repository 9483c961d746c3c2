package fpsRoutes

import (
	fpsController "janseva/controllers/fps"
	fpsValidator "janseva/validators/fps"

	"github.com/gofiber/fiber/v2"
)

func SetupFPSRoutes(app *fiber.App) {
	app.Post("/api/nearby-fps", fpsValidator.Nearby(), fpsController.GetNearbyFPS)
}
