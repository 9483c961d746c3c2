package statsRoutes

import (
	statsController "janseva/controllers/stats"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(app *fiber.App) {
	app.Get("/api/stats", statsController.GetStats)
	app.Get("/api/stats-per-type", statsController.GetStatsPerType)
	app.Get("/api/ration-card-types", statsController.GetRationCardTypes)
}
