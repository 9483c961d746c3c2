package applicationRoutes

import (
	applicationController "janseva/controllers/application"
	"janseva/middleware"
	applicationValidator "janseva/validators/application"

	"github.com/gofiber/fiber/v2"
)

func SetupApplicationRoutes(app *fiber.App) {
	applicationGroup := app.Group("/api/rc-applications")

	applicationGroup.Post("/create", applicationValidator.Create(), applicationController.CreateRCApplication)
	applicationGroup.Get("/all", applicationController.GetAllRCApplications)
	applicationGroup.Patch("/:id/decide",
		middleware.JWTMiddleware,
		middleware.RequireUserType("admin"),
		applicationValidator.Decide(),
		applicationController.DecideApplication)
}
