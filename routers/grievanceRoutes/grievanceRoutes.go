package grievanceRoutes

import (
	grievanceController "janseva/controllers/grievance"
	"janseva/middleware"
	grievanceValidator "janseva/validators/grievance"

	"github.com/gofiber/fiber/v2"
)

func SetupGrievanceRoutes(app *fiber.App) {
	grievanceGroup := app.Group("/api/grievances")

	grievanceGroup.Post("/", grievanceValidator.Create(), grievanceController.CreateGrievance)
	grievanceGroup.Get("/",
		middleware.JWTMiddleware,
		middleware.RequireUserType("admin"),
		grievanceController.GetAllGrievances)
	grievanceGroup.Get("/:id", grievanceController.GetGrievance)
}
