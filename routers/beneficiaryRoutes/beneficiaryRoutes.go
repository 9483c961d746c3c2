package beneficiaryRoutes

import (
	beneficiaryController "janseva/controllers/beneficiary"
	"janseva/middleware"
	beneficiaryValidator "janseva/validators/beneficiary"

	"github.com/gofiber/fiber/v2"
)

func SetupBeneficiaryRoutes(app *fiber.App) {
	beneficiaryGroup := app.Group("/api/beneficiaries")

	beneficiaryGroup.Post("/create",
		middleware.JWTMiddleware,
		middleware.RequireUserType("admin"),
		beneficiaryValidator.Create(),
		beneficiaryController.CreateBeneficiary)
	beneficiaryGroup.Get("/all", beneficiaryController.GetAllBeneficiaries)
}
