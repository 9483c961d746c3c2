package authRoutes

import (
	authController "janseva/controllers/auth"
	authValidator "janseva/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/generate-otp", authValidator.GenerateOTP(), authController.GenerateOTP)
	authGroup.Post("/verify-otp", authValidator.VerifyOTP(), authController.VerifyOTP)
}
