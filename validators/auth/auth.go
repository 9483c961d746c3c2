package authValidator

import (
	"strings"

	"janseva/middleware"

	"github.com/gofiber/fiber/v2"
)

var userTypes = map[string]bool{
	"beneficiary": true,
	"fps":         true,
	"agent":       true,
	"admin":       true,
	"application": true,
}

type GenerateOTPRequest struct {
	UserType   string `json:"user_type"`
	Identifier string `json:"identifier"` // RC no / Aadhaar / email / application id
}

type VerifyOTPRequest struct {
	UserType   string `json:"user_type"`
	Identifier string `json:"identifier"`
	OTP        string `json:"otp"`
}

// GenerateOTP validator middleware
func GenerateOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GenerateOTPRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !userTypes[reqData.UserType] {
			errors["user_type"] = "Invalid user type!"
		}
		if strings.TrimSpace(reqData.Identifier) == "" {
			errors["identifier"] = "Identifier is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOTPRequest", reqData)
		return c.Next()
	}
}

// VerifyOTP validator middleware
func VerifyOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyOTPRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !userTypes[reqData.UserType] {
			errors["user_type"] = "Invalid user type!"
		}
		if strings.TrimSpace(reqData.Identifier) == "" {
			errors["identifier"] = "Identifier is required!"
		}
		if strings.TrimSpace(reqData.OTP) == "" {
			errors["otp"] = "OTP code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOTPVerify", reqData)
		return c.Next()
	}
}
