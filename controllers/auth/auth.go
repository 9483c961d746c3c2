package authController

import (
	"errors"
	"log"
	"regexp"
	"time"

	"janseva/config"
	"janseva/database"
	"janseva/middleware"
	"janseva/models"
	"janseva/services/ration"
	"janseva/utils"
	authValidator "janseva/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var aadhaarRegex = regexp.MustCompile(`^\d{12}$`)

// GenerateOTP resolves the caller's registered email from their identifier
// and mails a one time login code to it.
func GenerateOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOTPRequest").(*authValidator.GenerateOTPRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	email, err := resolveEmail(reqData.UserType, reqData.Identifier)
	if err != nil {
		log.Println("Failed to resolve login email:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again later!", nil)
	}
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No registered email found for this identifier!", nil)
	}

	otp := utils.GenerateOTP()
	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash OTP:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again later!", nil)
	}

	record := models.OTP{
		UserType:    reqData.UserType,
		Identifier:  reqData.Identifier,
		CodeHash:    string(hash),
		ExpiresAt:   time.Now().Add(time.Duration(config.AppConfig.OTPExpiryMinutes) * time.Minute),
		Description: "Login OTP for " + reqData.UserType,
	}
	if err := database.Database.Db.Create(&record).Error; err != nil {
		log.Println("Failed to store OTP:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again later!", nil)
	}

	if err := utils.SendOTPEmail(otp, email); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP email, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully!", fiber.Map{
		"email": utils.MaskEmail(email),
	})
}

// VerifyOTP checks the submitted code and issues a session token.
func VerifyOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOTPVerify").(*authValidator.VerifyOTPRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var record models.OTP
	err := database.Database.Db.
		Where("user_type = ? AND identifier = ? AND is_used = ? AND expires_at > ?",
			reqData.UserType, reqData.Identifier, false, time.Now()).
		Order("id desc").
		First(&record).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired OTP!", nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(reqData.OTP)) != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired OTP!", nil)
	}

	// A verified code, and any older ones for the same login, are done.
	if err := database.Database.Db.
		Model(&models.OTP{}).
		Where("user_type = ? AND identifier = ?", reqData.UserType, reqData.Identifier).
		Update("is_used", true).Error; err != nil {
		log.Println("Failed to mark OTP as used:", err)
	}

	token, err := middleware.GenerateJWT(reqData.UserType, reqData.Identifier)
	if err != nil {
		log.Println("Failed to sign session token:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again later!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":     token,
		"user_type": reqData.UserType,
	})
}

// resolveEmail finds the registered email for a login identifier. Returns ""
// when nothing matches.
func resolveEmail(userType, identifier string) (string, error) {
	switch userType {
	case "beneficiary":
		if aadhaarRegex.MatchString(identifier) {
			return beneficiaryEmailByAadhaar(identifier)
		}
		return householdEmail(models.OwnerBeneficiary, identifier)
	case "application":
		return householdEmail(models.OwnerApplication, identifier)
	case "fps":
		var shop models.FPSShop
		if err := database.Database.Db.Where("fps_id = ? OR email = ?", identifier, identifier).First(&shop).Error; err != nil {
			return "", ignoreNotFound(err)
		}
		return shop.Email, nil
	case "agent":
		var agent models.DeliveryAgent
		if err := database.Database.Db.Where("email = ?", identifier).First(&agent).Error; err != nil {
			return "", ignoreNotFound(err)
		}
		return agent.Email, nil
	case "admin":
		var admin models.Admin
		if err := database.Database.Db.Where("email = ?", identifier).First(&admin).Error; err != nil {
			return "", ignoreNotFound(err)
		}
		return admin.Email, nil
	}
	return "", nil
}

// beneficiaryEmailByAadhaar prefers the member's own email, then the
// identity registry entry for that Aadhaar.
func beneficiaryEmailByAadhaar(aadharNo string) (string, error) {
	var member models.Member
	err := database.Database.Db.
		Where("owner_type = ? AND aadhar_no = ?", models.OwnerBeneficiary, aadharNo).
		First(&member).Error
	if err == nil && member.Email != "" {
		return member.Email, nil
	}
	if err != nil {
		if e := ignoreNotFound(err); e != nil {
			return "", e
		}
	}

	var card models.AadharCard
	err = database.Database.Db.Where("aadhar_no = ?", aadharNo).First(&card).Error
	if err != nil {
		return "", ignoreNotFound(err)
	}
	return card.Email, nil
}

// householdEmail resolves the head of family's email for an RC no or
// application id.
func householdEmail(ownerType, ownerRef string) (string, error) {
	var members []models.Member
	err := database.Database.Db.
		Where("owner_type = ? AND owner_ref = ?", ownerType, ownerRef).
		Order("seq asc").
		Find(&members).Error
	if err != nil {
		return "", err
	}
	if len(members) == 0 {
		return "", nil
	}
	return ration.HeadOfFamily(members).Email, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
