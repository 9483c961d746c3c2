package applicationValidator

import (
	"regexp"
	"strings"

	"janseva/middleware"

	"github.com/gofiber/fiber/v2"
)

var aadhaarRegex = regexp.MustCompile(`^\d{12}$`)

// MemberPayload is one family member in a submission.
type MemberPayload struct {
	AadharNo string `json:"aadhar_no"`
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
}

// CreateRequest is a household submission, shared by application and
// beneficiary creation.
type CreateRequest struct {
	Country      string          `json:"country"`
	State        string          `json:"state"`
	District     string          `json:"district"`
	TalukaTehsil string          `json:"taluka_tehsil"`
	Village      string          `json:"village"`
	CardType     string          `json:"card_type"`
	FPSID        string          `json:"fps_id"`
	IssuedBy     string          `json:"issued_by"`
	Members      []MemberPayload `json:"members"`
}

type DecideRequest struct {
	Decision string `json:"decision"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := ValidateHousehold(reqData)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}

// Decide validator middleware
func Decide() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DecideRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		decision := strings.ToLower(strings.TrimSpace(reqData.Decision))
		if decision == "" {
			errors["decision"] = "Decision is required!"
		} else if decision != "approved" && decision != "rejected" {
			errors["decision"] = "Decision must be approved or rejected!"
		}
		reqData.Decision = decision

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDecision", reqData)
		return c.Next()
	}
}

// ValidateHousehold collects field errors for a household payload. The
// beneficiary validator reuses it.
func ValidateHousehold(reqData *CreateRequest) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(reqData.State) == "" {
		errors["state"] = "State is required!"
	}
	if strings.TrimSpace(reqData.District) == "" {
		errors["district"] = "District is required!"
	}
	if strings.TrimSpace(reqData.CardType) == "" {
		errors["card_type"] = "Card type is required!"
	}
	if len(reqData.Members) == 0 {
		errors["members"] = "At least one family member is required!"
	}
	for _, m := range reqData.Members {
		no := strings.TrimSpace(m.AadharNo)
		if no == "" {
			errors["aadhar_no"] = "Each member must have an Aadhaar number!"
			break
		}
		if !aadhaarRegex.MatchString(no) {
			errors["aadhar_no"] = "Aadhaar number must be exactly 12 digits!"
			break
		}
	}

	return errors
}
