package applicationValidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func household(members ...MemberPayload) *CreateRequest {
	return &CreateRequest{
		State:    "Maharashtra",
		District: "Pune",
		CardType: "APL",
		Members:  members,
	}
}

func TestValidateHousehold(t *testing.T) {
	errors := ValidateHousehold(household(MemberPayload{AadharNo: "111122223333", Name: "Asha"}))
	assert.Empty(t, errors)
}

func TestValidateHouseholdMissingFields(t *testing.T) {
	errors := ValidateHousehold(&CreateRequest{})
	assert.Contains(t, errors, "state")
	assert.Contains(t, errors, "district")
	assert.Contains(t, errors, "card_type")
	assert.Contains(t, errors, "members")
}

func TestValidateHouseholdAadhaar(t *testing.T) {
	errors := ValidateHousehold(household(MemberPayload{Name: "Asha"}))
	assert.Contains(t, errors, "aadhar_no")

	errors = ValidateHousehold(household(MemberPayload{AadharNo: "12345", Name: "Asha"}))
	assert.Equal(t, "Aadhaar number must be exactly 12 digits!", errors["aadhar_no"])

	errors = ValidateHousehold(household(MemberPayload{AadharNo: "11112222333X", Name: "Asha"}))
	assert.Contains(t, errors, "aadhar_no")
}
