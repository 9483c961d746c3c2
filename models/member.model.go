package models

import (
	"gorm.io/gorm"
)

// Owner types for member rows.
const (
	OwnerApplication = "application"
	OwnerBeneficiary = "beneficiary"
)

// Member is one person on an application or ration card. Rows are keyed by
// their owning record's composite identifier. The unique index on
// (owner_type, aadhar_no) lets the database back up the duplicate check: an
// Aadhaar can appear on at most one application and at most one card.
type Member struct {
	gorm.Model
	OwnerType string `gorm:"size:12;not null;index:idx_member_owner;uniqueIndex:idx_owner_aadhar" json:"-"`
	OwnerRef  string `gorm:"size:18;not null;index:idx_member_owner" json:"-"`
	Seq       int    `gorm:"not null" json:"-"`
	MemberID  string `gorm:"size:18;index" json:"member_id,omitempty"` // set for beneficiary members only
	AadharNo  string `gorm:"size:12;not null;uniqueIndex:idx_owner_aadhar" json:"aadhar_no"`
	Relation  string `gorm:"size:20" json:"relation"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Mobile    string `gorm:"size:15" json:"mobile,omitempty"`
	DOB       string `gorm:"size:10" json:"dob,omitempty"`
	Gender    string `gorm:"size:10" json:"gender,omitempty"`
}
