package models

import (
	"gorm.io/gorm"
)

// RationCardType is a card category (e.g. APL, BPL, AAY) with its income
// eligibility criteria.
type RationCardType struct {
	gorm.Model
	CardTypeName      string `gorm:"size:50;uniqueIndex;not null" json:"card_type_name"`
	Description       string `json:"description"`
	EligibilityIncome string `gorm:"size:100" json:"eligibility_income"`
}
