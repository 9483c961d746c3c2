package models

import (
	"gorm.io/gorm"
)

// State master row. Codes feed composite id generation.
type State struct {
	gorm.Model
	StateName string `gorm:"size:100;uniqueIndex;not null" json:"state_name"`
	StateCode string `gorm:"size:4;not null" json:"state_code"`
}

// District master row.
type District struct {
	gorm.Model
	DistrictName string `gorm:"size:100;uniqueIndex;not null" json:"district_name"`
	DistrictCode string `gorm:"size:4;not null" json:"district_code"`
	StateCode    string `gorm:"size:4;index" json:"state_code"`
}
