package models

import (
	"gorm.io/gorm"
)

// StatusActive is the operational flag a freshly issued ration card carries.
const StatusActive = "Active"

// Beneficiary is an issued ration card household, created when an application
// is approved or entered directly by an operator.
type Beneficiary struct {
	gorm.Model
	RCNo         string   `gorm:"size:16;uniqueIndex;not null" json:"rc_no"`
	Country      string   `json:"country"`
	State        string   `json:"state"`
	District     string   `json:"district"`
	TalukaTehsil string   `json:"taluka_tehsil"`
	Village      string   `json:"village"`
	StateCode    string   `gorm:"size:4" json:"state_code"`
	DistrictCode string   `gorm:"size:4" json:"district_code"`
	CardType     string   `gorm:"size:50" json:"card_type"`
	FPSID        string   `gorm:"size:20" json:"fps_id"`
	TotalMembers int      `json:"total_members"`
	Status       string   `gorm:"size:20;default:'Active'" json:"status"`
	IssuedBy     string   `json:"issued_by"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Members      []Member `gorm:"-" json:"members"`
	IsDeleted    bool     `gorm:"default:false" json:"is_deleted"`
}
