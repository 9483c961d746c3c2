package models

import (
	"gorm.io/gorm"
)

// Application status values. An application starts pending and moves exactly
// once to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// RCApplication is a citizen's ration card application. Family members are
// stored as normalized rows in the members table, keyed by owner.
type RCApplication struct {
	gorm.Model
	ApplicationID string   `gorm:"size:12;uniqueIndex;not null" json:"application_id"`
	Country       string   `json:"country"`
	State         string   `json:"state"`
	District      string   `json:"district"`
	TalukaTehsil  string   `json:"taluka_tehsil"`
	Village       string   `json:"village"`
	StateCode     string   `gorm:"size:4" json:"state_code"`
	DistrictCode  string   `gorm:"size:4" json:"district_code"`
	CardType      string   `gorm:"size:50" json:"card_type"`
	FPSID         string   `gorm:"size:20" json:"fps_id"`
	TotalMembers  int      `json:"total_members"`
	Status        string   `gorm:"size:10;default:'pending'" json:"status"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Members       []Member `gorm:"-" json:"members"`
	IsDeleted     bool     `gorm:"default:false" json:"is_deleted"`
}
