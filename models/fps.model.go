package models

import (
	"gorm.io/gorm"
)

// FPSShop is a fair price shop where card holders collect rations.
type FPSShop struct {
	gorm.Model
	FPSID        string   `gorm:"size:20;uniqueIndex;not null" json:"fps_id"`
	FPSName      string   `json:"fps_name"`
	Email        string   `gorm:"size:100;index" json:"email"`
	Mobile       string   `gorm:"size:15" json:"mobile"`
	State        string   `json:"state"`
	District     string   `json:"district"`
	TalukaTehsil string   `json:"taluka_tehsil"`
	Village      string   `json:"village"`
	AddressLine1 string   `json:"address_line1"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	IsDeleted    bool     `gorm:"default:false" json:"is_deleted"`
}

// DeliveryAgent delivers rations from an FPS to households.
type DeliveryAgent struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `gorm:"size:100;uniqueIndex" json:"email"`
	Mobile    string `gorm:"size:15" json:"mobile"`
	FPSID     string `gorm:"size:20;index" json:"fps_id"`
	IsDeleted bool   `gorm:"default:false" json:"is_deleted"`
}
