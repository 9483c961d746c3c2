package models

import (
	"gorm.io/gorm"
)

// AadharCard mirrors the national identity registry entries the portal can
// look up during beneficiary login.
type AadharCard struct {
	gorm.Model
	AadharNo string `gorm:"size:12;uniqueIndex;not null" json:"aadhar_no"`
	Name     string `json:"name"`
	Email    string `gorm:"size:100" json:"email"`
	Mobile   string `gorm:"size:15" json:"mobile"`
	DOB      string `gorm:"size:10" json:"dob"`
	Address  string `json:"address"`
}

// Admin is a department operator who can decide applications.
type Admin struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	IsDeleted bool   `gorm:"default:false" json:"is_deleted"`
}
