package models

import (
	"gorm.io/gorm"
)

// Grievance is a citizen complaint. Uploaded documents keep only their
// metadata in the database; the base64 payloads are never stored.
type Grievance struct {
	gorm.Model
	ReferenceID        string `gorm:"size:36;uniqueIndex;not null" json:"reference_id"`
	Category           string `gorm:"size:100;not null" json:"category"`
	DetailDescription  string `gorm:"type:text;not null" json:"detail_description"`
	ContactNo          string `gorm:"size:15;not null" json:"contact_no"`
	Email              string `gorm:"size:100;not null" json:"email"`
	AdditionalInfo     string `gorm:"type:text" json:"additional_info,omitempty"`
	SupportedDocuments string `gorm:"type:json" json:"supported_documents"`
	Status             string `gorm:"size:20;default:'open'" json:"status"`
	IsDeleted          bool   `gorm:"default:false" json:"is_deleted"`
}
