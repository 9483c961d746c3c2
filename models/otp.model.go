package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP is a one time login code. Codes are stored bcrypt-hashed; the plain
// code only ever travels in the mail to the user.
type OTP struct {
	gorm.Model
	UserType    string    `gorm:"size:20;index:idx_otp_login" json:"user_type"`
	Identifier  string    `gorm:"size:100;index:idx_otp_login" json:"identifier"` // RC no / Aadhaar / email / application id
	CodeHash    string    `gorm:"size:100;not null" json:"-"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	IsUsed      bool      `gorm:"default:false" json:"is_used"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
}
