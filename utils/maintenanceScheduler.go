package utils

import (
	"log"
	"time"

	"janseva/config"
	"janseva/database"
	"janseva/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeMaintenanceScheduler sets up daily housekeeping: expired OTP rows
// are purged and applicants with long-pending applications get a reminder.
func InitializeMaintenanceScheduler() {
	log.Println("[MAINTENANCE-SCHEDULER] Initializing maintenance scheduler...")

	c := cron.New()

	// Run daily at 6 AM IST
	c.AddFunc("0 6 * * *", func() {
		log.Println("[MAINTENANCE-SCHEDULER] Running daily maintenance...")
		PurgeExpiredOTPs()
		RemindPendingApplications()
	})

	c.Start()
	log.Println("[MAINTENANCE-SCHEDULER] Maintenance scheduler started - runs daily at 6 AM IST")
}

// PurgeExpiredOTPs deletes login codes that are used or past expiry.
func PurgeExpiredOTPs() {
	db := database.Database.Db

	res := db.Unscoped().
		Where("expires_at < ? OR is_used = true", time.Now()).
		Delete(&models.OTP{})
	if res.Error != nil {
		log.Printf("[MAINTENANCE-SCHEDULER] Error purging OTP rows: %v", res.Error)
		return
	}
	log.Printf("[MAINTENANCE-SCHEDULER] Purged %d expired OTP rows", res.RowsAffected)
}

// RemindPendingApplications mails the head of family of every application
// pending past the review window.
func RemindPendingApplications() {
	db := database.Database.Db
	cutoff := now.BeginningOfDay().AddDate(0, 0, -config.AppConfig.PendingReviewDays)

	var apps []models.RCApplication
	if err := db.Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Find(&apps).Error; err != nil {
		log.Printf("[MAINTENANCE-SCHEDULER] Error fetching pending applications: %v", err)
		return
	}

	log.Printf("[MAINTENANCE-SCHEDULER] Found %d applications pending past review window", len(apps))

	for _, app := range apps {
		var members []models.Member
		if err := db.Where("owner_type = ? AND owner_ref = ?", models.OwnerApplication, app.ApplicationID).
			Order("seq asc").Find(&members).Error; err != nil {
			log.Printf("[MAINTENANCE-SCHEDULER] Error fetching members for %s: %v", app.ApplicationID, err)
			continue
		}

		email := headOfFamilyEmail(members)
		if email == "" {
			continue
		}

		days := int(time.Since(app.CreatedAt).Hours() / 24)
		SendPendingReminderEmail(email, app.ApplicationID, days)
	}
}

func headOfFamilyEmail(members []models.Member) string {
	for _, m := range members {
		if m.Relation == "Self" && m.Email != "" {
			return m.Email
		}
	}
	for _, m := range members {
		if m.Relation == "Head" && m.Email != "" {
			return m.Email
		}
	}
	for _, m := range members {
		if m.Email != "" {
			return m.Email
		}
	}
	return ""
}
