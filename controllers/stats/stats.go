package statsController

import (
	"log"

	"janseva/database"
	"janseva/middleware"
	"janseva/models"

	"github.com/gofiber/fiber/v2"
)

// GetStats reports portal-wide headline counts.
func GetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalApplications, pending, approved, rejected, totalBeneficiaries, totalGrievances int64

	counts := []func() error{
		func() error {
			return db.Model(&models.RCApplication{}).Where("is_deleted = ?", false).Count(&totalApplications).Error
		},
		func() error {
			return db.Model(&models.RCApplication{}).Where("is_deleted = ? AND status = ?", false, models.StatusPending).Count(&pending).Error
		},
		func() error {
			return db.Model(&models.RCApplication{}).Where("is_deleted = ? AND status = ?", false, models.StatusApproved).Count(&approved).Error
		},
		func() error {
			return db.Model(&models.RCApplication{}).Where("is_deleted = ? AND status = ?", false, models.StatusRejected).Count(&rejected).Error
		},
		func() error {
			return db.Model(&models.Beneficiary{}).Where("is_deleted = ?", false).Count(&totalBeneficiaries).Error
		},
		func() error {
			return db.Model(&models.Grievance{}).Where("is_deleted = ?", false).Count(&totalGrievances).Error
		},
	}
	for _, count := range counts {
		if err := count(); err != nil {
			log.Println("Failed to compute stats:", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"total_applications":    totalApplications,
		"pending_applications":  pending,
		"approved_applications": approved,
		"rejected_applications": rejected,
		"total_beneficiaries":   totalBeneficiaries,
		"total_grievances":      totalGrievances,
	})
}

type cardTypeCount struct {
	CardType string `json:"card_type"`
	Total    int64  `json:"total"`
}

// GetStatsPerType breaks down issued cards and applications by card type.
func GetStatsPerType(c *fiber.Ctx) error {
	db := database.Database.Db

	var applicationsPerType []cardTypeCount
	if err := db.Model(&models.RCApplication{}).
		Select("card_type, COUNT(*) as total").
		Where("is_deleted = ?", false).
		Group("card_type").
		Scan(&applicationsPerType).Error; err != nil {
		log.Println("Failed to compute per-type stats:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	var beneficiariesPerType []cardTypeCount
	if err := db.Model(&models.Beneficiary{}).
		Select("card_type, COUNT(*) as total").
		Where("is_deleted = ?", false).
		Group("card_type").
		Scan(&beneficiariesPerType).Error; err != nil {
		log.Println("Failed to compute per-type stats:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Per-type stats fetched successfully!", fiber.Map{
		"applications_per_type":  applicationsPerType,
		"beneficiaries_per_type": beneficiariesPerType,
	})
}

// GetRationCardTypes lists the card categories citizens can apply for.
func GetRationCardTypes(c *fiber.Ctx) error {
	var types []models.RationCardType
	if err := database.Database.Db.Order("id asc").Find(&types).Error; err != nil {
		log.Println("Failed to fetch ration card types:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ration card types!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ration card types fetched successfully!", fiber.Map{
		"total": len(types),
		"types": types,
	})
}
