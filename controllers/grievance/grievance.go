package grievanceController

import (
	"encoding/json"
	"log"

	"janseva/database"
	"janseva/middleware"
	"janseva/models"
	"janseva/utils"
	grievanceValidator "janseva/validators/grievance"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// documentMeta is what gets persisted per uploaded file. The data field is
// truncated to a short preview; full payloads never hit the database.
type documentMeta struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	DataPreview string `json:"data_preview,omitempty"`
}

// CreateGrievance registers a citizen complaint and mails an acknowledgment.
func CreateGrievance(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGrievance").(*grievanceValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	docs := make([]documentMeta, 0, len(reqData.SupportedDocuments))
	for _, d := range reqData.SupportedDocuments {
		preview := d.Data
		if len(preview) > 100 {
			preview = preview[:100]
		}
		docs = append(docs, documentMeta{
			Name:        d.Name,
			Type:        d.Type,
			Size:        d.Size,
			DataPreview: preview,
		})
	}
	docsJSON, err := json.Marshal(docs)
	if err != nil {
		log.Println("Failed to encode grievance documents:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again later!", nil)
	}

	grievance := models.Grievance{
		ReferenceID:        uuid.NewString(),
		Category:           reqData.Category,
		DetailDescription:  reqData.DetailDescription,
		ContactNo:          reqData.ContactNo,
		Email:              reqData.Email,
		AdditionalInfo:     reqData.AdditionalInfo,
		SupportedDocuments: string(docsJSON),
	}
	if err := database.Database.Db.Create(&grievance).Error; err != nil {
		log.Println("Failed to create grievance:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register grievance!", nil)
	}

	utils.SendGrievanceAckEmail(grievance.Email, grievance.ReferenceID, grievance.Category,
		grievance.DetailDescription, grievance.ContactNo, len(docs))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Grievance registered successfully!", fiber.Map{
		"reference_id": grievance.ReferenceID,
		"status":       grievance.Status,
	})
}

// GetAllGrievances lists registered grievances.
func GetAllGrievances(c *fiber.Ctx) error {
	var grievances []models.Grievance
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&grievances).Error; err != nil {
		log.Println("Failed to fetch grievances:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch grievances!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Grievances fetched successfully!", fiber.Map{
		"total":      len(grievances),
		"grievances": grievances,
	})
}

// GetGrievance fetches a single grievance by its reference id.
func GetGrievance(c *fiber.Ctx) error {
	referenceID := c.Params("id")

	var grievance models.Grievance
	err := database.Database.Db.
		Where("reference_id = ? AND is_deleted = ?", referenceID, false).
		First(&grievance).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Grievance not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Grievance fetched successfully!", grievance)
}
