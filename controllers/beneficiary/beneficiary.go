package beneficiaryController

import (
	"errors"
	"log"

	"janseva/database"
	"janseva/middleware"
	"janseva/models"
	"janseva/services/ration"
	applicationValidator "janseva/validators/application"

	"github.com/gofiber/fiber/v2"
)

// Workflow is wired in main once the database connection exists.
var Workflow *ration.Service

// CreateBeneficiary issues a ration card directly, without an application.
func CreateBeneficiary(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBeneficiary").(*applicationValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	issuedBy, _ := c.Locals("identifier").(string)
	if reqData.IssuedBy != "" {
		issuedBy = reqData.IssuedBy
	}

	members := make([]models.Member, 0, len(reqData.Members))
	for _, m := range reqData.Members {
		members = append(members, models.Member{
			AadharNo: m.AadharNo,
			Name:     m.Name,
			Relation: m.Relation,
			Email:    m.Email,
			Mobile:   m.Mobile,
			DOB:      m.DOB,
			Gender:   m.Gender,
		})
	}

	beneficiary, err := Workflow.CreateBeneficiary(ration.HouseholdInput{
		Country:      reqData.Country,
		State:        reqData.State,
		District:     reqData.District,
		TalukaTehsil: reqData.TalukaTehsil,
		Village:      reqData.Village,
		CardType:     reqData.CardType,
		FPSID:        reqData.FPSID,
		Members:      members,
	}, issuedBy)
	if err != nil {
		return workflowStatus(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Beneficiary created successfully!", fiber.Map{
		"rc_no":         beneficiary.RCNo,
		"status":        beneficiary.Status,
		"total_members": beneficiary.TotalMembers,
	})
}

// GetAllBeneficiaries lists beneficiaries with their members.
func GetAllBeneficiaries(c *fiber.Ctx) error {
	var beneficiaries []models.Beneficiary
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&beneficiaries).Error; err != nil {
		log.Println("Failed to fetch beneficiaries:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch beneficiaries!", nil)
	}

	if len(beneficiaries) > 0 {
		refs := make([]string, 0, len(beneficiaries))
		for i := range beneficiaries {
			refs = append(refs, beneficiaries[i].RCNo)
		}

		var members []models.Member
		if err := database.Database.Db.
			Where("owner_type = ? AND owner_ref IN ?", models.OwnerBeneficiary, refs).
			Order("seq asc").
			Find(&members).Error; err != nil {
			log.Println("Failed to fetch beneficiary members:", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch beneficiaries!", nil)
		}

		grouped := make(map[string][]models.Member)
		for _, m := range members {
			grouped[m.OwnerRef] = append(grouped[m.OwnerRef], m)
		}
		for i := range beneficiaries {
			beneficiaries[i].Members = grouped[beneficiaries[i].RCNo]
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Beneficiaries fetched successfully!", fiber.Map{
		"total":         len(beneficiaries),
		"beneficiaries": beneficiaries,
	})
}

func workflowStatus(c *fiber.Ctx, err error) error {
	var validationErr *ration.ValidationError
	if errors.As(err, &validationErr) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, validationErr.Message, nil)
	}

	var conflictErr *ration.ConflictError
	if errors.As(err, &conflictErr) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, conflictErr.Error(), nil)
	}

	var notFoundErr *ration.NotFoundError
	if errors.As(err, &notFoundErr) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFoundErr.Error(), nil)
	}

	log.Println("Workflow error:", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again later!", nil)
}
