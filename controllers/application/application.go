package applicationController

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

// CreateRCApplication submits a new ration card application.
func CreateRCApplication(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedApplication").(*applicationValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := Workflow.SubmitApplication(householdInput(reqData))
	if err != nil {
		return workflowStatus(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", fiber.Map{
		"application_id":    result.ApplicationID,
		"status":            models.StatusPending,
		"notification_sent": result.NotificationSent,
	})
}

// GetAllRCApplications lists applications with their members.
func GetAllRCApplications(c *fiber.Ctx) error {
	var applications []models.RCApplication
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&applications).Error; err != nil {
		log.Println("Failed to fetch applications:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	if err := attachMembers(applications); err != nil {
		log.Println("Failed to fetch application members:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", fiber.Map{
		"total":        len(applications),
		"applications": applications,
	})
}

// DecideApplication approves or rejects a pending application.
func DecideApplication(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDecision").(*applicationValidator.DecideRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	applicationID := c.Params("id")
	actor, _ := c.Locals("identifier").(string)

	result, err := Workflow.Decide(applicationID, reqData.Decision, actor)
	if err != nil {
		return workflowStatus(c, err)
	}

	data := fiber.Map{
		"application_id": result.ApplicationID,
		"status":         result.Status,
	}
	if result.RCNo != "" {
		data["rc_no"] = result.RCNo
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application "+result.Status+" successfully!", data)
}

// attachMembers loads member rows for a batch of applications in one query.
func attachMembers(applications []models.RCApplication) error {
	if len(applications) == 0 {
		return nil
	}

	refs := make([]string, 0, len(applications))
	for i := range applications {
		refs = append(refs, applications[i].ApplicationID)
	}

	var members []models.Member
	if err := database.Database.Db.
		Where("owner_type = ? AND owner_ref IN ?", models.OwnerApplication, refs).
		Order("seq asc").
		Find(&members).Error; err != nil {
		return err
	}

	grouped := make(map[string][]models.Member)
	for _, m := range members {
		grouped[m.OwnerRef] = append(grouped[m.OwnerRef], m)
	}
	for i := range applications {
		applications[i].Members = grouped[applications[i].ApplicationID]
	}
	return nil
}

// workflowStatus maps service errors onto HTTP responses.
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

	var transitionErr *ration.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, transitionErr.Error(), nil)
	}

	log.Println("Workflow error:", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again later!", nil)
}

func householdInput(reqData *applicationValidator.CreateRequest) ration.HouseholdInput {
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
	return ration.HouseholdInput{
		Country:      reqData.Country,
		State:        reqData.State,
		District:     reqData.District,
		TalukaTehsil: reqData.TalukaTehsil,
		Village:      reqData.Village,
		CardType:     reqData.CardType,
		FPSID:        reqData.FPSID,
		Members:      members,
	}
}
