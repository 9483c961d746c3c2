package ration

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"janseva/models"
)

var aadhaarPattern = regexp.MustCompile(`^\d{12}$`)

// Service runs the ration card workflow: application submission, the
// approve/reject decision and beneficiary creation. It is the single path
// for minting composite identifiers and enforcing Aadhaar uniqueness.
type Service struct {
	store    Store
	geocoder Geocoder
	notifier Notifier
}

func NewService(store Store, geocoder Geocoder, notifier Notifier) *Service {
	return &Service{store: store, geocoder: geocoder, notifier: notifier}
}

// HouseholdInput is a parsed submission payload, shared by application
// submission and direct beneficiary creation.
type HouseholdInput struct {
	Country      string
	State        string
	District     string
	TalukaTehsil string
	Village      string
	CardType     string
	FPSID        string
	Members      []models.Member
}

type SubmitResult struct {
	ApplicationID    string
	NotificationSent bool
}

type DecisionResult struct {
	ApplicationID string
	Status        string
	RCNo          string // set when the decision is approved
}

// SubmitApplication validates a citizen submission, assigns an application
// id and persists it with status pending. Geocoding and mail failures do not
// fail the submission.
func (s *Service) SubmitApplication(in HouseholdInput) (*SubmitResult, error) {
	if err := validateMembers(in.Members); err != nil {
		return nil, err
	}

	aadhaars := aadhaarNumbers(in.Members)
	owners, err := s.store.FindAadhaarOwners(aadhaars, "", "")
	if err != nil {
		return nil, fmt.Errorf("aadhaar lookup: %w", err)
	}
	if conflict := firstConflict(aadhaars, owners); conflict != nil {
		return nil, conflict
	}

	stateCode, districtCode, err := s.resolveCodes(in.State, in.District)
	if err != nil {
		return nil, err
	}

	count, err := s.store.CountApplications()
	if err != nil {
		return nil, fmt.Errorf("application count: %w", err)
	}
	applicationID := GenerateApplicationID(stateCode, districtCode, int(count)+1)

	app := &models.RCApplication{
		ApplicationID: applicationID,
		Country:       in.Country,
		State:         in.State,
		District:      in.District,
		TalukaTehsil:  in.TalukaTehsil,
		Village:       in.Village,
		StateCode:     stateCode,
		DistrictCode:  districtCode,
		CardType:      in.CardType,
		FPSID:         in.FPSID,
		TotalMembers:  len(in.Members),
		Status:        models.StatusPending,
		Members:       ownedMembers(in.Members, models.OwnerApplication, applicationID, false),
	}

	if lat, lng, err := s.geocoder.Coordinates(in.Country, in.State, in.District, in.TalukaTehsil); err != nil {
		log.Printf("Geocoding failed for application %s: %v", applicationID, err)
	} else {
		app.Latitude, app.Longitude = &lat, &lng
	}

	if err := s.store.InsertApplication(app); err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	notified := false
	if hof := HeadOfFamily(app.Members); hof.Email != "" {
		s.notifier.ApplicationSubmitted(hof.Email, app)
		notified = true
	}

	return &SubmitResult{ApplicationID: applicationID, NotificationSent: notified}, nil
}

// Decide moves a pending application to approved or rejected. Approval and
// beneficiary creation happen in one store transaction, so a failed card
// issue leaves the application pending.
func (s *Service) Decide(applicationID, decision, actor string) (*DecisionResult, error) {
	if decision != models.StatusApproved && decision != models.StatusRejected {
		return nil, &ValidationError{
			Field:   "decision",
			Message: fmt.Sprintf("Invalid decision %q, expected approved or rejected.", decision),
		}
	}

	app, err := s.store.FindApplicationByID(applicationID)
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}
	if app == nil {
		return nil, &NotFoundError{Resource: "application", Value: applicationID}
	}
	if app.Status != models.StatusPending {
		return nil, &InvalidTransitionError{ApplicationID: applicationID, Status: app.Status}
	}

	if decision == models.StatusRejected {
		if err := s.store.UpdateApplicationStatus(applicationID, models.StatusRejected); err != nil {
			return nil, fmt.Errorf("update status: %w", err)
		}
		if hof := HeadOfFamily(app.Members); hof.Email != "" {
			s.notifier.ApplicationRejected(hof.Email, app)
		}
		return &DecisionResult{ApplicationID: applicationID, Status: models.StatusRejected}, nil
	}

	b, err := s.beneficiaryFromApplication(app, actor)
	if err != nil {
		return nil, err
	}
	if err := s.store.ApproveApplication(applicationID, b); err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, fmt.Errorf("approve application: %w", err)
	}

	if hof := HeadOfFamily(app.Members); hof.Email != "" {
		s.notifier.ApplicationApproved(hof.Email, app, b.RCNo)
	}

	return &DecisionResult{ApplicationID: applicationID, Status: models.StatusApproved, RCNo: b.RCNo}, nil
}

// CreateBeneficiary issues a ration card directly, outside the application
// flow. The approval path reuses the same member id assignment through
// beneficiaryFromApplication.
func (s *Service) CreateBeneficiary(in HouseholdInput, issuedBy string) (*models.Beneficiary, error) {
	if err := validateMembers(in.Members); err != nil {
		return nil, err
	}

	aadhaars := aadhaarNumbers(in.Members)
	owners, err := s.store.FindAadhaarOwners(aadhaars, "", "")
	if err != nil {
		return nil, fmt.Errorf("aadhaar lookup: %w", err)
	}
	if conflict := firstConflict(aadhaars, owners); conflict != nil {
		return nil, conflict
	}

	stateCode, districtCode, err := s.resolveCodes(in.State, in.District)
	if err != nil {
		return nil, err
	}

	count, err := s.store.CountBeneficiaries()
	if err != nil {
		return nil, fmt.Errorf("beneficiary count: %w", err)
	}
	rcNo := GenerateRCNo(stateCode, districtCode, int(count)+1)

	b := &models.Beneficiary{
		RCNo:         rcNo,
		Country:      in.Country,
		State:        in.State,
		District:     in.District,
		TalukaTehsil: in.TalukaTehsil,
		Village:      in.Village,
		StateCode:    stateCode,
		DistrictCode: districtCode,
		CardType:     in.CardType,
		FPSID:        in.FPSID,
		TotalMembers: len(in.Members),
		Status:       models.StatusActive,
		IssuedBy:     issuedBy,
		Members:      ownedMembers(in.Members, models.OwnerBeneficiary, rcNo, true),
	}

	if lat, lng, err := s.geocoder.Coordinates(in.Country, in.State, in.District, in.TalukaTehsil); err != nil {
		log.Printf("Geocoding failed for RC %s: %v", rcNo, err)
	} else {
		b.Latitude, b.Longitude = &lat, &lng
	}

	if err := s.store.InsertBeneficiary(b); err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, fmt.Errorf("insert beneficiary: %w", err)
	}

	return b, nil
}

// beneficiaryFromApplication builds the card an approval will issue. Time may
// have passed since submission, so the Aadhaar numbers are re-checked against
// every record except the application being approved.
func (s *Service) beneficiaryFromApplication(app *models.RCApplication, issuedBy string) (*models.Beneficiary, error) {
	stateCode, districtCode, err := s.resolveCodes(app.State, app.District)
	if err != nil {
		return nil, err
	}

	aadhaars := aadhaarNumbers(app.Members)
	owners, err := s.store.FindAadhaarOwners(aadhaars, models.OwnerApplication, app.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("aadhaar lookup: %w", err)
	}
	if conflict := firstConflict(aadhaars, owners); conflict != nil {
		return nil, conflict
	}

	count, err := s.store.CountBeneficiaries()
	if err != nil {
		return nil, fmt.Errorf("beneficiary count: %w", err)
	}
	rcNo := GenerateRCNo(stateCode, districtCode, int(count)+1)

	return &models.Beneficiary{
		RCNo:         rcNo,
		Country:      app.Country,
		State:        app.State,
		District:     app.District,
		TalukaTehsil: app.TalukaTehsil,
		Village:      app.Village,
		StateCode:    stateCode,
		DistrictCode: districtCode,
		CardType:     app.CardType,
		FPSID:        app.FPSID,
		TotalMembers: len(app.Members),
		Status:       models.StatusActive,
		IssuedBy:     issuedBy,
		Latitude:     app.Latitude,
		Longitude:    app.Longitude,
		Members:      ownedMembers(app.Members, models.OwnerBeneficiary, rcNo, true),
	}, nil
}

func (s *Service) resolveCodes(stateName, districtName string) (string, string, error) {
	stateCode, err := s.store.ResolveStateCode(stateName)
	if err != nil {
		return "", "", fmt.Errorf("resolve state: %w", err)
	}
	if stateCode == "" {
		return "", "", &NotFoundError{Resource: "state", Value: stateName}
	}
	districtCode, err := s.store.ResolveDistrictCode(districtName)
	if err != nil {
		return "", "", fmt.Errorf("resolve district: %w", err)
	}
	if districtCode == "" {
		return "", "", &NotFoundError{Resource: "district", Value: districtName}
	}
	return stateCode, districtCode, nil
}

// HeadOfFamily picks the household contact: the first member with relation
// "Self", else the first with "Head", else the first member.
func HeadOfFamily(members []models.Member) models.Member {
	for _, m := range members {
		if m.Relation == "Self" {
			return m
		}
	}
	for _, m := range members {
		if m.Relation == "Head" {
			return m
		}
	}
	if len(members) > 0 {
		return members[0]
	}
	return models.Member{}
}

func validateMembers(members []models.Member) error {
	if len(members) == 0 {
		return &ValidationError{Field: "members", Message: "At least one family member is required."}
	}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		no := strings.TrimSpace(m.AadharNo)
		if no == "" {
			return &ValidationError{Field: "aadhar_no", Message: "Each member must have an Aadhaar number."}
		}
		if !aadhaarPattern.MatchString(no) {
			return &ValidationError{
				Field:   "aadhar_no",
				Message: fmt.Sprintf("Aadhaar number %s must be exactly 12 digits.", no),
			}
		}
		if seen[no] {
			return &ValidationError{
				Field:   "aadhar_no",
				Message: fmt.Sprintf("Duplicate Aadhaar number %s within members list.", no),
			}
		}
		seen[no] = true
	}
	return nil
}

func aadhaarNumbers(members []models.Member) []string {
	numbers := make([]string, len(members))
	for i, m := range members {
		numbers[i] = strings.TrimSpace(m.AadharNo)
	}
	return numbers
}

// firstConflict reports the first submitted Aadhaar, in payload order, that
// an existing record already owns. Payload order keeps the answer stable for
// a given request.
func firstConflict(aadhaars []string, owners map[string]string) *ConflictError {
	for _, no := range aadhaars {
		if owner, ok := owners[no]; ok {
			return &ConflictError{AadharNo: no, OwnerRef: owner}
		}
	}
	return nil
}

// ownedMembers copies payload members onto an owner, numbering them and
// assigning member ids when the owner is a beneficiary.
func ownedMembers(members []models.Member, ownerType, ownerRef string, withMemberID bool) []models.Member {
	owned := make([]models.Member, len(members))
	for i, m := range members {
		owned[i] = models.Member{
			OwnerType: ownerType,
			OwnerRef:  ownerRef,
			Seq:       i + 1,
			AadharNo:  strings.TrimSpace(m.AadharNo),
			Relation:  m.Relation,
			Name:      m.Name,
			Email:     m.Email,
			Mobile:    m.Mobile,
			DOB:       m.DOB,
			Gender:    m.Gender,
		}
		if withMemberID {
			owned[i].MemberID = GenerateMemberID(ownerRef, i)
		}
	}
	return owned
}
