package ration

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"janseva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for workflow tests.
type fakeStore struct {
	applications  map[string]*models.RCApplication
	beneficiaries map[string]*models.Beneficiary
	members       []models.Member
	stateCodes    map[string]string
	districtCodes map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		applications:  make(map[string]*models.RCApplication),
		beneficiaries: make(map[string]*models.Beneficiary),
		stateCodes:    map[string]string{"Maharashtra": "27"},
		districtCodes: map[string]string{"Pune": "12"},
	}
}

func (s *fakeStore) CountApplications() (int64, error) {
	return int64(len(s.applications)), nil
}

func (s *fakeStore) CountBeneficiaries() (int64, error) {
	return int64(len(s.beneficiaries)), nil
}

func (s *fakeStore) FindApplicationByID(applicationID string) (*models.RCApplication, error) {
	app, ok := s.applications[applicationID]
	if !ok {
		return nil, nil
	}
	clone := *app
	clone.Members = s.membersOf(models.OwnerApplication, applicationID)
	return &clone, nil
}

func (s *fakeStore) InsertApplication(app *models.RCApplication) error {
	stored := *app
	s.applications[app.ApplicationID] = &stored
	s.members = append(s.members, app.Members...)
	return nil
}

func (s *fakeStore) UpdateApplicationStatus(applicationID, status string) error {
	app, ok := s.applications[applicationID]
	if !ok {
		return fmt.Errorf("application %s not found", applicationID)
	}
	app.Status = status
	return nil
}

func (s *fakeStore) InsertBeneficiary(b *models.Beneficiary) error {
	stored := *b
	s.beneficiaries[b.RCNo] = &stored
	s.members = append(s.members, b.Members...)
	return nil
}

func (s *fakeStore) ApproveApplication(applicationID string, b *models.Beneficiary) error {
	app, ok := s.applications[applicationID]
	if !ok || app.Status != models.StatusPending {
		return fmt.Errorf("application %s is not pending", applicationID)
	}
	app.Status = models.StatusApproved
	return s.InsertBeneficiary(b)
}

func (s *fakeStore) FindAadhaarOwners(aadhaars []string, excludeType, excludeRef string) (map[string]string, error) {
	owners := make(map[string]string)
	for _, m := range s.members {
		if excludeType != "" && m.OwnerType == excludeType && m.OwnerRef == excludeRef {
			continue
		}
		for _, no := range aadhaars {
			if m.AadharNo == no {
				if _, ok := owners[no]; !ok {
					owners[no] = m.OwnerRef
				}
			}
		}
	}
	return owners, nil
}

func (s *fakeStore) ResolveStateCode(stateName string) (string, error) {
	return s.stateCodes[stateName], nil
}

func (s *fakeStore) ResolveDistrictCode(districtName string) (string, error) {
	return s.districtCodes[districtName], nil
}

func (s *fakeStore) membersOf(ownerType, ownerRef string) []models.Member {
	var out []models.Member
	for _, m := range s.members {
		if m.OwnerType == ownerType && m.OwnerRef == ownerRef {
			out = append(out, m)
		}
	}
	return out
}

type fakeGeocoder struct {
	lat, lng float64
	err      error
}

func (g fakeGeocoder) Coordinates(country, state, district, talukaTehsil string) (float64, float64, error) {
	return g.lat, g.lng, g.err
}

// fakeNotifier records every trigger so tests can assert who got mailed.
type fakeNotifier struct {
	submitted []string
	approved  []string
	rejected  []string
}

func (n *fakeNotifier) ApplicationSubmitted(email string, app *models.RCApplication) {
	n.submitted = append(n.submitted, email)
}

func (n *fakeNotifier) ApplicationApproved(email string, app *models.RCApplication, rcNo string) {
	n.approved = append(n.approved, email)
}

func (n *fakeNotifier) ApplicationRejected(email string, app *models.RCApplication) {
	n.rejected = append(n.rejected, email)
}

func newTestService() (*Service, *fakeStore, *fakeNotifier) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewService(store, fakeGeocoder{lat: 18.52, lng: 73.85}, notifier)
	return svc, store, notifier
}

func testHousehold(aadhaars ...string) HouseholdInput {
	members := make([]models.Member, 0, len(aadhaars))
	for i, no := range aadhaars {
		relation := "Member"
		if i == 0 {
			relation = "Self"
		}
		members = append(members, models.Member{
			AadharNo: no,
			Name:     fmt.Sprintf("Member %d", i+1),
			Relation: relation,
			Email:    fmt.Sprintf("member%d@example.com", i+1),
		})
	}
	return HouseholdInput{
		Country:      "India",
		State:        "Maharashtra",
		District:     "Pune",
		TalukaTehsil: "Haveli",
		Village:      "Wagholi",
		CardType:     "APL",
		FPSID:        "FPS001",
		Members:      members,
	}
}

func TestSubmitApplication(t *testing.T) {
	svc, store, notifier := newTestService()

	result, err := svc.SubmitApplication(testHousehold("111122223333", "444455556666"))
	require.NoError(t, err)
	assert.Len(t, result.ApplicationID, 12)
	assert.True(t, strings.Contains(result.ApplicationID, "2712"))
	assert.True(t, result.NotificationSent)
	assert.Equal(t, []string{"member1@example.com"}, notifier.submitted)

	app := store.applications[result.ApplicationID]
	require.NotNil(t, app)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, 2, app.TotalMembers)
	require.NotNil(t, app.Latitude)
	assert.Equal(t, 18.52, *app.Latitude)

	members := store.membersOf(models.OwnerApplication, result.ApplicationID)
	require.Len(t, members, 2)
	assert.Equal(t, 1, members[0].Seq)
	assert.Empty(t, members[0].MemberID) // member ids are minted at card issue
}

func TestSubmitApplicationValidation(t *testing.T) {
	svc, _, _ := newTestService()

	var validationErr *ValidationError

	_, err := svc.SubmitApplication(testHousehold())
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "members", validationErr.Field)

	_, err = svc.SubmitApplication(testHousehold(""))
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "aadhar_no", validationErr.Field)

	_, err = svc.SubmitApplication(testHousehold("12345"))
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "12 digits")

	_, err = svc.SubmitApplication(testHousehold("111122223333", "111122223333"))
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "Duplicate")
}

func TestSubmitApplicationAadhaarConflict(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.SubmitApplication(testHousehold("111122223333"))
	require.NoError(t, err)

	_, err = svc.SubmitApplication(testHousehold("999900001111", "111122223333"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "111122223333", conflict.AadharNo)
	assert.Equal(t, first.ApplicationID, conflict.OwnerRef)
}

func TestSubmitApplicationUnknownState(t *testing.T) {
	svc, _, _ := newTestService()

	in := testHousehold("111122223333")
	in.State = "Atlantis"

	_, err := svc.SubmitApplication(in)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "state", notFound.Resource)
}

func TestSubmitApplicationGeocodeFailure(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, fakeGeocoder{err: errors.New("quota exceeded")}, &fakeNotifier{})

	result, err := svc.SubmitApplication(testHousehold("111122223333"))
	require.NoError(t, err)

	app := store.applications[result.ApplicationID]
	assert.Nil(t, app.Latitude)
	assert.Nil(t, app.Longitude)
}

func TestDecideApprove(t *testing.T) {
	svc, store, notifier := newTestService()

	submitted, err := svc.SubmitApplication(testHousehold("111122223333", "444455556666"))
	require.NoError(t, err)

	result, err := svc.Decide(submitted.ApplicationID, models.StatusApproved, "admin@gov.in")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, result.Status)
	assert.Len(t, result.RCNo, 16)

	assert.Equal(t, models.StatusApproved, store.applications[submitted.ApplicationID].Status)
	assert.Equal(t, []string{"member1@example.com"}, notifier.approved)

	b := store.beneficiaries[result.RCNo]
	require.NotNil(t, b)
	assert.Equal(t, models.StatusActive, b.Status)
	assert.Equal(t, "admin@gov.in", b.IssuedBy)
	assert.Equal(t, 2, b.TotalMembers)

	members := store.membersOf(models.OwnerBeneficiary, result.RCNo)
	require.Len(t, members, 2)
	assert.Equal(t, result.RCNo+"01", members[0].MemberID)
	assert.Equal(t, result.RCNo+"02", members[1].MemberID)
}

func TestDecideReject(t *testing.T) {
	svc, store, notifier := newTestService()

	submitted, err := svc.SubmitApplication(testHousehold("111122223333"))
	require.NoError(t, err)

	result, err := svc.Decide(submitted.ApplicationID, models.StatusRejected, "admin@gov.in")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, result.Status)
	assert.Empty(t, result.RCNo)

	assert.Empty(t, store.beneficiaries)
	assert.Equal(t, []string{"member1@example.com"}, notifier.rejected)
}

func TestDecideTerminalStatus(t *testing.T) {
	svc, store, _ := newTestService()

	submitted, err := svc.SubmitApplication(testHousehold("111122223333"))
	require.NoError(t, err)
	_, err = svc.Decide(submitted.ApplicationID, models.StatusApproved, "admin@gov.in")
	require.NoError(t, err)

	beforeCount := len(store.beneficiaries)

	_, err = svc.Decide(submitted.ApplicationID, models.StatusRejected, "admin@gov.in")
	var transition *InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, models.StatusApproved, transition.Status)

	// A rejected re-decision must not mutate anything.
	assert.Equal(t, models.StatusApproved, store.applications[submitted.ApplicationID].Status)
	assert.Len(t, store.beneficiaries, beforeCount)
}

func TestDecideInvalidInput(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Decide("202727120001", "maybe", "admin@gov.in")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.Decide("202727129999", models.StatusApproved, "admin@gov.in")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "application", notFound.Resource)
}

func TestDecideApproveRechecksAadhaar(t *testing.T) {
	svc, store, _ := newTestService()

	submitted, err := svc.SubmitApplication(testHousehold("111122223333"))
	require.NoError(t, err)

	// Someone else gets a card with the same Aadhaar before the decision.
	_, err = svc.CreateBeneficiary(testHousehold("111122223333"), "admin@gov.in")
	// Direct creation also sees the pending application and refuses.
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	// Simulate the race instead: another beneficiary row appears directly.
	store.members = append(store.members, models.Member{
		OwnerType: models.OwnerBeneficiary,
		OwnerRef:  "2027271200000001",
		AadharNo:  "111122223333",
	})

	_, err = svc.Decide(submitted.ApplicationID, models.StatusApproved, "admin@gov.in")
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "2027271200000001", conflict.OwnerRef)

	// The application stays pending for a retry after cleanup.
	app, _ := store.FindApplicationByID(submitted.ApplicationID)
	assert.Equal(t, models.StatusPending, app.Status)
}

func TestCreateBeneficiaryDirect(t *testing.T) {
	svc, store, _ := newTestService()

	b, err := svc.CreateBeneficiary(testHousehold("111122223333", "444455556666"), "admin@gov.in")
	require.NoError(t, err)
	assert.Len(t, b.RCNo, 16)
	assert.Equal(t, models.StatusActive, b.Status)
	assert.Equal(t, "admin@gov.in", b.IssuedBy)

	members := store.membersOf(models.OwnerBeneficiary, b.RCNo)
	require.Len(t, members, 2)
	assert.Equal(t, b.RCNo+"01", members[0].MemberID)

	// The next card gets the next sequence.
	b2, err := svc.CreateBeneficiary(testHousehold("777788889999"), "admin@gov.in")
	require.NoError(t, err)
	assert.NotEqual(t, b.RCNo, b2.RCNo)
}

func TestHeadOfFamily(t *testing.T) {
	self := models.Member{Relation: "Self", Email: "self@example.com"}
	head := models.Member{Relation: "Head", Email: "head@example.com"}
	other := models.Member{Relation: "Spouse", Email: "spouse@example.com"}

	assert.Equal(t, self, HeadOfFamily([]models.Member{other, head, self}))
	assert.Equal(t, head, HeadOfFamily([]models.Member{other, head}))
	assert.Equal(t, other, HeadOfFamily([]models.Member{other}))
	assert.Equal(t, models.Member{}, HeadOfFamily(nil))
}
