package database

import (
	"errors"
	"fmt"

	"janseva/models"
	"janseva/services/ration"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// RationStore backs the application workflow with the shared gorm
// connection. Member rows always travel in the same transaction as their
// owning record.
type RationStore struct {
	db *gorm.DB
}

func NewRationStore(db *gorm.DB) *RationStore {
	return &RationStore{db: db}
}

func (s *RationStore) CountApplications() (int64, error) {
	var count int64
	if err := s.db.Model(&models.RCApplication{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *RationStore) CountBeneficiaries() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Beneficiary{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *RationStore) FindApplicationByID(applicationID string) (*models.RCApplication, error) {
	var app models.RCApplication
	err := s.db.Where("application_id = ?", applicationID).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	members, err := s.MembersOf(models.OwnerApplication, applicationID)
	if err != nil {
		return nil, err
	}
	app.Members = members
	return &app, nil
}

func (s *RationStore) InsertApplication(app *models.RCApplication) error {
	return asConflict(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		if len(app.Members) > 0 {
			if err := tx.Create(&app.Members).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

func (s *RationStore) UpdateApplicationStatus(applicationID, status string) error {
	res := s.db.Model(&models.RCApplication{}).
		Where("application_id = ?", applicationID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("application %s not found", applicationID)
	}
	return nil
}

func (s *RationStore) InsertBeneficiary(b *models.Beneficiary) error {
	return asConflict(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		if len(b.Members) > 0 {
			if err := tx.Create(&b.Members).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

// ApproveApplication flips the status and issues the card in one
// transaction: a failed insert rolls the status back to pending.
func (s *RationStore) ApproveApplication(applicationID string, b *models.Beneficiary) error {
	return asConflict(s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.RCApplication{}).
			Where("application_id = ? AND status = ?", applicationID, models.StatusPending).
			Update("status", models.StatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("application %s is not pending", applicationID)
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		if len(b.Members) > 0 {
			if err := tx.Create(&b.Members).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

func (s *RationStore) FindAadhaarOwners(aadhaars []string, excludeType, excludeRef string) (map[string]string, error) {
	owners := make(map[string]string, len(aadhaars))
	if len(aadhaars) == 0 {
		return owners, nil
	}

	query := s.db.Model(&models.Member{}).Where("aadhar_no IN ?", aadhaars)
	if excludeType != "" {
		query = query.Where("NOT (owner_type = ? AND owner_ref = ?)", excludeType, excludeRef)
	}

	var rows []models.Member
	if err := query.Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		if _, ok := owners[row.AadharNo]; !ok {
			owners[row.AadharNo] = row.OwnerRef
		}
	}
	return owners, nil
}

func (s *RationStore) ResolveStateCode(stateName string) (string, error) {
	var state models.State
	err := s.db.Where("state_name = ?", stateName).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return state.StateCode, nil
}

func (s *RationStore) ResolveDistrictCode(districtName string) (string, error) {
	var district models.District
	err := s.db.Where("district_name = ?", districtName).First(&district).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return district.DistrictCode, nil
}

// MembersOf loads the member rows of one application or beneficiary in
// household order.
func (s *RationStore) MembersOf(ownerType, ownerRef string) ([]models.Member, error) {
	var members []models.Member
	err := s.db.Where("owner_type = ? AND owner_ref = ?", ownerType, ownerRef).
		Order("seq asc").Find(&members).Error
	return members, err
}

// asConflict converts a duplicate-key error on the members table into the
// workflow's conflict error. The unique Aadhaar index is the backstop for
// two submissions racing past the duplicate check.
func asConflict(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return &ration.ConflictError{}
	}
	return err
}
