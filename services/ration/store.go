package ration

import (
	"janseva/models"
)

// Store is the persistence boundary of the application workflow. Any error
// returned by a Store method is infrastructure trouble, never a business
// outcome, with one exception: implementations backed by a database with a
// unique Aadhaar index must map a uniqueness violation on insert to a
// ConflictError, closing the window between the duplicate check and the
// write.
type Store interface {
	CountApplications() (int64, error)
	CountBeneficiaries() (int64, error)

	// FindApplicationByID returns nil, nil when no such application exists.
	FindApplicationByID(applicationID string) (*models.RCApplication, error)
	InsertApplication(app *models.RCApplication) error
	UpdateApplicationStatus(applicationID, status string) error
	InsertBeneficiary(b *models.Beneficiary) error

	// ApproveApplication flips the application to approved and inserts the
	// beneficiary with its members in a single transaction.
	ApproveApplication(applicationID string, b *models.Beneficiary) error

	// FindAadhaarOwners reports, for every Aadhaar in the set already
	// attached to a stored member, the owning record's composite identifier.
	// Rows owned by excludeType/excludeRef are ignored; pass empty strings
	// to scan everything.
	FindAadhaarOwners(aadhaars []string, excludeType, excludeRef string) (map[string]string, error)

	// ResolveStateCode and ResolveDistrictCode return "" with a nil error
	// when the name is unknown.
	ResolveStateCode(stateName string) (string, error)
	ResolveDistrictCode(districtName string) (string, error)
}

// Geocoder resolves an address to coordinates. A failure degrades the
// application to null coordinates; it never aborts the workflow.
type Geocoder interface {
	Coordinates(country, state, district, talukaTehsil string) (lat, lng float64, err error)
}

// Notifier delivers citizen-facing mail. Implementations send in the
// background and only log failures; the workflow never waits on delivery.
type Notifier interface {
	ApplicationSubmitted(email string, app *models.RCApplication)
	ApplicationApproved(email string, app *models.RCApplication, rcNo string)
	ApplicationRejected(email string, app *models.RCApplication)
}
