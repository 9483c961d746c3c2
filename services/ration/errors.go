package ration

import (
	"fmt"
)

// ValidationError reports a bad submission payload. It carries the offending
// field so the caller can point the citizen at what to fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports an Aadhaar number already attached to another record.
type ConflictError struct {
	AadharNo string
	OwnerRef string // composite id of the record that holds the number
}

func (e *ConflictError) Error() string {
	if e.AadharNo == "" {
		return "Aadhaar number already attached to another record."
	}
	return fmt.Sprintf("Aadhaar number %s already exists (record %s).", e.AadharNo, e.OwnerRef)
}

// NotFoundError reports an unknown application, state or district.
type NotFoundError struct {
	Resource string
	Value    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Value)
}

// InvalidTransitionError reports a decision on an application that already
// reached a terminal status.
type InvalidTransitionError struct {
	ApplicationID string
	Status        string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("application %s is already %s", e.ApplicationID, e.Status)
}
