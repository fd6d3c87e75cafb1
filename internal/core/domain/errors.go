package domain

import "errors"

// Validation errors. These never reach the store; handlers surface them as
// inline messages.
var (
	ErrPlateExists         = errors.New("plate already registered")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrPersonNotFound      = errors.New("person not found")
	ErrTaxIDExists         = errors.New("tax identifier already registered")
	ErrLoginMismatch       = errors.New("name does not match tax identifier")
	ErrPolicyDatesInverted = errors.New("end date must be after start date")
	ErrPolicyOverlap       = errors.New("dates overlap with an existing policy")
	ErrPolicyNotFound      = errors.New("policy not found")
	ErrServiceEntryNotFound = errors.New("service entry not found")
	ErrInspectionNotFound  = errors.New("inspection not found")
	ErrAlreadyOwner        = errors.New("candidate is already the owner")
	ErrAlreadyCoOwner      = errors.New("already a co-owner")
	ErrFileTooLarge        = errors.New("file exceeds the 5 MB limit")
	ErrUnknownCollection   = errors.New("unknown vehicle collection")
)

// IsValidationError reports whether err belongs to the validation taxonomy,
// as opposed to a remote-operation failure.
func IsValidationError(err error) bool {
	for _, v := range []error{
		ErrPlateExists,
		ErrTaxIDExists,
		ErrLoginMismatch,
		ErrPolicyDatesInverted,
		ErrPolicyOverlap,
		ErrAlreadyOwner,
		ErrAlreadyCoOwner,
		ErrFileTooLarge,
		ErrUnknownCollection,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
