package order

import (
	"gasdelivery/internal/pkg/errs"
)

// FailureReason is the closed set of reasons an agent may report when a
// delivery attempt fails. The reason is required on every Fail event;
// ReasonOther additionally requires free-text notes.
type FailureReason string

const (
	ReasonCustomerNotAvailable FailureReason = "Customer not available"
	ReasonWrongAddress         FailureReason = "Wrong address"
	ReasonCustomerRefused      FailureReason = "Customer refused delivery"
	ReasonSafetyConcerns       FailureReason = "Safety concerns"
	ReasonVehicleBreakdown     FailureReason = "Vehicle breakdown"
	ReasonOther                FailureReason = "Other"
)

// getValidFailureReasons returns the set of valid failure reasons.
func getValidFailureReasons() map[FailureReason]struct{} {
	return map[FailureReason]struct{}{
		ReasonCustomerNotAvailable: {},
		ReasonWrongAddress:         {},
		ReasonCustomerRefused:      {},
		ReasonSafetyConcerns:       {},
		ReasonVehicleBreakdown:     {},
		ReasonOther:                {},
	}
}

// FailureReasonFromString parses a failure reason from its string representation.
// Returns ValueIsRequiredError for an empty string and ValueIsInvalidError for
// strings outside the enumerated list.
func FailureReasonFromString(s string) (FailureReason, error) {
	if s == "" {
		return "", errs.NewValueIsRequiredError("reason")
	}
	reason := FailureReason(s)
	if err := reason.Validate(); err != nil {
		return "", err
	}
	return reason, nil
}

// Validate checks if the FailureReason is one of the enumerated reasons.
func (r FailureReason) Validate() error {
	if r == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if _, ok := getValidFailureReasons()[r]; !ok {
		return errs.NewValueIsInvalidError("reason")
	}
	return nil
}

// RequiresNotes reports whether this reason must be accompanied by free-text
// notes. Only ReasonOther carries no information on its own.
func (r FailureReason) RequiresNotes() bool {
	return r == ReasonOther
}

// String returns the human-readable representation of the reason.
func (r FailureReason) String() string {
	return string(r)
}
