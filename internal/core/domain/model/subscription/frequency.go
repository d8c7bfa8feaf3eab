package subscription

import (
	"time"

	"gasdelivery/internal/pkg/errs"
)

// Frequency defines how often a subscription implies a delivery.
type Frequency string

const (
	Daily    Frequency = "Daily"
	Weekly   Frequency = "Weekly"
	BiWeekly Frequency = "Bi-weekly"
	Monthly  Frequency = "Monthly"
)

// getValidFrequencies returns the set of valid frequencies.
func getValidFrequencies() map[Frequency]struct{} {
	return map[Frequency]struct{}{
		Daily:    {},
		Weekly:   {},
		BiWeekly: {},
		Monthly:  {},
	}
}

// FrequencyFromString parses a frequency from its string representation.
func FrequencyFromString(s string) (Frequency, error) {
	f := Frequency(s)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate checks if the Frequency is one of the defined values.
func (f Frequency) Validate() error {
	if _, ok := getValidFrequencies()[f]; !ok {
		return errs.NewValueIsInvalidError("frequency")
	}
	return nil
}

// String returns the human-readable representation of the frequency.
func (f Frequency) String() string {
	return string(f)
}

// NormalizeDate truncates a timestamp to midnight UTC. All due-date arithmetic
// and delivery dates in the engine operate on normalized dates.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsDueOn reports whether a subscription that started on start implies a
// delivery on the given date. Both arguments are normalized before comparison.
//
// Rules:
//   - Daily: every day from the start date
//   - Weekly: every 7th day from the start date
//   - Bi-weekly: every 14th day from the start date
//   - Monthly: the start date's day-of-month, clamped to the last day of
//     shorter months (a subscription started Jan 31 is due Feb 28/29)
//
// Dates before the start date are never due.
func (f Frequency) IsDueOn(start, on time.Time) bool {
	start = NormalizeDate(start)
	on = NormalizeDate(on)

	if on.Before(start) {
		return false
	}

	switch f {
	case Daily:
		return true
	case Weekly:
		return daysBetween(start, on)%7 == 0
	case BiWeekly:
		return daysBetween(start, on)%14 == 0
	case Monthly:
		return on.Day() == clampDayOfMonth(start.Day(), on)
	default:
		return false
	}
}

// daysBetween returns the number of whole days from a to b.
// Both arguments must already be normalized to midnight UTC.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// clampDayOfMonth clamps a day-of-month to the last day of on's month.
func clampDayOfMonth(day int, on time.Time) int {
	lastDay := time.Date(on.Year(), on.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		return lastDay
	}
	return day
}
