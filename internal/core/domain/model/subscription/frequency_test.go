package subscription_test

import (
	"testing"
	"time"

	"gasdelivery/internal/core/domain/model/subscription"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFrequencyFromString(t *testing.T) {
	t.Run("should parse all defined frequencies", func(t *testing.T) {
		for _, s := range []string{"Daily", "Weekly", "Bi-weekly", "Monthly"} {
			f, err := subscription.FrequencyFromString(s)

			require.NoError(t, err, s)
			assert.Equal(t, s, f.String())
		}
	})

	t.Run("should reject unknown frequency", func(t *testing.T) {
		_, err := subscription.FrequencyFromString("Fortnightly")

		require.Error(t, err)
	})
}

func TestNormalizeDate(t *testing.T) {
	t.Run("truncates to midnight UTC", func(t *testing.T) {
		normalized := subscription.NormalizeDate(time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC))

		assert.Equal(t, date(2026, 3, 2), normalized)
	})

	t.Run("converts other zones to UTC first", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		normalized := subscription.NormalizeDate(time.Date(2026, 3, 3, 2, 0, 0, 0, loc))

		// 02:00 UTC+5 is 21:00 UTC the previous day.
		assert.Equal(t, date(2026, 3, 2), normalized)
	})
}

func TestFrequency_IsDueOn(t *testing.T) {
	// 2026-03-02 is a Monday.
	start := date(2026, 3, 2)

	t.Run("never due before the start date", func(t *testing.T) {
		for _, f := range []subscription.Frequency{
			subscription.Daily, subscription.Weekly, subscription.BiWeekly, subscription.Monthly,
		} {
			assert.False(t, f.IsDueOn(start, date(2026, 3, 1)), f.String())
		}
	})

	t.Run("daily is due every day from start", func(t *testing.T) {
		assert.True(t, subscription.Daily.IsDueOn(start, start))
		assert.True(t, subscription.Daily.IsDueOn(start, date(2026, 3, 3)))
		assert.True(t, subscription.Daily.IsDueOn(start, date(2026, 4, 17)))
	})

	t.Run("weekly is due every 7th day from start", func(t *testing.T) {
		assert.True(t, subscription.Weekly.IsDueOn(start, start))
		assert.True(t, subscription.Weekly.IsDueOn(start, date(2026, 3, 9)))
		assert.True(t, subscription.Weekly.IsDueOn(start, date(2026, 3, 16)))

		assert.False(t, subscription.Weekly.IsDueOn(start, date(2026, 3, 3)))
		assert.False(t, subscription.Weekly.IsDueOn(start, date(2026, 3, 8)))
	})

	t.Run("bi-weekly is due every 14th day from start", func(t *testing.T) {
		assert.True(t, subscription.BiWeekly.IsDueOn(start, start))
		assert.True(t, subscription.BiWeekly.IsDueOn(start, date(2026, 3, 16)))
		assert.True(t, subscription.BiWeekly.IsDueOn(start, date(2026, 3, 30)))

		assert.False(t, subscription.BiWeekly.IsDueOn(start, date(2026, 3, 9)))
	})

	t.Run("monthly is due on the same day of month", func(t *testing.T) {
		monthlyStart := date(2026, 1, 15)

		assert.True(t, subscription.Monthly.IsDueOn(monthlyStart, date(2026, 1, 15)))
		assert.True(t, subscription.Monthly.IsDueOn(monthlyStart, date(2026, 2, 15)))
		assert.True(t, subscription.Monthly.IsDueOn(monthlyStart, date(2026, 7, 15)))

		assert.False(t, subscription.Monthly.IsDueOn(monthlyStart, date(2026, 2, 14)))
		assert.False(t, subscription.Monthly.IsDueOn(monthlyStart, date(2026, 2, 16)))
	})

	t.Run("monthly clamps to the last day of shorter months", func(t *testing.T) {
		monthEndStart := date(2026, 1, 31)

		// 2026 is not a leap year: February ends on the 28th.
		assert.True(t, subscription.Monthly.IsDueOn(monthEndStart, date(2026, 2, 28)))
		assert.False(t, subscription.Monthly.IsDueOn(monthEndStart, date(2026, 2, 27)))

		assert.True(t, subscription.Monthly.IsDueOn(monthEndStart, date(2026, 4, 30)))
		assert.True(t, subscription.Monthly.IsDueOn(monthEndStart, date(2026, 3, 31)))
		assert.False(t, subscription.Monthly.IsDueOn(monthEndStart, date(2026, 3, 30)))
	})

	t.Run("monthly clamps to Feb 29 in leap years", func(t *testing.T) {
		monthEndStart := date(2028, 1, 31)

		assert.True(t, subscription.Monthly.IsDueOn(monthEndStart, date(2028, 2, 29)))
		assert.False(t, subscription.Monthly.IsDueOn(monthEndStart, date(2028, 2, 28)))
	})
}
