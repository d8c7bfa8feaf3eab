package services_test

import (
	"testing"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/subscription"
	"gasdelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscription(t *testing.T, frequency subscription.Frequency, start time.Time, active bool) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(
		kernel.NewUUID(), kernel.NewUUID(), "Ravi Kumar", "+91-9000000001", "12 Gandhi Road",
		subscription.PlanSnapshot{Name: "Home Standard", Size: "14.2kg", Frequency: frequency},
		start, active)
	require.NoError(t, err)
	return sub
}

func TestScheduleCalendar_DueDates(t *testing.T) {
	calendar := services.NewScheduleCalendar()
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("weekly subscription over a 14 day horizon from its start Monday", func(t *testing.T) {
		sub := newSubscription(t, subscription.Weekly, monday, true)

		dates, err := calendar.DueDates(sub, monday, 14)

		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.Equal(t, monday, dates[0])
		assert.Equal(t, monday.AddDate(0, 0, 7), dates[1])
	})

	t.Run("daily subscription yields every day in the window", func(t *testing.T) {
		sub := newSubscription(t, subscription.Daily, monday, true)

		dates, err := calendar.DueDates(sub, monday, 7)

		require.NoError(t, err)
		assert.Len(t, dates, 7)
	})

	t.Run("window before the start date yields nothing", func(t *testing.T) {
		sub := newSubscription(t, subscription.Weekly, monday.AddDate(0, 1, 0), true)

		dates, err := calendar.DueDates(sub, monday, 7)

		require.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("start date inside the window anchors the cadence", func(t *testing.T) {
		start := monday.AddDate(0, 0, 3)
		sub := newSubscription(t, subscription.Weekly, start, true)

		dates, err := calendar.DueDates(sub, monday, 14)

		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.Equal(t, start, dates[0])
		assert.Equal(t, start.AddDate(0, 0, 7), dates[1])
	})

	t.Run("monthly subscription with month-end clamp", func(t *testing.T) {
		start := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
		sub := newSubscription(t, subscription.Monthly, start, true)

		dates, err := calendar.DueDates(sub, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 60)

		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), dates[0])
		assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), dates[1])
	})

	t.Run("inactive subscription yields nothing", func(t *testing.T) {
		sub := newSubscription(t, subscription.Daily, monday, false)

		dates, err := calendar.DueDates(sub, monday, 7)

		require.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("rejects non-positive horizon", func(t *testing.T) {
		sub := newSubscription(t, subscription.Daily, monday, true)

		_, err := calendar.DueDates(sub, monday, 0)

		require.Error(t, err)
	})

	t.Run("normalizes the from timestamp", func(t *testing.T) {
		sub := newSubscription(t, subscription.Weekly, monday, true)

		dates, err := calendar.DueDates(sub, monday.Add(15*time.Hour), 1)

		require.NoError(t, err)
		require.Len(t, dates, 1)
		assert.Equal(t, monday, dates[0])
	})
}
