package goals_test

import (
	"math"
	"testing"
	"time"

	"github.com/candemir/vitalis-backend/internal/features/goals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGoal(target float64) *goals.Goal {
	return &goals.Goal{
		Title:       "Run 100km",
		Category:    "cardio",
		TargetValue: target,
		Unit:        "km",
		Status:      goals.StatusActive,
	}
}

func TestApplyProgress_RecomputesCurrentValue(t *testing.T) {
	g := testGoal(100)
	day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, goals.ApplyProgress(g, 10, day))
	assert.Equal(t, 10.0, g.CurrentValue)

	require.NoError(t, goals.ApplyProgress(g, 25, day.AddDate(0, 0, 3)))
	assert.Equal(t, 25.0, g.CurrentValue)
	assert.Equal(t, goals.StatusActive, g.Status)
	assert.Len(t, g.Progress, 2)
}

func TestApplyProgress_OutOfOrderDates(t *testing.T) {
	g := testGoal(100)
	day := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	require.NoError(t, goals.ApplyProgress(g, 40, day))
	// Backfilled entry with an earlier date must not win.
	require.NoError(t, goals.ApplyProgress(g, 15, day.AddDate(0, 0, -5)))

	assert.Equal(t, 40.0, g.CurrentValue)
}

func TestApplyProgress_EqualDateTieBreak(t *testing.T) {
	g := testGoal(100)
	day := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	require.NoError(t, goals.ApplyProgress(g, 30, day))
	require.NoError(t, goals.ApplyProgress(g, 35, day))

	// The entry appended most recently wins among equal dates.
	assert.Equal(t, 35.0, g.CurrentValue)
}

func TestApplyProgress_CompletesGoal(t *testing.T) {
	g := testGoal(50)
	day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, goals.ApplyProgress(g, 50, day))
	assert.Equal(t, goals.StatusCompleted, g.Status)
}

func TestApplyProgress_CompletionIsOneWay(t *testing.T) {
	g := testGoal(50)
	day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, goals.ApplyProgress(g, 60, day))
	require.Equal(t, goals.StatusCompleted, g.Status)

	// A later, smaller append lowers the current value but never
	// reverts completion.
	require.NoError(t, goals.ApplyProgress(g, 10, day.AddDate(0, 0, 1)))
	assert.Equal(t, 10.0, g.CurrentValue)
	assert.Equal(t, goals.StatusCompleted, g.Status)
}

func TestApplyProgress_RejectsBadInputBeforeMutation(t *testing.T) {
	day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		value   float64
		date    time.Time
		wantErr error
	}{
		{"nan value", math.NaN(), day, goals.ErrInvalidProgressValue},
		{"positive inf", math.Inf(1), day, goals.ErrInvalidProgressValue},
		{"negative inf", math.Inf(-1), day, goals.ErrInvalidProgressValue},
		{"zero date", 10, time.Time{}, goals.ErrInvalidProgressDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := testGoal(100)
			err := goals.ApplyProgress(g, tc.value, tc.date)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, g.Progress)
			assert.Equal(t, 0.0, g.CurrentValue)
			assert.Equal(t, goals.StatusActive, g.Status)
		})
	}
}

func TestLedgerValue_EmptyLedgerUsesFallback(t *testing.T) {
	assert.Equal(t, 7.5, goals.LedgerValue(nil, 7.5))
}
