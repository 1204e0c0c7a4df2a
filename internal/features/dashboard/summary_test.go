package dashboard_test

import (
	"testing"
	"time"

	"github.com/candemir/vitalis-backend/internal/features/dashboard"
	"github.com/candemir/vitalis-backend/internal/features/goals"
	"github.com/candemir/vitalis-backend/internal/features/workouts"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	got := dashboard.Summarize(nil, nil, now)
	assert.Equal(t, dashboard.Summary{}, got)
}

func TestSummarize_CountsAndStreak(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	recent := now.Add(-2 * time.Hour)
	yesterday := now.Add(-20 * time.Hour)

	ws := []workouts.Workout{
		{Type: "strength", Completed: true, CompletedAt: &recent},
		{Type: "cardio", Completed: true, CompletedAt: &yesterday},
		{Type: "cardio", Completed: false},
	}
	gs := []goals.Goal{
		{Title: "Run 100km", Status: goals.StatusActive},
		{Title: "Lose 5kg", Status: goals.StatusActive},
		{Title: "Old goal", Status: goals.StatusCompleted},
		{Title: "Dropped", Status: goals.StatusAbandoned},
	}

	got := dashboard.Summarize(ws, gs, now)
	assert.Equal(t, dashboard.Summary{
		CompletedWorkouts: 2,
		ActiveGoals:       2,
		Streak:            2,
	}, got)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	a := now.Add(-1 * time.Hour)
	b := now.Add(-18 * time.Hour)

	ws := []workouts.Workout{
		{Type: "strength", Completed: true, CompletedAt: &a},
		{Type: "cardio", Completed: true, CompletedAt: &b},
	}
	gs := []goals.Goal{
		{Title: "A", Status: goals.StatusActive},
		{Title: "B", Status: goals.StatusCompleted},
	}

	forward := dashboard.Summarize(ws, gs, now)
	reversed := dashboard.Summarize(
		[]workouts.Workout{ws[1], ws[0]},
		[]goals.Goal{gs[1], gs[0]},
		now,
	)

	assert.Equal(t, forward, reversed)
}

func TestParseInsights(t *testing.T) {
	content := `{
  "observations": ["Consistent training this week"],
  "trends": ["Intensity climbing"],
  "recommendations": ["Add a rest day"],
  "areas_for_improvement": ["Hydration"]
}`

	ins, err := dashboard.ParseInsights(content)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Consistent training this week"}, ins.Observations)
	assert.Equal(t, []string{"Hydration"}, ins.AreasForImprovement)
}

func TestParseInsights_EmptyResponseRejected(t *testing.T) {
	_, err := dashboard.ParseInsights(`{"observations": [], "trends": [], "recommendations": []}`)
	assert.Error(t, err)

	_, err = dashboard.ParseInsights("no json here")
	assert.Error(t, err)
}

func TestDefaultInsights_AllSectionsPopulated(t *testing.T) {
	ins := dashboard.DefaultInsights()
	assert.NotEmpty(t, ins.Observations)
	assert.NotEmpty(t, ins.Trends)
	assert.NotEmpty(t, ins.Recommendations)
	assert.NotEmpty(t, ins.AreasForImprovement)
}
