package workouts_test

import (
	"testing"
	"time"

	"github.com/candemir/vitalis-backend/internal/features/workouts"

	"github.com/stretchr/testify/assert"
)

func completedAt(t time.Time) workouts.Workout {
	return workouts.Workout{Type: "strength", Completed: true, CompletedAt: &t}
}

func TestComputeStreak_Empty(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, workouts.ComputeStreak(nil, now))
	assert.Equal(t, 0, workouts.ComputeStreak([]workouts.Workout{}, now))
}

func TestComputeStreak_ConsecutiveDays(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	history := []workouts.Workout{
		completedAt(now.Add(-2 * time.Hour)),
		completedAt(now.Add(-22 * time.Hour)),
		completedAt(now.Add(-44 * time.Hour)),
	}

	assert.Equal(t, 3, workouts.ComputeStreak(history, now))
}

func TestComputeStreak_SameWindowCountsIndividually(t *testing.T) {
	now := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	// Four sessions in one afternoon, all within 20h of each other.
	history := []workouts.Workout{
		completedAt(now.Add(-1 * time.Hour)),
		completedAt(now.Add(-3 * time.Hour)),
		completedAt(now.Add(-5 * time.Hour)),
		completedAt(now.Add(-20 * time.Hour)),
	}

	assert.Equal(t, 4, workouts.ComputeStreak(history, now))
}

func TestComputeStreak_GapEndsStreak(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	history := []workouts.Workout{
		completedAt(now.Add(-2 * time.Hour)),
		completedAt(now.Add(-20 * time.Hour)),
		// 30h behind the previous accepted workout: streak stops here,
		// even though older completions follow.
		completedAt(now.Add(-50 * time.Hour)),
		completedAt(now.Add(-60 * time.Hour)),
	}

	assert.Equal(t, 2, workouts.ComputeStreak(history, now))
}

func TestComputeStreak_StaleFirstWorkout(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	history := []workouts.Workout{
		completedAt(now.Add(-48 * time.Hour)),
		completedAt(now.Add(-72 * time.Hour)),
	}

	assert.Equal(t, 0, workouts.ComputeStreak(history, now))
}

func TestComputeStreak_ExactWindowBoundary(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	history := []workouts.Workout{
		completedAt(now.Add(-24 * time.Hour)),
	}

	// Exactly 24h counts; the streak breaks only on a strictly larger gap.
	assert.Equal(t, 1, workouts.ComputeStreak(history, now))
}

func TestComputeStreak_IgnoresIncompleteAndUntimestamped(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-1 * time.Hour)
	zero := time.Time{}
	history := []workouts.Workout{
		{Type: "cardio", Completed: false, CompletedAt: &recent},
		{Type: "cardio", Completed: true, CompletedAt: nil},
		{Type: "cardio", Completed: true, CompletedAt: &zero},
		completedAt(recent),
	}

	assert.Equal(t, 1, workouts.ComputeStreak(history, now))
}

func TestComputeStreak_InputOrderIrrelevant(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	a := completedAt(now.Add(-40 * time.Hour))
	b := completedAt(now.Add(-2 * time.Hour))
	c := completedAt(now.Add(-20 * time.Hour))

	assert.Equal(t, 3, workouts.ComputeStreak([]workouts.Workout{a, b, c}, now))
	assert.Equal(t, 3, workouts.ComputeStreak([]workouts.Workout{c, a, b}, now))
}
