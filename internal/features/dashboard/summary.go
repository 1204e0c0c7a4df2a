package dashboard

import (
	"time"

	"github.com/candemir/vitalis-backend/internal/features/goals"
	"github.com/candemir/vitalis-backend/internal/features/workouts"
)

// Summary is the dashboard's headline statistics block.
type Summary struct {
	CompletedWorkouts int `json:"completed_workouts"`
	ActiveGoals       int `json:"active_goals"`
	Streak            int `json:"streak"`
}

// Summarize combines workout and goal records into the dashboard summary.
// Pure and order-independent: permuting the inputs yields the same result,
// and empty inputs yield all zeroes.
func Summarize(ws []workouts.Workout, gs []goals.Goal, now time.Time) Summary {
	completed := 0
	for _, w := range ws {
		if w.Completed {
			completed++
		}
	}

	active := 0
	for _, g := range gs {
		if g.Status == goals.StatusActive {
			active++
		}
	}

	return Summary{
		CompletedWorkouts: completed,
		ActiveGoals:       active,
		Streak:            workouts.ComputeStreak(ws, now),
	}
}
