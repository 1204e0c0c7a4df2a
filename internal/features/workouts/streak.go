package workouts

import (
	"sort"
	"time"
)

// streakWindow is the gap that keeps a streak alive: a fixed 24-hour
// window, not a calendar-day boundary.
const streakWindow = 24 * time.Hour

// ComputeStreak derives the consecutive-day completion streak from a
// user's workout history. Completed workouts are walked newest first,
// starting from now; each one whose completion time lies within 24 hours
// (inclusive) of the previously accepted one extends the streak, and the
// first larger gap ends it. Workouts within the same window count
// individually, so two sessions completed the same afternoon both add one.
//
// Workouts that are not completed, or carry no completion timestamp, are
// ignored. The function is pure: it never mutates its input.
func ComputeStreak(workouts []Workout, now time.Time) int {
	completed := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.Completed && w.CompletedAt != nil && !w.CompletedAt.IsZero() {
			completed = append(completed, w)
		}
	}

	sort.Slice(completed, func(i, j int) bool {
		return completed[i].CompletedAt.After(*completed[j].CompletedAt)
	})

	streak := 0
	cursor := now
	for _, w := range completed {
		if cursor.Sub(*w.CompletedAt) > streakWindow {
			break
		}
		streak++
		cursor = *w.CompletedAt
	}
	return streak
}
