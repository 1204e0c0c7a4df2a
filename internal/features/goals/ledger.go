package goals

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidProgressValue = errors.New("progress value must be a finite number")
	ErrInvalidProgressDate  = errors.New("progress date must be a valid timestamp")
)

// ApplyProgress appends a ledger entry to the goal in memory and recomputes
// the derived fields. Entries may arrive out of date order; CurrentValue
// always follows the maximum-date entry. Reaching TargetValue transitions
// the goal to completed, and that transition is one-way: later appends with
// smaller values never revert it.
//
// Validation happens before any mutation, so a rejected append leaves the
// goal untouched.
func ApplyProgress(g *Goal, value float64, date time.Time) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ErrInvalidProgressValue
	}
	if date.IsZero() {
		return ErrInvalidProgressDate
	}

	g.Progress = append(g.Progress, GoalProgress{
		GoalID: g.ID,
		Value:  value,
		Date:   date,
	})
	g.CurrentValue = LedgerValue(g.Progress, g.CurrentValue)

	if g.Status != StatusCompleted && g.CurrentValue >= g.TargetValue {
		g.Status = StatusCompleted
	}
	return nil
}

// LedgerValue returns the value of the entry with the maximum date.
// Entries must be in append order; among entries sharing the maximum date
// the one appended last wins. An empty ledger yields the fallback.
func LedgerValue(entries []GoalProgress, fallback float64) float64 {
	if len(entries) == 0 {
		return fallback
	}

	latest := entries[0]
	for _, e := range entries[1:] {
		if !e.Date.Before(latest.Date) {
			latest = e
		}
	}
	return latest.Value
}
