package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/candemir/vitalis-backend/internal/ai"
	"github.com/candemir/vitalis-backend/internal/features/goals"
	"github.com/candemir/vitalis-backend/internal/features/workouts"
	"github.com/candemir/vitalis-backend/internal/identity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardService struct {
	db       *gorm.DB
	aiClient ai.Completer
}

func NewDashboardService(db *gorm.DB, aiClient ai.Completer) *DashboardService {
	return &DashboardService{db: db, aiClient: aiClient}
}

func (s *DashboardService) loadRecords(userID uuid.UUID) ([]workouts.Workout, []goals.Goal, error) {
	var ws []workouts.Workout
	if err := s.db.Scopes(identity.ForUser(userID)).Order("scheduled_for DESC").Find(&ws).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load workouts: %w", err)
	}

	var gs []goals.Goal
	if err := s.db.Scopes(identity.ForUser(userID)).Find(&gs).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load goals: %w", err)
	}
	return ws, gs, nil
}

// Summary computes the dashboard statistics over the user's records.
func (s *DashboardService) Summary(userID uuid.UUID) (*Summary, error) {
	ws, gs, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(ws, gs, time.Now())
	return &summary, nil
}

// Insights assembles metrics from the user's records and asks the AI
// collaborator for an analysis, substituting the fixed defaults on any
// upstream failure.
func (s *DashboardService) Insights(ctx context.Context, userID uuid.UUID) (*Insights, error) {
	ws, gs, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}

	m := metrics{
		Summary:       Summarize(ws, gs, time.Now()),
		TotalWorkouts: len(ws),
		TotalGoals:    len(gs),
	}

	// Last seven workouts, newest first per the list ordering.
	recent := ws
	if len(recent) > 7 {
		recent = recent[:7]
	}
	for _, w := range recent {
		m.RecentIntensity = append(m.RecentIntensity, w.Intensity)
		m.RecentDurations = append(m.RecentDurations, w.Duration)
	}

	var ratioSum float64
	var ratioCount int
	for _, g := range gs {
		m.GoalCategories = append(m.GoalCategories, g.Category)
		if g.TargetValue > 0 {
			ratioSum += g.CurrentValue / g.TargetValue
			ratioCount++
		}
	}
	if ratioCount > 0 {
		m.AvgProgressRatio = ratioSum / float64(ratioCount)
	}

	insights := s.generateInsights(ctx, m)
	return &insights, nil
}
