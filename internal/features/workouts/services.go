package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/candemir/vitalis-backend/internal/ai"
	"github.com/candemir/vitalis-backend/internal/identity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrInvalidWorkout   = errors.New("workout type is required")
	ErrInvalidIntensity = errors.New("intensity must be low, moderate or high")
)

type WorkoutService struct {
	db       *gorm.DB
	aiClient ai.Completer
}

func NewWorkoutService(db *gorm.DB, aiClient ai.Completer) *WorkoutService {
	return &WorkoutService{db: db, aiClient: aiClient}
}

func (s *WorkoutService) Create(userID uuid.UUID, req CreateWorkoutRequest) (*Workout, error) {
	if req.Type == "" {
		return nil, ErrInvalidWorkout
	}

	intensity := req.Intensity
	if intensity == "" {
		intensity = IntensityModerate
	}
	if !validIntensity(intensity) {
		return nil, ErrInvalidIntensity
	}

	scheduledFor := time.Now()
	if req.ScheduledFor != nil {
		scheduledFor = *req.ScheduledFor
	}

	workout := Workout{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         req.Type,
		Exercises:    req.Exercises,
		Duration:     req.Duration,
		Intensity:    intensity,
		ScheduledFor: scheduledFor,
	}

	if err := s.db.Create(&workout).Error; err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return &workout, nil
}

// Generate builds a workout from an AI plan. The plan's intensity is
// classified deterministically; when classification rejects the plan the
// stated difficulty level is used instead.
func (s *WorkoutService) Generate(ctx context.Context, userID uuid.UUID, req GenerateWorkoutRequest) (*GenerateWorkoutResponse, error) {
	plan := s.GeneratePlan(ctx, req.Profile)

	intensity, err := ClassifyIntensity(plan)
	if err != nil {
		if validIntensity(plan.DifficultyLevel) {
			intensity = plan.DifficultyLevel
		} else {
			intensity = IntensityModerate
		}
	}

	scheduledFor := time.Now()
	if req.ScheduledFor != nil {
		scheduledFor = *req.ScheduledFor
	}

	workout := Workout{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         "generated",
		Exercises:    planToExercises(plan),
		Duration:     planDurationMinutes(plan.TotalDuration),
		Intensity:    intensity,
		ScheduledFor: scheduledFor,
	}

	if err := s.db.Create(&workout).Error; err != nil {
		return nil, fmt.Errorf("failed to store generated workout: %w", err)
	}

	return &GenerateWorkoutResponse{Plan: plan, Workout: workout}, nil
}

func (s *WorkoutService) List(userID uuid.UUID) ([]Workout, error) {
	var out []Workout
	err := s.db.Scopes(identity.ForUser(userID)).
		Order("scheduled_for DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return out, nil
}

func (s *WorkoutService) Get(userID, workoutID uuid.UUID) (*Workout, error) {
	var workout Workout
	err := s.db.Scopes(identity.ForUser(userID)).First(&workout, "id = ?", workoutID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workout: %w", err)
	}
	return &workout, nil
}

func (s *WorkoutService) Update(userID, workoutID uuid.UUID, req UpdateWorkoutRequest) (*Workout, error) {
	workout, err := s.Get(userID, workoutID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if *req.Type == "" {
			return nil, ErrInvalidWorkout
		}
		workout.Type = *req.Type
	}
	if req.Exercises != nil {
		workout.Exercises = *req.Exercises
	}
	if req.Duration != nil {
		workout.Duration = *req.Duration
	}
	if req.Intensity != nil {
		if !validIntensity(*req.Intensity) {
			return nil, ErrInvalidIntensity
		}
		workout.Intensity = *req.Intensity
	}
	if req.ScheduledFor != nil {
		workout.ScheduledFor = *req.ScheduledFor
	}

	if err := s.db.Save(workout).Error; err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}
	return workout, nil
}

func (s *WorkoutService) Delete(userID, workoutID uuid.UUID) error {
	result := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", workoutID).Delete(&Workout{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete workout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// Complete marks a workout done and stamps CompletedAt. Completing an
// already completed workout keeps the original timestamp.
func (s *WorkoutService) Complete(userID, workoutID uuid.UUID) (*Workout, error) {
	workout, err := s.Get(userID, workoutID)
	if err != nil {
		return nil, err
	}

	if workout.Completed {
		return workout, nil
	}

	now := time.Now()
	workout.Completed = true
	workout.CompletedAt = &now

	if err := s.db.Model(&Workout{}).Where("id = ?", workout.ID).Updates(map[string]interface{}{
		"completed":    true,
		"completed_at": now,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to complete workout: %w", err)
	}
	return workout, nil
}

// Streak loads the user's history and derives the current streak.
func (s *WorkoutService) Streak(userID uuid.UUID) (int, error) {
	workouts, err := s.List(userID)
	if err != nil {
		return 0, err
	}
	return ComputeStreak(workouts, time.Now()), nil
}
