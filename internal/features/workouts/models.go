package workouts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
)

var Intensities = []string{IntensityLow, IntensityModerate, IntensityHigh}

// Exercise is one entry of a workout's exercise list, stored as jsonb.
type Exercise struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight,omitempty"`
	Duration int     `json:"duration,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// Workout is a scheduled or completed training session. CompletedAt is set
// exactly when Completed flips to true and never while it is false.
type Workout struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         string         `gorm:"size:100;not null" json:"type"`
	Exercises    []Exercise     `gorm:"type:jsonb;serializer:json" json:"exercises"`
	Duration     int            `json:"duration"`
	Intensity    string         `gorm:"size:20;default:'moderate'" json:"intensity"`
	Completed    bool           `gorm:"default:false;index" json:"completed"`
	ScheduledFor time.Time      `gorm:"index" json:"scheduled_for"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func validIntensity(intensity string) bool {
	for _, i := range Intensities {
		if i == intensity {
			return true
		}
	}
	return false
}

// --- AI plan shape ---

// WorkoutPlan is the documented shape the generative collaborator is asked
// to produce. Numeric fields arrive as strings ("3", "60 seconds") and are
// parsed on use.
type WorkoutPlan struct {
	Warmup          []WarmupStep   `json:"warmup"`
	MainWorkout     []PlanExercise `json:"mainWorkout"`
	Cooldown        []CooldownStep `json:"cooldown"`
	TotalDuration   string         `json:"totalDuration"`
	DifficultyLevel string         `json:"difficultyLevel"`
	Notes           []string       `json:"notes"`
}

type WarmupStep struct {
	Exercise  string `json:"exercise"`
	Duration  string `json:"duration"`
	Intensity string `json:"intensity"`
}

type PlanExercise struct {
	Exercise string `json:"exercise"`
	Sets     string `json:"sets"`
	Reps     string `json:"reps"`
	Rest     string `json:"rest"`
}

type CooldownStep struct {
	Exercise string `json:"exercise"`
	Duration string `json:"duration"`
}

// --- DTOs ---

type CreateWorkoutRequest struct {
	Type         string     `json:"type"`
	Exercises    []Exercise `json:"exercises"`
	Duration     int        `json:"duration"`
	Intensity    string     `json:"intensity"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

type UpdateWorkoutRequest struct {
	Type         *string     `json:"type"`
	Exercises    *[]Exercise `json:"exercises"`
	Duration     *int        `json:"duration"`
	Intensity    *string     `json:"intensity"`
	ScheduledFor *time.Time  `json:"scheduled_for"`
}

// GenerateProfile describes the user to the workout planner.
type GenerateProfile struct {
	FitnessLevel  string   `json:"fitness_level"`
	Goals         []string `json:"goals"`
	Equipment     []string `json:"equipment"`
	TimeAvailable int      `json:"time_available"`
	Limitations   []string `json:"limitations"`
}

type GenerateWorkoutRequest struct {
	Profile      GenerateProfile `json:"profile"`
	ScheduledFor *time.Time      `json:"scheduled_for"`
}

type GenerateWorkoutResponse struct {
	Plan    WorkoutPlan `json:"plan"`
	Workout Workout     `json:"workout"`
}

type RecoveryRequest struct {
	Plan    WorkoutPlan     `json:"plan"`
	Profile RecoveryProfile `json:"profile"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}
