package goals

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
)

var GoalStatuses = []string{StatusActive, StatusCompleted, StatusAbandoned}

var GoalCategories = []string{"strength", "cardio", "flexibility", "weight", "nutrition", "other"}

// Goal is a user-defined target with an append-only progress ledger.
// CurrentValue mirrors the latest-by-date ledger entry and is recomputed
// on every append.
type Goal struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string         `gorm:"size:200;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Category     string         `gorm:"size:20;not null" json:"category"`
	TargetValue  float64        `gorm:"not null" json:"target_value"`
	CurrentValue float64        `gorm:"default:0" json:"current_value"`
	Unit         string         `gorm:"size:50;not null" json:"unit"`
	Status       string         `gorm:"size:20;default:'active';index" json:"status"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	Progress     []GoalProgress `gorm:"foreignKey:GoalID" json:"progress"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// GoalProgress is one ledger entry. Seq records append order and breaks
// ties between entries sharing the same date.
type GoalProgress struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Seq       int64     `gorm:"autoIncrement;uniqueIndex" json:"-"`
	Value     float64   `gorm:"not null" json:"value"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func (GoalProgress) TableName() string {
	return "goal_progress"
}

func validCategory(category string) bool {
	for _, c := range GoalCategories {
		if c == category {
			return true
		}
	}
	return false
}

func validStatus(status string) bool {
	for _, s := range GoalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// --- DTOs ---

type CreateGoalRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	TargetValue float64    `json:"target_value"`
	Unit        string     `json:"unit"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
}

type UpdateGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	TargetValue *float64   `json:"target_value"`
	Unit        *string    `json:"unit"`
	EndDate     *time.Time `json:"end_date"`
}

type AppendProgressRequest struct {
	Value float64    `json:"value"`
	Date  *time.Time `json:"date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
