package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var FitnessLevels = []string{"beginner", "intermediate", "advanced"}

// User owns all goals, workouts and meditation sessions created through
// the API; every feature query is scoped by the user id.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password     string         `gorm:"not null" json:"-"`
	FitnessLevel string         `gorm:"size:20;default:'beginner'" json:"fitness_level"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func ValidFitnessLevel(level string) bool {
	for _, l := range FitnessLevels {
		if l == level {
			return true
		}
	}
	return false
}
