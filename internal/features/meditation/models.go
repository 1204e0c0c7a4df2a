package meditation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var MeditationLevels = []string{"beginner", "intermediate", "advanced"}

// Session stores a generated meditation session so the user can replay it.
type Session struct {
	ID               uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood             string           `gorm:"size:50;not null" json:"mood"`
	Level            string           `gorm:"size:20;not null" json:"level"`
	Duration         string           `gorm:"size:50" json:"duration"`
	Phases           []Phase          `gorm:"type:jsonb;serializer:json" json:"phases"`
	BreathingPattern BreathingPattern `gorm:"type:jsonb;serializer:json" json:"breathing_pattern"`
	FocusPoints      []string         `gorm:"type:jsonb;serializer:json" json:"focus_points"`
	GuidanceLevel    string           `gorm:"size:20" json:"guidance_level"`
	CreatedAt        time.Time        `json:"created_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (Session) TableName() string {
	return "meditation_sessions"
}

type Phase struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Instruction string `json:"instruction"`
}

type BreathingPattern struct {
	Inhale string `json:"inhale"`
	Hold   string `json:"hold"`
	Exhale string `json:"exhale"`
}

// SessionContent is the documented shape the generative collaborator is
// asked to produce.
type SessionContent struct {
	Duration         string           `json:"duration"`
	Phases           []Phase          `json:"phases"`
	BreathingPattern BreathingPattern `json:"breathingPattern"`
	FocusPoints      []string         `json:"focusPoints"`
	GuidanceLevel    string           `json:"guidanceLevel"`
}

// --- DTOs ---

type CreateSessionRequest struct {
	Mood  string `json:"mood"`
	Level string `json:"level"`
}

type SessionListResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}
