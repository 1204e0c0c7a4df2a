package meditation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/candemir/vitalis-backend/internal/ai"
	"github.com/candemir/vitalis-backend/internal/identity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidMood  = errors.New("mood is required")
	ErrInvalidLevel = errors.New("level must be beginner, intermediate or advanced")
)

const sessionSystemPrompt = `You are an experienced meditation guide. Create meditation sessions with breathing guidance, focus points and mindfulness techniques.
Format the response as a JSON object with the following structure:
{
  "duration": "",
  "phases": [{"name": "", "duration": "", "instruction": ""}],
  "breathingPattern": {"inhale": "", "hold": "", "exhale": ""},
  "focusPoints": [],
  "guidanceLevel": ""
}
Return ONLY the JSON object, no extra text.`

type SessionService struct {
	db       *gorm.DB
	aiClient ai.Completer
}

func NewSessionService(db *gorm.DB, aiClient ai.Completer) *SessionService {
	return &SessionService{db: db, aiClient: aiClient}
}

// ParseSessionContent decodes model output into the documented session
// shape; a session without phases is treated as unparseable.
func ParseSessionContent(content string) (*SessionContent, error) {
	var sc SessionContent
	if err := ai.DecodeJSON(content, &sc); err != nil {
		return nil, err
	}
	if len(sc.Phases) == 0 {
		return nil, errors.New("session has no phases")
	}
	return &sc, nil
}

// DefaultSessionContent is the fixed substitute used whenever the
// generative collaborator fails.
func DefaultSessionContent() SessionContent {
	return SessionContent{
		Duration: "10 minutes",
		Phases: []Phase{
			{Name: "Breathing focus", Duration: "5 minutes", Instruction: "Focus on your breath"},
		},
		BreathingPattern: BreathingPattern{Inhale: "4 counts", Hold: "4 counts", Exhale: "4 counts"},
		FocusPoints:      []string{"Breath awareness"},
		GuidanceLevel:    "beginner",
	}
}

func validLevel(level string) bool {
	for _, l := range MeditationLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Create generates a session for the user's mood and experience level and
// persists it. AI failures are recovered with the default session.
func (s *SessionService) Create(ctx context.Context, userID uuid.UUID, req CreateSessionRequest) (*Session, error) {
	if strings.TrimSpace(req.Mood) == "" {
		return nil, ErrInvalidMood
	}
	level := req.Level
	if level == "" {
		level = "beginner"
	}
	if !validLevel(level) {
		return nil, ErrInvalidLevel
	}

	prompt := fmt.Sprintf(
		"Create a meditation session for a %s level user who is feeling %s.\nInclude guidance for breathing, focus points, and mindfulness techniques.",
		level, req.Mood,
	)

	var content SessionContent
	raw, err := s.aiClient.Complete(ctx, sessionSystemPrompt, prompt)
	if err != nil {
		slog.Warn("meditation generation failed, using default session", "error", err)
		content = DefaultSessionContent()
	} else if parsed, perr := ParseSessionContent(raw); perr != nil {
		slog.Warn("meditation response unparseable, using default session", "error", perr)
		content = DefaultSessionContent()
	} else {
		content = *parsed
	}

	session := Session{
		ID:               uuid.New(),
		UserID:           userID,
		Mood:             req.Mood,
		Level:            level,
		Duration:         content.Duration,
		Phases:           content.Phases,
		BreathingPattern: content.BreathingPattern,
		FocusPoints:      content.FocusPoints,
		GuidanceLevel:    content.GuidanceLevel,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to store meditation session: %w", err)
	}
	return &session, nil
}

// List returns paginated sessions for a user, newest first.
func (s *SessionService) List(userID uuid.UUID, limit, offset int) ([]Session, int64, error) {
	var sessions []Session
	var total int64

	if err := s.db.Model(&Session{}).Scopes(identity.ForUser(userID)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count meditation sessions: %w", err)
	}

	err := s.db.Scopes(identity.ForUser(userID)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meditation sessions: %w", err)
	}

	return sessions, total, nil
}
