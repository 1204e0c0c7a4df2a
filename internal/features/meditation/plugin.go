package meditation

import (
	"github.com/candemir/vitalis-backend/internal/ai"
	"github.com/candemir/vitalis-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MeditationFeature struct {
	aiClient ai.Completer
}

func New(aiClient ai.Completer) *MeditationFeature {
	return &MeditationFeature{aiClient: aiClient}
}

func (f *MeditationFeature) ID() string { return "meditation" }

func (f *MeditationFeature) Models() []interface{} {
	return []interface{}{
		&Session{},
	}
}

func (f *MeditationFeature) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewSessionService(db, f.aiClient)
	handler := NewSessionHandler(svc)

	router.Post("/meditation/sessions", handler.CreateSession)
	router.Get("/meditation/sessions", handler.GetSessions)
}
