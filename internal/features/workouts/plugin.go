package workouts

import (
	"github.com/candemir/vitalis-backend/internal/ai"
	"github.com/candemir/vitalis-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WorkoutsFeature struct {
	aiClient ai.Completer
}

func New(aiClient ai.Completer) *WorkoutsFeature {
	return &WorkoutsFeature{aiClient: aiClient}
}

func (f *WorkoutsFeature) ID() string { return "workouts" }

func (f *WorkoutsFeature) Models() []interface{} {
	return []interface{}{
		&Workout{},
	}
}

func (f *WorkoutsFeature) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewWorkoutService(db, f.aiClient)
	handler := NewWorkoutHandler(svc)

	// Static paths before :id so "streak" is not parsed as a workout ID.
	router.Post("/workouts", handler.CreateWorkout)
	router.Get("/workouts", handler.GetWorkouts)
	router.Post("/workouts/generate", handler.GenerateWorkout)
	router.Get("/workouts/streak", handler.GetStreak)
	router.Post("/workouts/recovery", handler.Recovery)
	router.Get("/workouts/:id", handler.GetWorkout)
	router.Put("/workouts/:id", handler.UpdateWorkout)
	router.Delete("/workouts/:id", handler.DeleteWorkout)
	router.Post("/workouts/:id/complete", handler.CompleteWorkout)
}
