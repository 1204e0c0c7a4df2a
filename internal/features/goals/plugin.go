package goals

import (
	"github.com/candemir/vitalis-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GoalsFeature struct{}

func New() *GoalsFeature {
	return &GoalsFeature{}
}

func (f *GoalsFeature) ID() string { return "goals" }

func (f *GoalsFeature) Models() []interface{} {
	return []interface{}{
		&Goal{},
		&GoalProgress{},
	}
}

func (f *GoalsFeature) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewGoalService(db)
	handler := NewGoalHandler(svc)

	router.Post("/goals", handler.CreateGoal)
	router.Get("/goals", handler.GetGoals)
	router.Get("/goals/:id", handler.GetGoal)
	router.Put("/goals/:id", handler.UpdateGoal)
	router.Delete("/goals/:id", handler.DeleteGoal)
	router.Post("/goals/:id/progress", handler.AppendProgress)
	router.Patch("/goals/:id/status", handler.UpdateStatus)
}
