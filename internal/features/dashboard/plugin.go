package dashboard

import (
	"github.com/candemir/vitalis-backend/internal/ai"
	"github.com/candemir/vitalis-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardFeature struct {
	aiClient ai.Completer
}

func New(aiClient ai.Completer) *DashboardFeature {
	return &DashboardFeature{aiClient: aiClient}
}

func (f *DashboardFeature) ID() string { return "dashboard" }

// Models returns nothing: the dashboard reads goal and workout tables
// owned by the other features.
func (f *DashboardFeature) Models() []interface{} {
	return nil
}

func (f *DashboardFeature) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewDashboardService(db, f.aiClient)
	handler := NewDashboardHandler(svc)

	router.Get("/dashboard/summary", handler.GetSummary)
	router.Get("/dashboard/insights", handler.GetInsights)
}
