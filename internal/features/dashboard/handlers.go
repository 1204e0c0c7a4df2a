package dashboard

import (
	"github.com/candemir/vitalis-backend/internal/dto"
	"github.com/candemir/vitalis-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *DashboardService
}

func NewDashboardHandler(dashboardService *DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles GET /dashboard/summary.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	summary, err := h.dashboardService.Summary(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute dashboard summary",
		})
	}

	return c.JSON(summary)
}

// GetInsights handles GET /dashboard/insights.
func (h *DashboardHandler) GetInsights(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	insights, err := h.dashboardService.Insights(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to generate insights",
		})
	}

	return c.JSON(insights)
}
