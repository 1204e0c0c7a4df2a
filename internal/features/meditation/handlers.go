package meditation

import (
	"errors"

	"github.com/candemir/vitalis-backend/internal/dto"
	"github.com/candemir/vitalis-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	sessionService *SessionService
}

func NewSessionHandler(sessionService *SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateSession handles POST /meditation/sessions.
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	session, err := h.sessionService.Create(c.UserContext(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidMood) || errors.Is(err, ErrInvalidLevel) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create meditation session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSessions handles GET /meditation/sessions.
func (h *SessionHandler) GetSessions(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	sessions, total, err := h.sessionService.List(userID, limit, (page-1)*limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch meditation sessions",
		})
	}

	return c.JSON(SessionListResponse{
		Sessions: sessions,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}
