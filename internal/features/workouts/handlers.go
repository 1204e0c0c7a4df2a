package workouts

import (
	"errors"

	"github.com/candemir/vitalis-backend/internal/dto"
	"github.com/candemir/vitalis-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WorkoutHandler struct {
	workoutService *WorkoutService
}

func NewWorkoutHandler(workoutService *WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

func isValidationErr(err error) bool {
	return errors.Is(err, ErrInvalidWorkout) ||
		errors.Is(err, ErrInvalidIntensity) ||
		errors.Is(err, ErrEmptyWorkoutPlan) ||
		errors.Is(err, ErrInvalidExercise) ||
		errors.Is(err, ErrInvalidWeight)
}

// CreateWorkout handles POST /workouts.
func (h *WorkoutHandler) CreateWorkout(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	workout, err := h.workoutService.Create(userID, req)
	if err != nil {
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create workout",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(workout)
}

// GenerateWorkout handles POST /workouts/generate.
func (h *WorkoutHandler) GenerateWorkout(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req GenerateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.workoutService.Generate(c.UserContext(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to generate workout",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetWorkouts handles GET /workouts.
func (h *WorkoutHandler) GetWorkouts(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	workouts, err := h.workoutService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch workouts",
		})
	}

	return c.JSON(workouts)
}

// GetStreak handles GET /workouts/streak.
func (h *WorkoutHandler) GetStreak(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	streak, err := h.workoutService.Streak(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute streak",
		})
	}

	return c.JSON(StreakResponse{Streak: streak})
}

// Recovery handles POST /workouts/recovery. Purely deterministic: no AI
// call, no persistence.
func (h *WorkoutHandler) Recovery(c *fiber.Ctx) error {
	if _, err := identity.GetUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req RecoveryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	plan, err := BuildRecoveryPlan(req.Plan, req.Profile)
	if err != nil {
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build recovery plan",
		})
	}

	return c.JSON(plan)
}

// GetWorkout handles GET /workouts/:id.
func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid workout ID",
		})
	}

	workout, err := h.workoutService.Get(userID, workoutID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Workout not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch workout",
		})
	}

	return c.JSON(workout)
}

// UpdateWorkout handles PUT /workouts/:id.
func (h *WorkoutHandler) UpdateWorkout(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid workout ID",
		})
	}

	var req UpdateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	workout, err := h.workoutService.Update(userID, workoutID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrWorkoutNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Workout not found",
			})
		case isValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update workout",
			})
		}
	}

	return c.JSON(workout)
}

// DeleteWorkout handles DELETE /workouts/:id.
func (h *WorkoutHandler) DeleteWorkout(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid workout ID",
		})
	}

	if err := h.workoutService.Delete(userID, workoutID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Workout not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete workout",
		})
	}

	return c.JSON(fiber.Map{"message": "Workout deleted"})
}

// CompleteWorkout handles POST /workouts/:id/complete.
func (h *WorkoutHandler) CompleteWorkout(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid workout ID",
		})
	}

	workout, err := h.workoutService.Complete(userID, workoutID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Workout not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to complete workout",
		})
	}

	return c.JSON(workout)
}
