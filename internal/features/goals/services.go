package goals

import (
	"errors"
	"fmt"
	"time"

	"github.com/candemir/vitalis-backend/internal/identity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound   = errors.New("goal not found")
	ErrInvalidGoal    = errors.New("title, category, unit and a positive target value are required")
	ErrInvalidStatus  = errors.New("status must be active, completed or abandoned")
	ErrInvalidCategory = errors.New("invalid goal category")
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) Create(userID uuid.UUID, req CreateGoalRequest) (*Goal, error) {
	if req.Title == "" || req.Unit == "" || req.TargetValue <= 0 {
		return nil, ErrInvalidGoal
	}
	if !validCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	start := time.Now()
	if req.StartDate != nil {
		start = *req.StartDate
	}

	goal := Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Status:      StatusActive,
		StartDate:   start,
		EndDate:     req.EndDate,
	}

	if err := s.db.Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return &goal, nil
}

func (s *GoalService) List(userID uuid.UUID) ([]Goal, error) {
	var out []Goal
	err := s.db.Scopes(identity.ForUser(userID)).
		Preload("Progress", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return out, nil
}

func (s *GoalService) Get(userID, goalID uuid.UUID) (*Goal, error) {
	var goal Goal
	err := s.db.Scopes(identity.ForUser(userID)).
		Preload("Progress", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		First(&goal, "id = ?", goalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goal: %w", err)
	}
	return &goal, nil
}

func (s *GoalService) Update(userID, goalID uuid.UUID, req UpdateGoalRequest) (*Goal, error) {
	goal, err := s.Get(userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		goal.Category = *req.Category
	}
	if req.TargetValue != nil {
		if *req.TargetValue <= 0 {
			return nil, ErrInvalidGoal
		}
		goal.TargetValue = *req.TargetValue
	}
	if req.Unit != nil {
		goal.Unit = *req.Unit
	}
	if req.EndDate != nil {
		goal.EndDate = *req.EndDate
	}

	if err := s.db.Omit("Progress").Save(goal).Error; err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

// Delete removes a goal and its ledger. This is the only operation that
// ever discards progress entries.
func (s *GoalService) Delete(userID, goalID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(identity.ForUser(userID)).Where("id = ?", goalID).Delete(&Goal{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete goal: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrGoalNotFound
		}
		return tx.Where("goal_id = ?", goalID).Delete(&GoalProgress{}).Error
	})
}

// AppendProgress runs the ledger append as a read-modify-write inside a
// transaction so concurrent appends to the same goal cannot lose updates.
func (s *GoalService) AppendProgress(userID, goalID uuid.UUID, req AppendProgressRequest) (*Goal, error) {
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	var goal Goal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Scopes(identity.ForUser(userID)).
			Preload("Progress", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
			First(&goal, "id = ?", goalID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGoalNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to fetch goal: %w", err)
		}

		if err := ApplyProgress(&goal, req.Value, date); err != nil {
			return err
		}

		entry := &goal.Progress[len(goal.Progress)-1]
		entry.ID = uuid.New()
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to store progress entry: %w", err)
		}

		return tx.Model(&Goal{}).Where("id = ?", goal.ID).Updates(map[string]interface{}{
			"current_value": goal.CurrentValue,
			"status":        goal.Status,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) UpdateStatus(userID, goalID uuid.UUID, status string) (*Goal, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	result := s.db.Model(&Goal{}).Scopes(identity.ForUser(userID)).
		Where("id = ?", goalID).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update goal status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrGoalNotFound
	}

	return s.Get(userID, goalID)
}
