package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nordlicht/nordlicht/internal/model"
	"github.com/nordlicht/nordlicht/internal/repository"
)

var (
	ErrGoalTextRequired = errors.New("goal text is required")
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

func (s *GoalService) Create(userID, goalText string, targetDate time.Time) (*model.Goal, error) {
	if goalText == "" {
		return nil, ErrGoalTextRequired
	}

	goal := &model.Goal{
		ID:         uuid.New().String(),
		UserID:     userID,
		GoalText:   goalText,
		TargetDate: targetDate,
		CreatedAt:  time.Now(),
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

// Goals lists the user's goals, newest first.
func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	return s.repo.Goals(userID)
}

// Delete removes the goal and returns the deleted record.
func (s *GoalService) Delete(userID, goalID string) (*model.Goal, error) {
	// Verify ownership
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	err = s.repo.Delete(userID, goalID)
	if err != nil {
		return nil, err
	}

	return goal, nil
}
