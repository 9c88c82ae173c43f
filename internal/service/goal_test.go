package service

import (
	"testing"
	"time"

	"github.com/nordlicht/nordlicht/internal/model"
	"github.com/nordlicht/nordlicht/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalServiceCreate(t *testing.T) {
	repo := newFakeGoalRepo()
	svc := NewGoalService(repo)

	target := time.Now().AddDate(0, 1, 0)
	goal, err := svc.Create("user-1", "Run a marathon", target)
	require.NoError(t, err)

	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, "user-1", goal.UserID)
	assert.Equal(t, "Run a marathon", goal.GoalText)
	assert.WithinDuration(t, time.Now(), goal.CreatedAt, time.Second)

	stored, err := repo.ByID("user-1", goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, stored.ID)
}

func TestGoalServiceCreateRequiresText(t *testing.T) {
	svc := NewGoalService(newFakeGoalRepo())

	_, err := svc.Create("user-1", "", time.Now())
	require.ErrorIs(t, err, ErrGoalTextRequired)
}

func TestGoalServiceDeleteReturnsDeletedGoal(t *testing.T) {
	repo := newFakeGoalRepo(&model.Goal{ID: "goal-1", UserID: "user-1", GoalText: "g"})
	svc := NewGoalService(repo)

	goal, err := svc.Delete("user-1", "goal-1")
	require.NoError(t, err)
	assert.Equal(t, "goal-1", goal.ID)

	_, err = repo.ByID("user-1", "goal-1")
	require.ErrorIs(t, err, repository.ErrGoalNotFound)
}

func TestGoalServiceDeleteNotOwned(t *testing.T) {
	repo := newFakeGoalRepo(&model.Goal{ID: "goal-1", UserID: "user-1", GoalText: "g"})
	svc := NewGoalService(repo)

	_, err := svc.Delete("user-2", "goal-1")
	require.ErrorIs(t, err, repository.ErrGoalNotFound)

	// Table unchanged
	_, err = repo.ByID("user-1", "goal-1")
	require.NoError(t, err)
}
