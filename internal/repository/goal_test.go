package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/nordlicht/nordlicht/internal/db"
	"github.com/nordlicht/nordlicht/internal/model"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	return database
}

func createUser(t *testing.T, database *sqlx.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if email != "" {
		user.Email = &email
	}

	err := NewUserRepository(database).Create(user)
	require.NoError(t, err)
	return user
}

func createGoal(t *testing.T, repo GoalRepository, userID, text string) *model.Goal {
	t.Helper()

	goal := &model.Goal{
		ID:         uuid.New().String(),
		UserID:     userID,
		GoalText:   text,
		TargetDate: time.Now().AddDate(0, 0, 7),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(goal))
	return goal
}

func TestGoalRepositoryCreateAndList(t *testing.T) {
	database := testDB(t)
	repo := NewGoalRepository(database)

	owner := createUser(t, database, "owner@example.com")
	other := createUser(t, database, "other@example.com")

	goal := createGoal(t, repo, owner.ID, "Run a marathon")
	createGoal(t, repo, other.ID, "Learn to sail")

	goals, err := repo.Goals(owner.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.Equal(t, goal.ID, goals[0].ID)
	require.Equal(t, "Run a marathon", goals[0].GoalText)
}

func TestGoalRepositoryListNewestFirst(t *testing.T) {
	database := testDB(t)
	repo := NewGoalRepository(database)
	owner := createUser(t, database, "owner@example.com")

	first := &model.Goal{
		ID:         uuid.New().String(),
		UserID:     owner.ID,
		GoalText:   "first",
		TargetDate: time.Now(),
		CreatedAt:  time.Now().Add(-time.Hour),
	}
	second := &model.Goal{
		ID:         uuid.New().String(),
		UserID:     owner.ID,
		GoalText:   "second",
		TargetDate: time.Now(),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	goals, err := repo.Goals(owner.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	require.Equal(t, second.ID, goals[0].ID)
	require.Equal(t, first.ID, goals[1].ID)
}

func TestGoalRepositoryByIDScopedToOwner(t *testing.T) {
	database := testDB(t)
	repo := NewGoalRepository(database)

	owner := createUser(t, database, "owner@example.com")
	other := createUser(t, database, "other@example.com")
	goal := createGoal(t, repo, owner.ID, "Run a marathon")

	found, err := repo.ByID(owner.ID, goal.ID)
	require.NoError(t, err)
	require.Equal(t, goal.ID, found.ID)

	_, err = repo.ByID(other.ID, goal.ID)
	require.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalRepositoryByIDAnyIgnoresOwner(t *testing.T) {
	database := testDB(t)
	repo := NewGoalRepository(database)

	owner := createUser(t, database, "owner@example.com")
	goal := createGoal(t, repo, owner.ID, "Run a marathon")

	found, err := repo.ByIDAny(goal.ID)
	require.NoError(t, err)
	require.Equal(t, owner.ID, found.UserID)

	_, err = repo.ByIDAny(uuid.New().String())
	require.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalRepositoryDelete(t *testing.T) {
	database := testDB(t)
	repo := NewGoalRepository(database)

	owner := createUser(t, database, "owner@example.com")
	other := createUser(t, database, "other@example.com")
	goal := createGoal(t, repo, owner.ID, "Run a marathon")

	// Non-owned and nonexistent deletes fail and leave the table unchanged
	require.ErrorIs(t, repo.Delete(other.ID, goal.ID), ErrGoalNotFound)
	require.ErrorIs(t, repo.Delete(owner.ID, uuid.New().String()), ErrGoalNotFound)

	goals, err := repo.Goals(owner.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)

	require.NoError(t, repo.Delete(owner.ID, goal.ID))

	goals, err = repo.Goals(owner.ID)
	require.NoError(t, err)
	require.Empty(t, goals)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	database := testDB(t)
	repo := NewUserRepository(database)

	email := "dup@example.com"
	createUser(t, database, email)

	err := repo.Create(&model.User{
		ID:        uuid.New().String(),
		Email:     &email,
		CreatedAt: time.Now(),
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}
