package handler

import (
	"context"

	"github.com/nordlicht/nordlicht/internal/model"
	"github.com/nordlicht/nordlicht/internal/repository"
	"github.com/nordlicht/nordlicht/internal/service"
)

type fakeGoalRepo struct {
	goals map[string]*model.Goal
}

func newFakeGoalRepo(goals ...*model.Goal) *fakeGoalRepo {
	r := &fakeGoalRepo{goals: make(map[string]*model.Goal)}
	for _, g := range goals {
		r.goals[g.ID] = g
	}
	return r
}

func (r *fakeGoalRepo) Create(goal *model.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) ByID(userID, goalID string) (*model.Goal, error) {
	goal, ok := r.goals[goalID]
	if !ok || goal.UserID != userID {
		return nil, repository.ErrGoalNotFound
	}
	return goal, nil
}

func (r *fakeGoalRepo) ByIDAny(goalID string) (*model.Goal, error) {
	goal, ok := r.goals[goalID]
	if !ok {
		return nil, repository.ErrGoalNotFound
	}
	return goal, nil
}

func (r *fakeGoalRepo) Goals(userID string) ([]*model.Goal, error) {
	var out []*model.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Delete(userID, goalID string) error {
	goal, ok := r.goals[goalID]
	if !ok || goal.UserID != userID {
		return repository.ErrGoalNotFound
	}
	delete(r.goals, goalID)
	return nil
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ByID(id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type fakeGenerator struct {
	response string
}

func (g *fakeGenerator) Generate(ctx context.Context, userMessage string, opts service.GenerateOptions) (string, error) {
	return g.response, nil
}

type fakeMailer struct {
	calls int
	msg   *service.Message
}

func (m *fakeMailer) Send(ctx context.Context, msg *service.Message) (*service.SendResult, error) {
	m.calls++
	m.msg = msg
	return &service.SendResult{ID: "email-123"}, nil
}
