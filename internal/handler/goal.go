package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nordlicht/nordlicht/internal/ctxkeys"
	"github.com/nordlicht/nordlicht/internal/model"
	"github.com/nordlicht/nordlicht/internal/repository"
	"github.com/nordlicht/nordlicht/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type createGoalRequest struct {
	GoalText   string `json:"goalText"`
	TargetDate string `json:"targetDate"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGoalRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondValidationError(w, "request body must be valid JSON")
		return
	}

	if req.GoalText == "" {
		respondValidationError(w, "goalText is required")
		return
	}

	targetDate, err := parseDate(req.TargetDate)
	if err != nil {
		respondValidationError(w, "targetDate must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return
	}

	goal, err := h.goalService.Create(user.ID, req.GoalText, targetDate)
	if err != nil {
		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}

	respondData(w, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to load goals")
		return
	}

	if goals == nil {
		goals = []*model.Goal{}
	}

	respondData(w, goals)
}

// GetByID returns the goal, or null when no goal with that id belongs to the
// requesting user.
func (h *GoalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			respondData(w, nil)
			return
		}
		slog.Error("failed to get goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to load goal")
		return
	}

	respondData(w, goal)
}

// Delete removes the goal and returns the deleted record.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			respondError(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to delete goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to delete goal")
		return
	}

	respondData(w, goal)
}

// parseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
