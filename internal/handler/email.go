package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nordlicht/nordlicht/internal/repository"
	"github.com/nordlicht/nordlicht/internal/service"
	"github.com/nordlicht/nordlicht/internal/validation"
)

type EmailHandler struct {
	notificationService *service.NotificationService
	aiService           *service.AIService
	mailService         service.Mailer
	appName             string
}

func NewEmailHandler(
	notificationService *service.NotificationService,
	aiService *service.AIService,
	mailService service.Mailer,
	appName string,
) *EmailHandler {
	return &EmailHandler{
		notificationService: notificationService,
		aiService:           aiService,
		mailService:         mailService,
		appName:             appName,
	}
}

type sendEmailRequest struct {
	GoalID string `json:"goalId"`
}

// SendGoalEmail triggers the motivational email pipeline for a goal.
func (h *EmailHandler) SendGoalEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondValidationError(w, "request body must be valid JSON")
		return
	}

	if req.GoalID == "" {
		respondValidationError(w, "goalId is required")
		return
	}

	result, err := h.notificationService.SendGoalEmail(r.Context(), req.GoalID)
	if err != nil {
		slog.Error("failed to send goal email", "error", err, "goal_id", req.GoalID)
		if errors.Is(err, repository.ErrGoalNotFound) {
			respondError(w, http.StatusInternalServerError, "Goal not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(w, result)
}

// TestAI exercises the text-generation client directly. Registered only in
// development.
func (h *EmailHandler) TestAI(w http.ResponseWriter, r *http.Request) {
	userMessage := r.URL.Query().Get("message")
	if userMessage == "" {
		userMessage = "What is Go in one sentence?"
	}

	opts := service.GenerateOptions{}
	modelName := "Haiku (default)"
	if r.URL.Query().Get("model") == "sonnet" {
		opts.Model = h.aiService.CapableModel()
		modelName = "Sonnet"
	}

	response, err := h.aiService.Generate(r.Context(), userMessage, opts)
	if err != nil {
		slog.Error("ai service test failed", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(w, map[string]any{
		"prompt":   userMessage,
		"response": response,
		"model":    modelName,
	})
}

// TestMail sends a fixed test email. Registered only in development.
func (h *EmailHandler) TestMail(w http.ResponseWriter, r *http.Request) {
	toEmail := r.URL.Query().Get("to")
	if toEmail == "" {
		respondValidationError(w, "missing 'to' parameter, usage: /api/test-mail?to=email@example.com")
		return
	}

	err := validation.ValidateEmail(toEmail)
	if err != nil {
		respondValidationError(w, err.Error())
		return
	}

	now := time.Now().Format(time.RFC3339)
	result, err := h.mailService.Send(r.Context(), &service.Message{
		To:      []service.Recipient{{Email: toEmail}},
		Subject: fmt.Sprintf("Test Email from %s", h.appName),
		HTML: fmt.Sprintf(`<h1>Test Email</h1>
<p>This is a test email from your %s application.</p>
<p>If you're seeing this, your email service is working correctly!</p>
<hr />
<p><small>Sent at %s</small></p>`, h.appName, now),
		Text: fmt.Sprintf(`Test Email

This is a test email from your %s application.
If you're seeing this, your email service is working correctly!

Sent at %s`, h.appName, now),
	})
	if err != nil {
		slog.Error("mail service test failed", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(w, map[string]any{
		"emailId": result.ID,
		"to":      toEmail,
		"message": "Email sent successfully",
	})
}
