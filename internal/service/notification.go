package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/nordlicht/nordlicht/internal/model"
	"github.com/nordlicht/nordlicht/internal/repository"
)

const subjectGoalTextLimit = 50

// NotificationResult is returned by SendGoalEmail. Success false with a
// message is the defined soft outcome when the goal's owner has no email on
// file; it is not an error.
type NotificationResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	EmailID       string `json:"emailId,omitempty"`
	DaysRemaining int    `json:"daysRemaining"`
}

// NotificationService composes and delivers the motivational goal email:
// load goal, compute days remaining, generate prose, render HTML, send.
// The three external calls run sequentially with no retries and no
// compensation if delivery fails after generation.
type NotificationService struct {
	goals     repository.GoalRepository
	users     repository.UserRepository
	generator TextGenerator
	mailer    Mailer
}

func NewNotificationService(
	goals repository.GoalRepository,
	users repository.UserRepository,
	generator TextGenerator,
	mailer Mailer,
) *NotificationService {
	return &NotificationService{
		goals:     goals,
		users:     users,
		generator: generator,
		mailer:    mailer,
	}
}

// SendGoalEmail triggers the notification pipeline for a goal. The goal is
// loaded without owner scoping: the trigger endpoint is unauthenticated by
// contract.
func (s *NotificationService) SendGoalEmail(ctx context.Context, goalID string) (*NotificationResult, error) {
	goal, err := s.goals.ByIDAny(goalID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.ByID(goal.UserID)
	if err != nil {
		return nil, err
	}

	daysRemaining := goal.DaysRemaining(time.Now())

	if !user.HasEmail() {
		return &NotificationResult{
			Success:       false,
			Message:       "The user has no registered email",
			DaysRemaining: daysRemaining,
		}, nil
	}

	content, err := s.generator.Generate(ctx, goalEmailPrompt(goal, daysRemaining), GenerateOptions{})
	if err != nil {
		return nil, err
	}

	sent, err := s.mailer.Send(ctx, &Message{
		To:      []Recipient{{Email: *user.Email}},
		Subject: goalEmailSubject(goal.GoalText),
		HTML:    goalEmailHTML(user.DisplayName(), content, goal, daysRemaining),
	})
	if err != nil {
		return nil, err
	}

	return &NotificationResult{
		Success:       true,
		EmailID:       sent.ID,
		DaysRemaining: daysRemaining,
	}, nil
}

// goalEmailPrompt builds the fixed motivational prompt. The model is
// instructed to return body-only prose; its output is not structurally
// validated.
func goalEmailPrompt(goal *model.Goal, daysRemaining int) string {
	return fmt.Sprintf(`You are a motivational coach. Generate an encouraging and personalized email for a user working towards their goal.

Goal: %s
Days remaining: %d days
Target date: %s

The email should:
- Be encouraging and motivational
- Acknowledge the time remaining
- Provide actionable advice or tips
- Be concise (2-3 short paragraphs)
- Have a warm, supportive tone
- End with encouragement

Generate ONLY the email body content (no subject line, no salutation, just the content).`,
		goal.GoalText, daysRemaining, formatDate(goal.TargetDate))
}

// goalEmailSubject truncates the goal text to 50 characters, appending an
// ellipsis when truncated.
func goalEmailSubject(goalText string) string {
	truncated := goalText
	if len(truncated) > subjectGoalTextLimit {
		truncated = truncated[:subjectGoalTextLimit] + "..."
	}
	return "Your Goal Progress: " + truncated
}

func goalEmailHTML(name, content string, goal *model.Goal, daysRemaining int) string {
	var paragraphs strings.Builder
	for _, line := range strings.Split(content, "\n") {
		paragraphs.WriteString("<p>")
		paragraphs.WriteString(html.EscapeString(line))
		paragraphs.WriteString("</p>")
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Hi %s!</h2>
  <div style="color: #555; line-height: 1.6;">%s</div>
  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; color: #888; font-size: 12px;">
    <p>Goal: %s</p>
    <p>Target Date: %s</p>
    <p>Days Remaining: %d</p>
  </div>
</div>`,
		html.EscapeString(name),
		paragraphs.String(),
		html.EscapeString(goal.GoalText),
		formatDate(goal.TargetDate),
		daysRemaining)
}

func formatDate(t time.Time) string {
	return t.Format("1/2/2006")
}
