package model

import (
	"time"
)

type Goal struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	GoalText   string    `db:"goal_text" json:"goalText"`
	TargetDate time.Time `db:"target_date" json:"targetDate"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// DaysRemaining returns the number of whole calendar days between now and the
// target date. Negative means overdue, zero means due today.
func (g *Goal) DaysRemaining(now time.Time) int {
	target := time.Date(g.TargetDate.Year(), g.TargetDate.Month(), g.TargetDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(today).Hours() / 24)
}
