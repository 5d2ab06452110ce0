package domain

import (
	"fmt"
	"strings"
	"time"
)

type Goal struct {
	ID          string
	UserID      string
	Description string
	Type        GoalType
	StartDate   time.Time
	EndDate     time.Time
	Completed   bool
	CreatedAt   time.Time
}

// DefaultGoalEnd is the end date a goal of type t gets when none is given.
func DefaultGoalEnd(t GoalType, start time.Time) time.Time {
	switch t {
	case GoalDaily:
		return start.AddDate(0, 0, 1)
	case GoalMonthly:
		return start.AddDate(0, 0, 30)
	default:
		return start.AddDate(0, 0, 7)
	}
}

func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Description) == "" {
		return fmt.Errorf("goal description is required")
	}
	if !ValidGoalTypes[string(g.Type)] {
		return fmt.Errorf("unknown goal type %q", g.Type)
	}
	if g.EndDate.Before(g.StartDate) {
		return fmt.Errorf("goal ends before it starts")
	}
	return nil
}

// Status classifies the goal at the given instant. A goal is expired once the
// end of its end date has passed without completion.
func (g *Goal) Status(now time.Time) GoalStatus {
	if g.Completed {
		return GoalCompleted
	}
	end := time.Date(g.EndDate.Year(), g.EndDate.Month(), g.EndDate.Day(), 23, 59, 59, 0, g.EndDate.Location())
	if now.After(end) {
		return GoalExpired
	}
	return GoalActive
}
