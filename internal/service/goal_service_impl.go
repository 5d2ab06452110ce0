package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/repository"
	"github.com/google/uuid"
)

// GoalBoard is a user's goals grouped by status.
type GoalBoard struct {
	Active    []*domain.Goal
	Completed []*domain.Goal
	Expired   []*domain.Goal
}

type goalService struct {
	goals repository.GoalRepo
	now   func() time.Time
}

func NewGoalService(goals repository.GoalRepo) GoalService {
	return &goalService{goals: goals, now: time.Now}
}

// Add stores a goal. A missing start date means today; a missing end date is
// derived from the goal type.
func (s *goalService) Add(ctx context.Context, g *domain.Goal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Type == "" {
		g.Type = domain.GoalWeekly
	}
	g.Description = strings.TrimSpace(g.Description)
	now := s.now().UTC()
	if g.StartDate.IsZero() {
		g.StartDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if g.EndDate.IsZero() {
		g.EndDate = domain.DefaultGoalEnd(g.Type, g.StartDate)
	}
	if err := g.Validate(); err != nil {
		return err
	}
	g.CreatedAt = now
	return s.goals.Create(ctx, g)
}

func (s *goalService) Board(ctx context.Context, userID string) (*GoalBoard, error) {
	goals, err := s.goals.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	board := &GoalBoard{}
	for _, g := range goals {
		switch g.Status(now) {
		case domain.GoalCompleted:
			board.Completed = append(board.Completed, g)
		case domain.GoalExpired:
			board.Expired = append(board.Expired, g)
		default:
			board.Active = append(board.Active, g)
		}
	}
	return board, nil
}

func (s *goalService) Toggle(ctx context.Context, id string) (*domain.Goal, error) {
	g, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Completed = !g.Completed
	if err := s.goals.SetCompleted(ctx, id, g.Completed); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}
