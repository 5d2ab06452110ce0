package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/service"
)

// FormatGoalBoard renders goals grouped into active, completed and expired.
func FormatGoalBoard(board *service.GoalBoard, now time.Time) string {
	if len(board.Active)+len(board.Completed)+len(board.Expired) == 0 {
		return Dim("No study goals yet. Add one with: readynurse goal add \"Review 20 cards\"") + "\n"
	}
	var b strings.Builder
	section := func(title string, goals []*domain.Goal) {
		if len(goals) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(fmt.Sprintf("%s (%d)", title, len(goals))) + "\n")
		for _, g := range goals {
			b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
				TruncID(g.ID),
				GoalStatusPill(g.Status(now)),
				g.Description,
				Dim(fmt.Sprintf("%s · due %s", g.Type, DueLabel(g.EndDate, now))),
			))
		}
	}
	section("Active", board.Active)
	section("Completed", board.Completed)
	section("Expired", board.Expired)
	return b.String()
}
