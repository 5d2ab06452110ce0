package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/game"
)

// FormatLeaderboard renders the top entries for one game.
func FormatLeaderboard(v game.Variant, entries []*domain.LeaderboardEntry) string {
	title := v.Name + " Leaderboard"
	if len(entries) == 0 {
		return RenderBox(title, Dim("No scores yet. Be the first!"))
	}
	headers := []string{"RANK", "PLAYER", "SCORE"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			rankLabel(i + 1),
			Truncate(e.UserName, 28),
			Bold(strconv.Itoa(e.Score)),
		})
	}
	return RenderBox(title, RenderTable(headers, rows))
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return StyleYellow.Render("#1")
	case 2:
		return StyleFg.Render("#2")
	case 3:
		return StyleHeader.Render("#3")
	default:
		return Dim(fmt.Sprintf("#%d", rank))
	}
}

// FormatGameSummary renders the end-of-run panel.
func FormatGameSummary(v game.Variant, sum game.Summary) string {
	var b strings.Builder
	if sum.GameOver {
		b.WriteString(StyleRed.Render("GAME OVER") + "\n\n")
	} else {
		b.WriteString(StyleGreen.Render("Run ended") + "\n\n")
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("Score "), Bold(strconv.Itoa(sum.SessionScore))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("Earned"), Coins(sum.Coins)))
	if sum.Err != nil {
		b.WriteString("\n" + StyleYellow.Render("Results could not be saved: "+sum.Err.Error()) + "\n")
	}
	return RenderBox(v.Name, b.String())
}
