package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DifficultyBadge colors a difficulty from green (easy) to red (NCLEX-level).
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen.Render(string(d))
	case domain.DifficultyMedium:
		return StyleYellow.Render(string(d))
	case domain.DifficultyHard:
		return StyleRed.Render(string(d))
	case domain.DifficultyNCLEX:
		return StylePurple.Render(string(d))
	default:
		return StyleDim.Render("--")
	}
}

// GoalStatusPill returns a colored indicator for a goal status.
func GoalStatusPill(status domain.GoalStatus) string {
	switch status {
	case domain.GoalActive:
		return StyleGreen.Render("● Active")
	case domain.GoalCompleted:
		return StyleDim.Render("✔ Done")
	case domain.GoalExpired:
		return StyleRed.Render("✖ Expired")
	default:
		return StyleDim.Render(string(status))
	}
}

// ScoreColor picks a style for a 0-100 percentage.
func ScoreColor(pct int) lipgloss.Style {
	switch {
	case pct >= 75:
		return StyleGreen
	case pct >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Coins renders a coin amount.
func Coins(n int) string {
	return StyleYellow.Render(fmt.Sprintf("◉ %d", n))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
