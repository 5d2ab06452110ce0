package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	fullHeart  = "♥"
	emptyHeart = "♡"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	bar, style := progressBar(pct, width)
	pct = clamp01(pct)
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderCompactBar renders only the blocks, without brackets or percentage.
// dim renders the bar in the muted color.
func RenderCompactBar(pct float64, width int, dim bool) string {
	bar, style := progressBar(pct, width)
	if dim {
		return StyleDim.Render(bar)
	}
	return style.Render(bar)
}

// RenderLives renders remaining lives as hearts, e.g. ♥♥♡.
func RenderLives(lives, total int) string {
	lives = max(0, min(total, lives))
	return StyleRed.Render(strings.Repeat(fullHeart, lives)) + StyleDim.Render(strings.Repeat(emptyHeart, total-lives))
}

// RenderCountdown renders seconds left, turning red in the last five.
func RenderCountdown(seconds int) string {
	text := fmt.Sprintf("⏱ %ds", seconds)
	if seconds <= 5 {
		return StyleRed.Render(text)
	}
	return StyleFg.Render(text)
}

func progressBar(pct float64, width int) (string, lipgloss.Style) {
	pct = clamp01(pct)
	if width < 2 {
		width = 2
	}
	filled := min(width, int(pct*float64(width)))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return bar, style
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
