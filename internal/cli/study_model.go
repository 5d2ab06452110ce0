package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/flashcard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type starredMsg struct {
	cardID  string
	starred bool
	err     error
}

// studyModel shows one flashcard at a time.
type studyModel struct {
	ctx     context.Context
	app     *App
	title   string
	player  *flashcard.Player
	starred map[string]bool
	width   int
	status  string
}

func newStudyModel(ctx context.Context, app *App, title string, player *flashcard.Player) *studyModel {
	m := &studyModel{
		ctx:     ctx,
		app:     app,
		title:   title,
		player:  player,
		starred: make(map[string]bool),
		width:   80,
	}
	for i := 0; i < player.Len(); i++ {
		c, _ := player.Current()
		m.starred[c.ID] = c.Starred
		player.Next()
	}
	return m
}

func (m *studyModel) Init() tea.Cmd { return nil }

func (m *studyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case starredMsg:
		if msg.err != nil {
			m.status = "Could not save star: " + msg.err.Error()
			m.starred[msg.cardID] = !msg.starred
			return m, nil
		}
		m.status = ""
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "enter", "up", "down":
			m.player.Flip()
		case "right", "l", "n":
			m.player.Next()
		case "left", "h", "p":
			m.player.Prev()
		case "s":
			m.player.Shuffle()
			m.status = "Shuffled."
		case "*", "f":
			return m, m.toggleStar()
		}
	}
	return m, nil
}

func (m *studyModel) toggleStar() tea.Cmd {
	card, ok := m.player.Current()
	if !ok {
		return nil
	}
	starred := !m.starred[card.ID]
	m.starred[card.ID] = starred
	ctx, decks := m.ctx, m.app.Decks
	return func() tea.Msg {
		return starredMsg{cardID: card.ID, starred: starred, err: decks.SetStarred(ctx, card.ID, starred)}
	}
}

func (m *studyModel) View() string {
	card, ok := m.player.Current()
	if !ok {
		return formatter.Dim("This deck has no cards.") + "\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("%s  %s", formatter.StyleHeader.Render(strings.ToUpper(m.title)),
		formatter.Dim(fmt.Sprintf("card %d/%d", m.player.Index()+1, m.player.Len())))
	if m.starred[card.ID] {
		header += "  " + formatter.StyleYellow.Render("★")
	}
	b.WriteString(header + "\n")
	b.WriteString(formatter.RenderCompactBar(float64(m.player.Index()+1)/float64(m.player.Len()), 30, true) + "\n\n")

	side, text, color := "FRONT", card.Front, formatter.ColorHeader
	if m.player.Flipped() {
		side, text, color = "BACK", card.Back, formatter.ColorGreen
	}
	cardWidth := min(max(m.width-4, 20), 72)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(cardWidth).
		Padding(1, 2).
		Align(lipgloss.Center)
	b.WriteString(box.Render(formatter.Dim(side) + "\n\n" + formatter.Bold(text)))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(formatter.StyleYellow.Render(m.status) + "\n")
	}
	b.WriteString(formatter.Dim("space flip · ←/→ prev/next · s shuffle · * star · q quit") + "\n")
	return b.String()
}
