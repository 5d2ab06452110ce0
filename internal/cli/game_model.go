package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/game"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// sessionMsg carries a game.Msg back into the session.
type sessionMsg struct{ msg game.Msg }

// gameModel hosts a game.Session, running its Cmds as tea.Cmds.
type gameModel struct {
	ctx     context.Context
	log     *zap.Logger
	session *game.Session
	spinner spinner.Model
	timer   progress.Model

	cursor   int
	closeErr error
	quitting bool
}

func newGameModel(ctx context.Context, log *zap.Logger, session *game.Session) *gameModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StyleHeader))
	bar := progress.New(
		progress.WithSolidFill(string(formatter.ColorHeader)),
		progress.WithoutPercentage(),
		progress.WithWidth(30),
	)
	return &gameModel{ctx: ctx, log: log, session: session, spinner: sp, timer: bar}
}

// bridge wraps session Cmds so their results come back as sessionMsg.
func (m *gameModel) bridge(cmds []game.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	ctx := m.ctx
	out := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, func() tea.Msg {
			msg := c(ctx)
			if msg == nil {
				return nil
			}
			return sessionMsg{msg: msg}
		})
	}
	return tea.Batch(out...)
}

func (m *gameModel) Init() tea.Cmd {
	return tea.Batch(m.bridge(m.session.Start()), m.spinner.Tick)
}

func (m *gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionMsg:
		if r, ok := msg.msg.(game.ReportedMsg); ok && r.Err != nil {
			m.log.Warn("saving game results failed", zap.String("game", string(m.session.Variant().ID)), zap.Error(r.Err))
		}
		cmd := m.bridge(m.session.Update(msg.msg))
		if m.quitting && !m.session.Reporting() {
			return m, tea.Quit
		}
		return m, cmd
	case spinner.TickMsg:
		if m.session.Phase() != game.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *gameModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if m.quitting {
		// A second ctrl+c abandons the save.
		if key == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}
	if key == "ctrl+c" {
		return m.quit()
	}

	switch m.session.Phase() {
	case game.PhaseMenu:
		switch key {
		case "enter", " ":
			m.cursor = 0
			return tea.Batch(m.bridge(m.session.Start()), m.spinner.Tick)
		case "q", "esc":
			return m.quit()
		}
	case game.PhaseLoading:
		if key == "q" || key == "esc" {
			return m.bridge(m.session.Exit())
		}
	case game.PhasePlaying:
		sc, _ := m.session.Current()
		opts := sc.Options()
		switch key {
		case "q", "esc":
			return m.bridge(m.session.Exit())
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(opts)-1 {
				m.cursor++
			}
		case "enter", " ":
			if m.cursor < len(opts) {
				return m.bridge(m.session.Answer(opts[m.cursor]))
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if i := int(key[0] - '1'); i < len(opts) {
				return m.bridge(m.session.Answer(opts[i]))
			}
		}
	case game.PhaseResult:
		switch key {
		case "enter", " ", "n":
			m.cursor = 0
			return tea.Batch(m.bridge(m.session.Next()), m.spinner.Tick)
		case "q", "esc":
			return m.bridge(m.session.Exit())
		}
	}
	return nil
}

// quit tears the session down, awarding coins for a run still in progress.
// If an end-of-run report is still in flight the program exits once it lands.
func (m *gameModel) quit() tea.Cmd {
	if err := m.session.Close(m.ctx); err != nil {
		m.closeErr = err
		m.log.Warn("awarding coins on close failed", zap.Error(err))
	}
	if m.session.Reporting() {
		m.quitting = true
		return nil
	}
	return tea.Quit
}

func (m *gameModel) View() string {
	v := m.session.Variant()
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(strings.ToUpper(v.Name)) + "\n\n")
	if m.quitting {
		b.WriteString(formatter.Dim("Saving results…") + "\n")
		return b.String()
	}

	switch m.session.Phase() {
	case game.PhaseMenu:
		m.viewMenu(&b)
	case game.PhaseLoading:
		m.viewStats(&b)
		b.WriteString(m.spinner.View() + " Preparing scenarios…\n")
	case game.PhasePlaying, game.PhaseResult:
		m.viewStats(&b)
		m.viewScenario(&b)
	}
	return b.String()
}

func (m *gameModel) viewMenu(b *strings.Builder) {
	if sum, ok := m.session.Summary(); ok {
		b.WriteString(formatter.FormatGameSummary(m.session.Variant(), sum) + "\n")
	}
	if err := m.session.LastError(); err != nil {
		msg := err.Error()
		if errors.Is(err, game.ErrNoScenarios) {
			msg = "No scenarios could be generated. Try again in a moment."
		}
		b.WriteString(formatter.StyleRed.Render(msg) + "\n")
	}
	if m.closeErr != nil {
		b.WriteString(formatter.StyleYellow.Render("Coins not saved: "+m.closeErr.Error()) + "\n")
	}
	b.WriteString("\n" + formatter.Dim("enter play · q quit") + "\n")
}

func (m *gameModel) viewStats(b *strings.Builder) {
	v := m.session.Variant()
	parts := []string{
		"Score " + formatter.Bold(fmt.Sprintf("%d", m.session.Score())),
		formatter.RenderLives(m.session.Lives(), game.StartingLives),
	}
	if v.TracksStreak {
		parts = append(parts, "Streak "+formatter.Bold(fmt.Sprintf("%d", m.session.Streak())))
	}
	b.WriteString(strings.Join(parts, "   ") + "\n")
	if v.TimeLimit > 0 && m.session.Phase() == game.PhasePlaying {
		left := m.session.TimeLeft()
		pct := float64(left) / float64(v.TimeLimit)
		b.WriteString(m.timer.ViewAs(pct) + " " + formatter.RenderCountdown(int(left.Seconds())) + "\n")
	}
	b.WriteString("\n")
}

func (m *gameModel) viewScenario(b *strings.Builder) {
	sc, ok := m.session.Current()
	if !ok {
		return
	}
	b.WriteString(formatter.Bold(sc.Prompt()) + "\n")
	if vc, ok := sc.(game.VitalsCase); ok {
		b.WriteString("\n")
		for _, vital := range vc.Vitals {
			b.WriteString(fmt.Sprintf("  %-18s %s\n", formatter.Dim(vital.Name), vital.Value))
		}
	}
	b.WriteString("\n")

	result := m.session.Phase() == game.PhaseResult
	for i, opt := range sc.Options() {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case result && opt == sc.Answer():
			line = formatter.StyleGreen.Render("  " + line + " ✔")
		case result && opt == m.session.Choice():
			line = formatter.StyleRed.Render("  " + line + " ✖")
		case result:
			line = formatter.Dim("  " + line)
		case i == m.cursor:
			line = formatter.StyleHeader.Render("> ") + line
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if !result {
		b.WriteString(formatter.Dim("↑/↓ move · enter answer · q end run") + "\n")
		return
	}
	switch m.session.Outcome() {
	case game.Correct:
		b.WriteString(formatter.StyleGreen.Render("Correct!") + "\n")
	case game.TimedOut:
		b.WriteString(formatter.StyleRed.Render("Time's up!") + " The answer was " + formatter.Bold(sc.Answer()) + "\n")
	default:
		b.WriteString(formatter.StyleRed.Render("Incorrect.") + " The answer was " + formatter.Bold(sc.Answer()) + "\n")
	}
	if exp := sc.Explanation(); exp != "" {
		b.WriteString(formatter.StyleBlue.Render(exp) + "\n")
	}
	if m.session.GameOver() {
		b.WriteString("\n" + formatter.StyleRed.Render("Out of lives!") + " " + formatter.Dim("enter see results") + "\n")
		return
	}
	b.WriteString("\n" + formatter.Dim("enter next · q end run") + "\n")
}
