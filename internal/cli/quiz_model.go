package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/quiz"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type recordedMsg struct {
	result *domain.QuizResult
	err    error
}

// quizModel runs one quiz.Session and records the final score.
type quizModel struct {
	ctx     context.Context
	app     *App
	quiz    *domain.Quiz
	session *quiz.Session

	cursor  int
	hint    string
	pending *int
	saved   *domain.QuizResult
	saveErr error

	saving   int
	quitting bool
}

func newQuizModel(ctx context.Context, app *App, q *domain.Quiz, questions []quiz.Question, opts ...quiz.Option) *quizModel {
	m := &quizModel{ctx: ctx, app: app, quiz: q}
	opts = append(opts, quiz.WithRecorder(func(percent int) {
		m.pending = &percent
	}))
	m.session = quiz.NewSession(questions, opts...)
	return m
}

func (m *quizModel) Init() tea.Cmd { return m.flushRecord() }

func (m *quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordedMsg:
		m.saving--
		m.saved, m.saveErr = msg.result, msg.err
		if msg.err != nil {
			m.app.logger().Warn("recording quiz result failed", zap.String("quiz_id", m.quiz.ID), zap.Error(msg.err))
		}
		if m.quitting && m.saving == 0 {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *quizModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if m.quitting {
		if key == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}
	switch key {
	case "q", "esc", "ctrl+c":
		if m.saving > 0 {
			m.quitting = true
			return nil
		}
		return tea.Quit
	}

	if m.session.Finished() {
		if key == "r" {
			m.session.Restart()
			m.cursor = 0
			m.saved, m.saveErr = nil, nil
			return m.flushRecord()
		}
		return nil
	}

	opts := m.session.Options()
	m.hint = ""
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case " ", "x":
		if m.cursor < len(opts) {
			m.session.Select(opts[m.cursor])
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if i < len(opts) {
			m.cursor = i
			m.session.Select(opts[i])
		}
	case "enter":
		if !m.session.Submitted() {
			if _, ok := m.session.Submit(); !ok {
				m.hint = "Select an answer first."
			}
			return nil
		}
		m.session.Next()
		m.cursor = 0
		return m.flushRecord()
	}
	return nil
}

// flushRecord turns a completed pass into a save command.
func (m *quizModel) flushRecord() tea.Cmd {
	if m.pending == nil {
		return nil
	}
	percent := *m.pending
	m.pending = nil
	if m.app.UserID == "" {
		return nil
	}
	m.saving++
	ctx, quizzes, userID, quizID := m.ctx, m.app.Quizzes, m.app.UserID, m.quiz.ID
	return func() tea.Msg {
		res, err := quizzes.RecordResult(ctx, userID, quizID, percent)
		return recordedMsg{result: res, err: err}
	}
}

func (m *quizModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(strings.ToUpper(m.quiz.Title)) + "  " + formatter.DifficultyBadge(m.quiz.Difficulty) + "\n\n")
	if m.quitting {
		b.WriteString(formatter.Dim("Saving result…") + "\n")
		return b.String()
	}

	if m.session.Finished() {
		pct := m.session.FinalPercent()
		b.WriteString(formatter.Bold("Quiz complete!") + "\n\n")
		b.WriteString(fmt.Sprintf("  %d/%d correct  %s\n\n", m.session.Score(), m.session.Total(),
			formatter.ScoreColor(pct).Render(fmt.Sprintf("%d%%", pct))))
		b.WriteString(formatter.RenderProgress(float64(pct)/100, 30) + "\n\n")
		switch {
		case m.saveErr != nil:
			b.WriteString(formatter.StyleYellow.Render("Result not saved: "+m.saveErr.Error()) + "\n")
		case m.saved != nil:
			b.WriteString(formatter.Dim("Result saved to your history.") + "\n")
		}
		b.WriteString(formatter.Dim("r retake · q quit") + "\n")
		return b.String()
	}

	q, _ := m.session.Current()
	b.WriteString(formatter.Dim(fmt.Sprintf("Question %d of %d · %s", m.session.Index()+1, m.session.Total(), q.Type.Label())) + "\n")
	b.WriteString(formatter.RenderCompactBar(float64(m.session.Index())/float64(m.session.Total()), 30, true) + "\n\n")
	b.WriteString(formatter.Bold(q.Text) + "\n\n")

	submitted := m.session.Submitted()
	for i, opt := range m.session.Options() {
		pointer := "  "
		if i == m.cursor && !submitted {
			pointer = formatter.StyleHeader.Render("> ")
		}
		mark := "( )"
		if q.Type == quiz.Multi {
			mark = "[ ]"
		}
		if m.session.IsSelected(opt) {
			mark = strings.Replace(mark, " ", "x", 1)
		}
		line := fmt.Sprintf("%s%s %d. %s", pointer, mark, i+1, opt)
		if submitted {
			switch {
			case q.IsCorrectOption(opt):
				line = formatter.StyleGreen.Render(line + " ✔")
			case m.session.IsSelected(opt):
				line = formatter.StyleRed.Render(line + " ✖")
			default:
				line = formatter.Dim(line)
			}
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if submitted {
		if m.session.LastCorrect() {
			b.WriteString(formatter.StyleGreen.Render("Correct!") + "\n")
		} else {
			b.WriteString(formatter.StyleRed.Render("Incorrect.") + "\n")
		}
		if q.Explanation != "" {
			b.WriteString(formatter.StyleBlue.Render(q.Explanation) + "\n")
		}
		b.WriteString("\n" + formatter.Dim("enter next · q quit") + "\n")
		return b.String()
	}

	if m.hint != "" {
		b.WriteString(formatter.StyleYellow.Render(m.hint) + "\n")
	}
	b.WriteString(formatter.Dim("↑/↓ move · space select · enter submit · q quit") + "\n")
	return b.String()
}
