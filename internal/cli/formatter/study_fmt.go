package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/quiz"
)

// FormatDeckList renders a user's flashcard decks.
func FormatDeckList(decks []*domain.Deck) string {
	if len(decks) == 0 {
		return Dim("No decks yet. Create one with: readynurse deck create \"Title\"") + "\n"
	}
	headers := []string{"ID", "TITLE", "SUBJECT", "TOPIC", "LEVEL", "CARDS"}
	rows := make([][]string, 0, len(decks))
	for _, d := range decks {
		rows = append(rows, []string{
			TruncID(d.ID),
			Bold(Truncate(d.Title, 32)),
			d.Subject,
			Truncate(d.Topic, 24),
			DifficultyBadge(d.Difficulty),
			strconv.Itoa(d.CardCount),
		})
	}
	return RenderBox("Flashcard Decks", RenderTable(headers, rows))
}

// FormatCardList renders the cards of one deck.
func FormatCardList(deck *domain.Deck, cards []*domain.Flashcard) string {
	var b strings.Builder
	b.WriteString(Bold(deck.Title) + "  " + DifficultyBadge(deck.Difficulty) + "\n\n")
	if len(cards) == 0 {
		b.WriteString(Dim("No cards in this deck."))
		return RenderBox("", b.String())
	}
	headers := []string{"#", "ID", "FRONT", "BACK", ""}
	rows := make([][]string, 0, len(cards))
	for i, c := range cards {
		star := ""
		if c.Starred {
			star = StyleYellow.Render("★")
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			TruncID(c.ID),
			Truncate(c.Front, 40),
			Truncate(c.Back, 40),
			star,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return RenderBox("", b.String())
}

// FormatQuizList renders a user's quizzes.
func FormatQuizList(quizzes []*domain.Quiz) string {
	if len(quizzes) == 0 {
		return Dim("No quizzes yet. Create one with: readynurse quiz create \"Title\"") + "\n"
	}
	headers := []string{"ID", "TITLE", "TOPIC", "LEVEL", "QUESTIONS"}
	rows := make([][]string, 0, len(quizzes))
	for _, q := range quizzes {
		rows = append(rows, []string{
			TruncID(q.ID),
			Bold(Truncate(q.Title, 32)),
			Truncate(q.Topic, 24),
			DifficultyBadge(q.Difficulty),
			strconv.Itoa(q.QuestionCount),
		})
	}
	return RenderBox("Quizzes", RenderTable(headers, rows))
}

// FormatQuestionList renders questions with their answers marked.
func FormatQuestionList(qs []*quiz.Question) string {
	if len(qs) == 0 {
		return Dim("No questions in this quiz.") + "\n"
	}
	var b strings.Builder
	for i, q := range qs {
		b.WriteString(fmt.Sprintf("%s %s  %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), Bold(q.Text), Dim("["+q.Type.Label()+"]")))
		for _, c := range q.Correct {
			b.WriteString("   " + StyleGreen.Render("✔ "+c) + "\n")
		}
		for _, w := range q.Incorrect {
			b.WriteString("   " + Dim("✖ "+w) + "\n")
		}
		if q.Explanation != "" {
			b.WriteString("   " + StyleBlue.Render(q.Explanation) + "\n")
		}
		if i < len(qs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatHistory renders quiz results, newest first.
func FormatHistory(results []*domain.QuizResult, now time.Time) string {
	if len(results) == 0 {
		return Dim("No quiz results yet.") + "\n"
	}
	headers := []string{"QUIZ", "SCORE", "TAKEN"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			Truncate(r.QuizTitle, 36),
			ScoreColor(r.Score).Render(fmt.Sprintf("%d%%", r.Score)),
			TakenLabel(r.TakenAt, now),
		})
	}
	return RenderBox("Quiz History", RenderTable(headers, rows))
}
