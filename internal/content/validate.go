package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/readynurse/internal/game"
	"github.com/alexanderramin/readynurse/internal/quiz"
)

// stringList accepts either a JSON string or an array of strings.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*l = stringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

// questionDraft is a quiz question as the model writes it. The type is an
// explicit field and decides how the question is scored.
type questionDraft struct {
	QuestionType     string     `json:"questionType"`
	QuestionText     string     `json:"questionText"`
	CorrectAnswers   stringList `json:"correctAnswers"`
	CorrectAnswer    stringList `json:"correctAnswer"`
	IncorrectAnswers stringList `json:"incorrectAnswers"`
	Explanation      string     `json:"explanation"`
}

func (d questionDraft) toQuestion() (*quiz.Question, error) {
	typ, ok := quiz.ParseType(d.QuestionType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown question type %q", quiz.ErrInvalidQuestion, d.QuestionType)
	}
	correct := d.CorrectAnswers
	if len(correct) == 0 {
		correct = d.CorrectAnswer
	}
	q := &quiz.Question{
		Type:        typ,
		Text:        strings.TrimSpace(d.QuestionText),
		Correct:     trimAll(correct),
		Incorrect:   trimAll(d.IncorrectAnswers),
		Explanation: strings.TrimSpace(d.Explanation),
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

func validateCard(c CardDraft) error {
	if strings.TrimSpace(c.Front) == "" || strings.TrimSpace(c.Back) == "" {
		return errors.New("flashcard needs frontText and backText")
	}
	return nil
}

func validateDrugCase(c game.DrugCase) error {
	if strings.TrimSpace(c.Case) == "" {
		return errors.New("scenario is empty")
	}
	return validateChoices(c.Choices, c.CorrectDrug)
}

func validateTermQuestion(q game.TermQuestion) error {
	if strings.TrimSpace(q.Question) == "" && strings.TrimSpace(q.Term) == "" {
		return errors.New("question and term are empty")
	}
	return validateChoices(q.Choices, q.CorrectAnswer)
}

func validateVitalsCase(c game.VitalsCase) error {
	if strings.TrimSpace(c.PatientDescription) == "" {
		return errors.New("patient description is empty")
	}
	if len(c.Vitals) == 0 {
		return errors.New("chart has no vitals")
	}
	for _, v := range c.Vitals {
		if strings.TrimSpace(v.Name) == "" || strings.TrimSpace(v.Value) == "" {
			return errors.New("vital is missing a name or value")
		}
	}
	return nil
}

// reconcileVitals makes the chart verdict agree with its readings: a chart is
// normal only when every reading is.
func reconcileVitals(c game.VitalsCase) game.VitalsCase {
	normal := true
	for _, v := range c.Vitals {
		if !v.IsNormal {
			normal = false
			break
		}
	}
	c.Normal = normal
	return c
}

func validateChoices(options []string, answer string) error {
	if len(options) < 2 {
		return fmt.Errorf("need at least two options, got %d", len(options))
	}
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if strings.TrimSpace(o) == "" {
			return errors.New("blank option")
		}
		if seen[o] {
			return fmt.Errorf("duplicate option %q", o)
		}
		seen[o] = true
	}
	if !slices.Contains(options, answer) {
		return fmt.Errorf("answer %q is not one of the options", answer)
	}
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
