// Package content turns model output into flashcards, quiz questions and
// game scenarios. Every item is validated; malformed items are dropped and
// logged rather than shown to a student.
package content

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/alexanderramin/readynurse/internal/game"
	"github.com/alexanderramin/readynurse/internal/llm"
	"github.com/alexanderramin/readynurse/internal/quiz"
	"go.uber.org/zap"
)

// ErrEmptyBatch is returned when a response held no usable items.
var ErrEmptyBatch = errors.New("content model returned no usable items")

// Default batch sizes for deck and quiz generation.
const (
	DefaultFlashcardCount = 10
	DefaultQuestionCount  = 5
)

type FlashcardRequest struct {
	Subject    string
	Topic      string
	Difficulty string
	Count      int
}

type QuestionRequest struct {
	Topic      string
	Difficulty string
	Count      int
}

// CardDraft is a generated flashcard not yet saved to a deck.
type CardDraft struct {
	Front string `json:"frontText"`
	Back  string `json:"backText"`
}

// Generator produces validated study content from an LLM client.
type Generator struct {
	client  llm.LLMClient
	log     *zap.Logger
	shuffle func([]string)
}

// Option configures a Generator.
type Option func(*Generator)

// WithShuffler replaces the option shuffle applied to game scenarios.
func WithShuffler(fn func([]string)) Option {
	return func(g *Generator) { g.shuffle = fn }
}

func NewGenerator(client llm.LLMClient, log *zap.Logger, opts ...Option) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Generator{
		client: client,
		log:    log.Named("content"),
		shuffle: func(s []string) {
			rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Flashcards(ctx context.Context, req FlashcardRequest) ([]CardDraft, error) {
	if req.Count <= 0 {
		req.Count = DefaultFlashcardCount
	}
	cards, err := generateList(ctx, g, llm.TaskFlashcards, flashcardPrompt(req), req.Count, validated(validateCard))
	if err != nil {
		return nil, err
	}
	for i := range cards {
		cards[i].Front = strings.TrimSpace(cards[i].Front)
		cards[i].Back = strings.TrimSpace(cards[i].Back)
	}
	return cards, nil
}

// QuizQuestions returns validated questions without IDs.
func (g *Generator) QuizQuestions(ctx context.Context, req QuestionRequest) ([]*quiz.Question, error) {
	if req.Count <= 0 {
		req.Count = DefaultQuestionCount
	}
	return generateList(ctx, g, llm.TaskQuizQuestions, quizPrompt(req), req.Count, questionDraft.toQuestion)
}

func (g *Generator) DrugScenarios(ctx context.Context, count int) ([]game.Scenario, error) {
	cases, err := generateList(ctx, g, llm.TaskDrugScenarios, drugScenarioPrompt(count), count, validated(validateDrugCase))
	if err != nil {
		return nil, err
	}
	out := make([]game.Scenario, len(cases))
	for i, c := range cases {
		c.Choices = slices.Clone(c.Choices)
		g.shuffle(c.Choices)
		out[i] = c
	}
	return out, nil
}

func (g *Generator) VitalScenarios(ctx context.Context, patient game.PatientType, count int) ([]game.Scenario, error) {
	cases, err := generateList(ctx, g, llm.TaskVitalScenarios, vitalScenarioPrompt(patient, count), count, validated(validateVitalsCase))
	if err != nil {
		return nil, err
	}
	out := make([]game.Scenario, len(cases))
	for i, c := range cases {
		out[i] = reconcileVitals(c)
	}
	return out, nil
}

func (g *Generator) MedTermQuestions(ctx context.Context, count int) ([]game.Scenario, error) {
	qs, err := generateList(ctx, g, llm.TaskMedTermQuestions, medTermPrompt(count), count, validated(validateTermQuestion))
	if err != nil {
		return nil, err
	}
	out := make([]game.Scenario, len(qs))
	for i, q := range qs {
		q.Choices = slices.Clone(q.Choices)
		g.shuffle(q.Choices)
		out[i] = q
	}
	return out, nil
}

// SourceFor returns the scenario source feeding the given game. patient only
// applies to Vital Signs Crisis.
func (g *Generator) SourceFor(v game.Variant, patient game.PatientType) (game.Source, error) {
	switch v.ID {
	case game.DrugDashID:
		return game.SourceFunc(g.DrugScenarios), nil
	case game.VitalsCrisisID:
		if patient == "" {
			patient = game.Adult
		}
		return game.SourceFunc(func(ctx context.Context, n int) ([]game.Scenario, error) {
			return g.VitalScenarios(ctx, patient, n)
		}), nil
	case game.MedTermMayhemID:
		return game.SourceFunc(g.MedTermQuestions), nil
	}
	return nil, fmt.Errorf("no content source for game %q", v.ID)
}

// generateList runs one generation call, converts each item and keeps at most
// limit of the ones that convert cleanly.
func generateList[T, U any](ctx context.Context, g *Generator, task llm.TaskType, prompt string, limit int, convert func(T) (U, error)) ([]U, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: systemPrompt,
		UserPrompt:   prompt,
		JSON:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", task, err)
	}

	items, err := llm.ExtractJSONList[T](resp.Text)
	if err != nil {
		g.log.Warn("unparseable generation", zap.String("task", string(task)), zap.Error(err))
		return nil, fmt.Errorf("generating %s: %w", task, err)
	}

	kept := make([]U, 0, len(items))
	for i, it := range items {
		v, err := convert(it)
		if err != nil {
			g.log.Warn("dropping generated item",
				zap.String("task", string(task)), zap.Int("index", i), zap.Error(err))
			continue
		}
		kept = append(kept, v)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("generating %s: %w", task, ErrEmptyBatch)
	}
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	g.log.Debug("generated content",
		zap.String("task", string(task)), zap.Int("kept", len(kept)), zap.Int("received", len(items)))
	return kept, nil
}

// validated adapts a check into a conversion that keeps the item as is.
func validated[T any](valid func(T) error) func(T) (T, error) {
	return func(it T) (T, error) { return it, valid(it) }
}
