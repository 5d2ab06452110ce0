package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/quiz"
	"github.com/alexanderramin/readynurse/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteQuizRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	q := testutil.NewTestQuiz("NCLEX Prep", testutil.WithQuizDifficulty(domain.DifficultyNCLEX))
	require.NoError(t, repo.Create(ctx, q))

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "NCLEX Prep", got.Title)
	assert.Equal(t, domain.DifficultyNCLEX, got.Difficulty)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuizRepo_QuestionsRoundTripInOrder(t *testing.T) {
	repo := NewSQLiteQuizRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	q := testutil.NewTestQuiz("Electrolytes")
	require.NoError(t, repo.Create(ctx, q))

	single := testutil.NewTestQuestion("Normal potassium?", "3.5-5.0 mEq/L", "1.0-2.0 mEq/L", "6.0-8.0 mEq/L")
	single.Explanation = "Hypokalemia is below 3.5."
	sata := testutil.NewTestSATAQuestion("Signs of hypocalcemia?",
		[]string{"Trousseau sign", "Chvostek sign"}, []string{"Bradycardia"})
	require.NoError(t, repo.AddQuestion(ctx, q.ID, single))
	require.NoError(t, repo.AddQuestion(ctx, q.ID, sata))

	questions, err := repo.ListQuestions(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, single.Text, questions[0].Text)
	assert.Equal(t, quiz.Single, questions[0].Type)
	assert.Equal(t, []string{"1.0-2.0 mEq/L", "6.0-8.0 mEq/L"}, questions[0].Incorrect)
	assert.Equal(t, "Hypokalemia is below 3.5.", questions[0].Explanation)
	assert.Equal(t, quiz.Multi, questions[1].Type)
	assert.Equal(t, []string{"Trousseau sign", "Chvostek sign"}, questions[1].Correct)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.QuestionCount)
}

func TestQuizRepo_AddQuestionToMissingQuiz(t *testing.T) {
	repo := NewSQLiteQuizRepo(testutil.NewTestDB(t))

	err := repo.AddQuestion(context.Background(), "missing", testutil.NewTestQuestion("Q", "A"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResultRepo_HistoryNewestFirstWithTitles(t *testing.T) {
	database := testutil.NewTestDB(t)
	quizzes := NewSQLiteQuizRepo(database)
	results := NewSQLiteResultRepo(database)
	ctx := context.Background()

	q := testutil.NewTestQuiz("Cardio", testutil.WithQuizUser("u1"))
	require.NoError(t, quizzes.Create(ctx, q))

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, results.Create(ctx, &domain.QuizResult{ID: uuid.New().String(), UserID: "u1", QuizID: q.ID, Score: 60, TakenAt: base}))
	require.NoError(t, results.Create(ctx, &domain.QuizResult{ID: uuid.New().String(), UserID: "u1", QuizID: "deleted-quiz", Score: 80, TakenAt: base.Add(time.Millisecond)}))
	require.NoError(t, results.Create(ctx, &domain.QuizResult{ID: uuid.New().String(), UserID: "u2", QuizID: q.ID, Score: 100, TakenAt: base}))

	history, err := results.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 80, history[0].Score)
	assert.Equal(t, domain.UnknownQuizTitle, history[0].QuizTitle)
	assert.Equal(t, "Cardio", history[1].QuizTitle)
	assert.True(t, history[1].TakenAt.Equal(base))
}
