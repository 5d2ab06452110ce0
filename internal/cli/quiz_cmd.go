package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/quiz"
	"github.com/alexanderramin/readynurse/internal/service"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Manage and take quizzes",
	}

	cmd.AddCommand(
		newQuizCreateCmd(app),
		newQuizListCmd(app),
		newQuizQuestionsCmd(app),
		newQuizAddQuestionCmd(app),
		newQuizGenerateCmd(app),
		newQuizDeleteCmd(app),
		newQuizTakeCmd(app),
		newQuizHistoryCmd(app),
	)

	return cmd
}

func newQuizCreateCmd(app *App) *cobra.Command {
	var topic, difficulty, description string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := &domain.Quiz{
				UserID:      app.UserID,
				Title:       args[0],
				Topic:       topic,
				Description: description,
			}
			if difficulty != "" {
				diff, err := domain.ParseDifficulty(difficulty, domain.QuizDifficulties)
				if err != nil {
					return err
				}
				q.Difficulty = diff
			}
			if err := app.Quizzes.Create(cmd.Context(), q); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created quiz %s [%s]\n", q.Title, q.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic used when generating questions")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Easy, Medium, Hard or NCLEX-level (default Medium)")
	cmd.Flags().StringVar(&description, "description", "", "Short description")

	return cmd
}

func newQuizListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your quizzes",
		RunE: func(cmd *cobra.Command, args []string) error {
			quizzes, err := app.Quizzes.List(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuizList(quizzes))
			return nil
		},
	}
}

func newQuizQuestionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "questions <quiz-id>",
		Short: "Show a quiz's questions with answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveQuizID(ctx, app, args[0])
			if err != nil {
				return err
			}
			qs, err := app.Quizzes.Questions(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuestionList(qs))
			return nil
		},
	}
}

func newQuizAddQuestionCmd(app *App) *cobra.Command {
	var typ, text, explanation string
	var correct, incorrect []string

	cmd := &cobra.Command{
		Use:   "add-question <quiz-id>",
		Short: "Add a question to a quiz",
		Example: `  readynurse quiz add-question ab12 --text "First sign of hypoxia?" \
    --correct Restlessness --incorrect Cyanosis --incorrect Bradycardia`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveQuizID(ctx, app, args[0])
			if err != nil {
				return err
			}
			qt, ok := quiz.ParseType(typ)
			if !ok {
				return fmt.Errorf("unknown question type %q (want single or multi)", typ)
			}
			q := &quiz.Question{
				Type:        qt,
				Text:        text,
				Correct:     correct,
				Incorrect:   incorrect,
				Explanation: explanation,
			}
			if err := app.Quizzes.AddQuestion(ctx, id, q); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s question.\n", qt.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", string(quiz.Single), "single or multi (select all that apply)")
	cmd.Flags().StringVar(&text, "text", "", "Question text")
	cmd.Flags().StringArrayVar(&correct, "correct", nil, "Correct option (repeat for multi)")
	cmd.Flags().StringArrayVar(&incorrect, "incorrect", nil, "Incorrect option (repeatable)")
	cmd.Flags().StringVar(&explanation, "explanation", "", "Rationale shown after answering")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("correct")

	return cmd
}

func newQuizGenerateCmd(app *App) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate <quiz-id>",
		Short: "Generate questions with the content model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveQuizID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stop := app.spin(cmd, "Generating questions…")
			qs, err := app.Quizzes.Generate(ctx, id, count)
			stop()
			if err != nil {
				if errors.Is(err, service.ErrGenerationDisabled) {
					return fmt.Errorf("%w: set READYNURSE_LLM_ENABLED=true", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d questions.\n", len(qs))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of questions to generate")

	return cmd
}

func newQuizDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <quiz-id>",
		Short: "Delete a quiz and its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveQuizID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Quizzes.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Quiz deleted.")
			return nil
		},
	}
}

func newQuizTakeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "take <quiz-id>",
		Short: "Take a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveQuizID(ctx, app, args[0])
			if err != nil {
				return err
			}
			q, err := app.Quizzes.GetByID(ctx, id)
			if err != nil {
				return err
			}
			qs, err := app.Quizzes.Questions(ctx, id)
			if err != nil {
				return err
			}
			if len(qs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "This quiz has no questions yet.")
				return nil
			}
			if !app.interactive() {
				return errNeedsTerminal
			}
			_, err = runProgram(cmd, newQuizModel(ctx, app, q, service.SessionQuestions(qs)))
			return err
		},
	}
}

func newQuizHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show your quiz results",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.Quizzes.History(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(results, time.Now()))
			return nil
		},
	}
}
