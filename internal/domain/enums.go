package domain

import "fmt"

// Difficulty is the level a deck or quiz is pitched at.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyNCLEX  Difficulty = "NCLEX-level"
)

// DeckDifficulties are the levels offered for flashcard decks.
var DeckDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// QuizDifficulties are the levels offered for quizzes.
var QuizDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyNCLEX}

// ParseDifficulty matches s case-insensitively against the allowed levels.
func ParseDifficulty(s string, allowed []Difficulty) (Difficulty, error) {
	for _, d := range allowed {
		if equalFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

type GoalType string

const (
	GoalDaily   GoalType = "daily"
	GoalWeekly  GoalType = "weekly"
	GoalMonthly GoalType = "monthly"
	GoalCustom  GoalType = "custom"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"daily": true, "weekly": true, "monthly": true, "custom": true,
}

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalExpired   GoalStatus = "expired"
)

type ItemKind string

const (
	ItemBorder  ItemKind = "border"
	ItemTheme   ItemKind = "theme"
	ItemFeature ItemKind = "feature"
)
