package llm

// TaskType identifies the kind of generation being performed.
type TaskType string

const (
	TaskFlashcards       TaskType = "flashcards"
	TaskQuizQuestions    TaskType = "quiz_questions"
	TaskDrugScenarios    TaskType = "drug_scenarios"
	TaskVitalScenarios   TaskType = "vital_scenarios"
	TaskMedTermQuestions TaskType = "medterm_questions"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the content model.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// Generation is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskFlashcards:       {Temperature: 0.4, MaxTokens: 2048, TimeoutMs: 45000},
			TaskQuizQuestions:    {Temperature: 0.4, MaxTokens: 3072, TimeoutMs: 60000},
			TaskDrugScenarios:    {Temperature: 0.8, MaxTokens: 1536},
			TaskVitalScenarios:   {Temperature: 0.8, MaxTokens: 1536},
			TaskMedTermQuestions: {Temperature: 0.7, MaxTokens: 2048},
		},
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
