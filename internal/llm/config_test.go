package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_GenerationDisabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
}

func TestTaskTimeout_TaskOverrideWins(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 60000, cfg.TaskTimeout(TaskQuizQuestions))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 1234
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskDrugScenarios), "game tasks use the global timeout")
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskType("unknown")))
}
