package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDueLabel(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"later today", now.Add(11 * time.Hour), "Today"},
		{"tomorrow morning", time.Date(2026, 2, 8, 1, 0, 0, 0, time.UTC), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"10 days future", now.Add(10 * 24 * time.Hour), "In 10d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DueLabel(tt.input, now))
		})
	}
}

func TestTakenLabel(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", TakenLabel(now, now))
	assert.Equal(t, "5m ago", TakenLabel(now.Add(-5*time.Minute), now))
	assert.Equal(t, "2h ago", TakenLabel(now.Add(-2*time.Hour), now))
	assert.Equal(t, "Yesterday", TakenLabel(now.Add(-30*time.Hour), now))
	assert.Equal(t, "Feb 4, 2026", TakenLabel(now.Add(-72*time.Hour), now))
	assert.Equal(t, "Sep 30, 2022", TakenLabel(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), now))
}

func TestGoalStatusPill(t *testing.T) {
	tests := []struct {
		status   domain.GoalStatus
		contains string
	}{
		{domain.GoalActive, "Active"},
		{domain.GoalCompleted, "Done"},
		{domain.GoalExpired, "Expired"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := GoalStatusPill(tt.status)
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestDifficultyBadge(t *testing.T) {
	assert.Contains(t, DifficultyBadge(domain.DifficultyEasy), "Easy")
	assert.Contains(t, DifficultyBadge(domain.DifficultyNCLEX), "NCLEX-level")
	assert.Contains(t, DifficultyBadge(""), "--")
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	// Short IDs should be returned as-is (dimmed)
	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Furosemi…", Truncate("Furosemide 40 mg", 9))
	assert.Equal(t, "F", Truncate("Furosemide", 1))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	// Should contain rounded border characters
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}
