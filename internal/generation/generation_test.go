package generation_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedTask(t *testing.T, title string, description *string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(uuid.New(), domain.TaskFields{
		Title:       title,
		Description: description,
		Completed:   true,
	})
	require.NoError(t, err)
	return task
}

func TestBuildSummaryPrompt(t *testing.T) {
	t.Parallel()

	desc := "weekly groceries"
	prompt, err := generation.BuildSummaryPrompt([]*domain.Task{
		completedTask(t, "Buy milk", &desc),
		completedTask(t, "Call mom", nil),
	})
	require.NoError(t, err)

	want := "I have completed the following tasks today. " +
		"Please provide a short, encouraging 2-sentence summary of my productivity praising my work:\n" +
		"- Buy milk: weekly groceries\n" +
		"- Call mom: No description\n"
	assert.Equal(t, want, prompt)
}

func TestBuildSummaryPrompt_NoTasks(t *testing.T) {
	t.Parallel()

	prompt, err := generation.BuildSummaryPrompt(nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "praising my work:\n")
	assert.NotContains(t, prompt, "- ")
}

func TestBuildSummaryPrompt_NoEscaping(t *testing.T) {
	t.Parallel()

	desc := `<b>"quoted" & bold</b>`
	prompt, err := generation.BuildSummaryPrompt([]*domain.Task{completedTask(t, "A & B", &desc)})
	require.NoError(t, err)
	assert.Contains(t, prompt, `- A & B: <b>"quoted" & bold</b>`)
}

func TestUnconfigured(t *testing.T) {
	t.Parallel()

	text, err := generation.Unconfigured{}.Generate(context.Background(), "anything")
	assert.ErrorIs(t, err, generation.ErrNotConfigured)
	assert.Empty(t, text)
}
