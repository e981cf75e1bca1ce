package generation

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/todo-api/internal/domain"
)

// NoDescription stands in for tasks without a description in the prompt.
const NoDescription = "No description"

const summaryTemplate = "I have completed the following tasks today. " +
	"Please provide a short, encouraging 2-sentence summary of my productivity praising my work:\n" +
	"{{range .}}- {{.Title}}: {{description .}}\n{{end}}"

var summaryPrompt = template.Must(template.New("summary").
	Funcs(template.FuncMap{"description": describe}).
	Parse(summaryTemplate))

func describe(t *domain.Task) string {
	if t.Description == nil {
		return NoDescription
	}
	return *t.Description
}

// BuildSummaryPrompt renders the prompt asking for a short encouraging
// summary of tasks, one "- title: description" line per task in order.
func BuildSummaryPrompt(tasks []*domain.Task) (string, error) {
	var b strings.Builder
	if err := summaryPrompt.Execute(&b, tasks); err != nil {
		return "", fmt.Errorf("failed to render summary prompt: %w", err)
	}
	return b.String(), nil
}
