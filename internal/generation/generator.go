package generation

import "context"

// Generator turns a prompt into free text using an external language model.
type Generator interface {
	// Generate sends prompt to the provider and returns the model's reply.
	// Failures are reported with the errors declared in this package.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Unconfigured is the Generator used when no provider credentials are set.
// Every call fails with ErrNotConfigured.
type Unconfigured struct{}

var _ Generator = Unconfigured{}

// Generate implements Generator.
func (Unconfigured) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
