package generation

import "errors"

// Common errors returned by generators
var (
	// ErrGenerationFailed is returned when the provider could not be reached or
	// the call failed for any general reason
	ErrGenerationFailed = errors.New("failed to generate text")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is empty
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrUpstreamStatus is returned when the provider answers with a non-2xx status
	ErrUpstreamStatus = errors.New("language model returned an error status")

	// ErrNotConfigured is returned when no API key was supplied for the provider
	ErrNotConfigured = errors.New("language model provider is not configured")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
