// Package groq implements generation.Generator against Groq's
// OpenAI-compatible chat completions endpoint.
package groq
