// Package gemini implements generation.Generator on top of Google's Gemini
// API through the google.golang.org/genai client. It translates empty,
// blocked and failed responses into the errors of the generation package.
package gemini
