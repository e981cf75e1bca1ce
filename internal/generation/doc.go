// Package generation defines the port between the application and external
// LLM providers. It owns the summary prompt, the Generator interface and the
// errors providers translate their failures into, so that services never
// depend on a particular provider's client or wire format.
package generation
