package llm

import "context"

// Provider is the core abstraction for LLM interaction. Consumers call
// Generate with a Request and receive the model's text output.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its response.
	// When the request's Schema field is set, the provider uses its native
	// structured output mechanism and the response Text is JSON validated
	// against that schema. When nil, Text is raw model output.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Prompt is the user message. Courseforge generation is single-turn,
	// so one prompt per request is all the pipeline ever needs.
	Prompt string

	// Schema is the JSON Schema the response must conform to, or nil for
	// free-form text (markdown guides, source code).
	Schema *Schema

	// MaxTokens caps the response length. These are cost ceilings set per
	// content type by the caller, not targets.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "module-plan".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Text is the generated output. Validated JSON when the request
	// carried a Schema, otherwise raw text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
