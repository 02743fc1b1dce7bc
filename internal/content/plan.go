package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/courseforge/internal/llm"
	"github.com/abhisek/courseforge/internal/topic"
)

// modulePlanSchema constrains the structured module breakdown response.
func modulePlanSchema(count int) *llm.Schema {
	return &llm.Schema{
		Name:        "module-plan",
		Description: "Module breakdown for a programming lesson",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"modules": map[string]any{
					"type":     "array",
					"minItems": count,
					"maxItems": count,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{"type": "string"},
							"type": map[string]any{
								"type": "string",
								"enum": []any{"starter", "assignment", "project", "extra"},
							},
							"focus_areas": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
							"code_complexity": map[string]any{
								"type": "string",
								"enum": []any{"simple", "moderate", "complex"},
							},
						},
						"required": []any{"name", "type", "focus_areas", "code_complexity"},
					},
				},
			},
			"required": []any{"modules"},
		},
	}
}

type modulePlan struct {
	Modules []topic.ModuleSpec `json:"modules"`
}

// PlanModules asks the provider for a module breakdown tailored to the
// topic. Any provider or validation failure falls back to the default
// synthesized plan, so callers always get a usable module list.
func PlanModules(ctx context.Context, provider llm.Provider, spec *topic.Spec, count int) []topic.ModuleSpec {
	if provider == nil {
		return topic.DefaultModules(spec.Name, count)
	}

	prompt := fmt.Sprintf(`Plan %d modules for a programming lesson on %s.
Difficulty: %s
Concepts: %s

The first module must have type "starter". Multi-module lessons need at
least one "assignment" module. Name modules after what they teach, and
give each 2-4 focus areas drawn from the concepts.`,
		count, spec.Name, spec.Difficulty, strings.Join(spec.Concepts, ", "))

	ctx = llm.WithPurpose(ctx, "module_plan")
	resp, err := provider.Generate(ctx, llm.Request{
		System:      "You are a programming curriculum designer. Respond with JSON only.",
		Prompt:      prompt,
		Schema:      modulePlanSchema(count),
		MaxTokens:   800,
		Temperature: generationTemperature,
	})
	if err != nil {
		return topic.DefaultModules(spec.Name, count)
	}

	var plan modulePlan
	if err := json.Unmarshal([]byte(resp.Text), &plan); err != nil {
		return topic.DefaultModules(spec.Name, count)
	}
	if len(plan.Modules) != count || plan.Modules[0].Type != topic.ModuleStarter {
		return topic.DefaultModules(spec.Name, count)
	}

	return plan.Modules
}
