package content

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/courseforge/internal/llm"
	"github.com/abhisek/courseforge/internal/topic"
)

func planSpec() *topic.Spec {
	return &topic.Spec{
		Name:       "Recursion",
		Slug:       "recursion",
		Difficulty: topic.DifficultyIntermediate,
		Concepts:   []string{"base cases", "call stacks", "memoization"},
	}
}

func TestPlanModules_NilProviderUsesDefaults(t *testing.T) {
	modules := PlanModules(context.Background(), nil, planSpec(), 3)
	if len(modules) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(modules))
	}
	if modules[0].Type != topic.ModuleStarter {
		t.Errorf("first module type = %s, want starter", modules[0].Type)
	}
}

func TestPlanModules_UsesProviderPlan(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: `{"modules":[
			{"name":"Recursion Basics","type":"starter","focus_areas":["base cases"],"code_complexity":"simple"},
			{"name":"Call Stack Practice","type":"assignment","focus_areas":["call stacks"],"code_complexity":"moderate"}
		]}`},
	)

	modules := PlanModules(context.Background(), mock, planSpec(), 2)
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[0].Name != "Recursion Basics" {
		t.Errorf("module name = %q", modules[0].Name)
	}
	if modules[1].Type != topic.ModuleAssignment {
		t.Errorf("module type = %s, want assignment", modules[1].Type)
	}

	// Structured output was requested.
	if mock.Calls[0].Schema == nil {
		t.Fatal("expected schema on plan request")
	}
	if mock.Calls[0].Schema.Name != "module-plan" {
		t.Errorf("schema name = %q", mock.Calls[0].Schema.Name)
	}
}

func TestPlanModules_ProviderErrorUsesDefaults(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)

	modules := PlanModules(context.Background(), mock, planSpec(), 4)
	if len(modules) != 4 {
		t.Fatalf("expected 4 modules, got %d", len(modules))
	}
	if modules[0].Type != topic.ModuleStarter {
		t.Errorf("first module type = %s, want starter", modules[0].Type)
	}
}

func TestPlanModules_WrongShapeUsesDefaults(t *testing.T) {
	// First module is not a starter, so the plan is rejected.
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: `{"modules":[
			{"name":"Capstone","type":"project","focus_areas":["everything"],"code_complexity":"complex"},
			{"name":"Basics","type":"starter","focus_areas":["base cases"],"code_complexity":"simple"}
		]}`},
	)

	modules := PlanModules(context.Background(), mock, planSpec(), 2)
	if modules[0].Type != topic.ModuleStarter {
		t.Errorf("first module type = %s, want starter from defaults", modules[0].Type)
	}
	if modules[0].Name == "Capstone" {
		t.Error("expected rejected plan to be replaced with defaults")
	}
}
