package content

import (
	"strings"
	"testing"

	"github.com/abhisek/courseforge/internal/topic"
)

func testRequest(t Type) Request {
	return Request{
		Type: t,
		Topic: &topic.Spec{
			Name:               "Data Structures",
			Slug:               "data_structures",
			Difficulty:         topic.DifficultyBeginner,
			LearningObjectives: []string{"Understand lists", "Use dictionaries"},
			Concepts:           []string{"lists", "dictionaries"},
		},
		Module: topic.ModuleSpec{
			Name:       "Data Structures Fundamentals",
			Type:       topic.ModuleStarter,
			FocusAreas: []string{"lists", "dictionaries"},
			Complexity: topic.ComplexitySimple,
		},
	}
}

func TestSafeClassName(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		want   string
	}{
		{"Data Structures", "Example", "DataStructuresExample"},
		{"data-science & ML", "Assignment", "DataScienceMLAssignment"},
		{"3D Graphics", "Example", "Lesson3DGraphicsExample"},
		{"!!!", "Assignment", "AssignmentAssignment"},
		{"", "Example", "AssignmentExample"},
	}

	for _, tt := range tests {
		if got := SafeClassName(tt.name, tt.suffix); got != tt.want {
			t.Errorf("SafeClassName(%q, %q) = %q, want %q", tt.name, tt.suffix, got, tt.want)
		}
	}
}

func TestFallback_Deterministic(t *testing.T) {
	for _, typ := range []Type{
		TypeLearningPath, TypeStarterExample, TypeAssignmentA, TypeAssignmentB,
		TypeTestStarter, TypeTestAssignmentA, TypeTestAssignmentB, TypeExtraExercises,
	} {
		req := testRequest(typ)
		first := Fallback(req)
		second := Fallback(req)
		if first != second {
			t.Errorf("fallback for %s is not deterministic", typ)
		}
		if first == "" {
			t.Errorf("fallback for %s is empty", typ)
		}
	}
}

func TestFallback_StarterExampleUsesClassName(t *testing.T) {
	out := Fallback(testRequest(TypeStarterExample))
	if !strings.Contains(out, "class DataStructuresExample:") {
		t.Error("expected class DataStructuresExample in starter example")
	}
	if !strings.Contains(out, `if __name__ == "__main__":`) {
		t.Error("expected usage block in starter example")
	}
}

func TestFallback_TestAssignmentBImportsGeneratedClass(t *testing.T) {
	req := testRequest(TypeTestAssignmentB)
	req.CodeToTest = "\"\"\"Module.\"\"\"\n\nclass Foo:\n    def required_method(self, param):\n        pass\n"

	out := Fallback(req)
	if !strings.Contains(out, "from assignment_b import Foo") {
		t.Errorf("expected import of Foo, got:\n%s", out)
	}
	if !strings.Contains(out, "class TestFoo:") {
		t.Error("expected TestFoo test class")
	}
}

func TestFallback_TestAssignmentAImportsTestedClass(t *testing.T) {
	req := testRequest(TypeTestAssignmentA)
	req.CodeToTest = "class Foo:\n    def process_data(self, data):\n        pass\n"

	out := Fallback(req)
	if !strings.Contains(out, "from assignment_a import Foo") {
		t.Errorf("expected import of Foo, got:\n%s", out)
	}
	if !strings.Contains(out, "class TestFoo:") {
		t.Error("expected TestFoo test class")
	}
}

func TestFallback_TestAssignmentAWithoutCode(t *testing.T) {
	out := Fallback(testRequest(TypeTestAssignmentA))
	if !strings.Contains(out, "from assignment_a import DataStructuresAssignment") {
		t.Errorf("expected import of fallback class name, got:\n%s", out)
	}
}

func TestFallback_TestStarterImportsTestedClass(t *testing.T) {
	req := testRequest(TypeTestStarter)
	req.CodeToTest = "class Widget:\n    def demonstrate_concept(self):\n        pass\n"

	out := Fallback(req)
	if !strings.Contains(out, "from starter_example import Widget") {
		t.Errorf("expected import of Widget, got:\n%s", out)
	}

	// Without code the starter's own fallback class is the target.
	out = Fallback(testRequest(TypeTestStarter))
	if !strings.Contains(out, "from starter_example import DataStructuresExample") {
		t.Errorf("expected import of fallback class name, got:\n%s", out)
	}
}

func TestFallback_TestAssignmentBWithoutCode(t *testing.T) {
	out := Fallback(testRequest(TypeTestAssignmentB))
	if !strings.Contains(out, "from assignment_b import DataStructuresImplementation") {
		t.Errorf("expected import of fallback class name, got:\n%s", out)
	}
}

func TestFallback_LearningPathListsObjectives(t *testing.T) {
	out := Fallback(testRequest(TypeLearningPath))
	if !strings.Contains(out, "- Understand lists") {
		t.Error("expected learning objectives in learning path")
	}
	if !strings.Contains(out, "Estimated Time**: 60 minutes") {
		t.Errorf("expected 60 minute estimate for beginner, got:\n%s", out)
	}
}

func TestFallback_LearningPathTimeScalesWithDifficulty(t *testing.T) {
	req := testRequest(TypeLearningPath)
	req.Topic.Difficulty = topic.DifficultyAdvanced
	out := Fallback(req)
	if !strings.Contains(out, "Estimated Time**: 120 minutes") {
		t.Error("expected 120 minute estimate for advanced")
	}
}

func TestFirstClassName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"class Foo:\n    pass\n", "Foo"},
		{"import os\n\nclass Bar(object):\n    pass\n", "Bar"},
		{"def func():\n    pass\n", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstClassName(tt.code); got != tt.want {
			t.Errorf("firstClassName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCacheKey(t *testing.T) {
	req := testRequest(TypeStarterExample)
	key := req.CacheKey()
	want := "starter_example|data_structures|beginner|data_structures_fundamentals|starter"
	if key != want {
		t.Errorf("cache key = %q, want %q", key, want)
	}

	// Different content types must not collide.
	other := testRequest(TypeAssignmentA)
	if other.CacheKey() == key {
		t.Error("expected distinct cache keys for distinct content types")
	}
}
