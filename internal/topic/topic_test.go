package topic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Data Structures", "data_structures", false},
		{"Data-Science & ML", "data_science_ml", false},
		{"  Graphs  ", "graphs", false},
		{"Web APIs 101", "web_apis_101", false},
		{"---", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Slugify(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Slugify(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Slugify(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Data   Structures "); got != "data_structures" {
		t.Errorf("NormalizeName = %q", got)
	}
}

func TestNewSpecPassesValidation(t *testing.T) {
	for _, count := range []int{1, 3, 5, 10} {
		spec, err := NewSpec("Sorting", DifficultyBeginner, 4, count)
		if err != nil {
			t.Fatalf("NewSpec(count=%d): %v", count, err)
		}
		result := Validate(spec)
		if !result.IsValid() {
			t.Errorf("NewSpec(count=%d) fails validation: %v", count, result.Errors)
		}
		if len(spec.Modules) != count {
			t.Errorf("count=%d: got %d modules", count, len(spec.Modules))
		}
		if spec.Modules[0].Type != ModuleStarter {
			t.Errorf("first module type = %q, want starter", spec.Modules[0].Type)
		}
	}
}

func TestDefaultModulesCapstone(t *testing.T) {
	mods := DefaultModules("Graphs", 3)
	if mods[2].Type != ModuleProject {
		t.Errorf("last of 3 modules = %q, want project", mods[2].Type)
	}

	mods = DefaultModules("Graphs", 2)
	if mods[1].Type != ModuleAssignment {
		t.Errorf("second of 2 modules = %q, want assignment", mods[1].Type)
	}

	if got := len(DefaultModules("Graphs", 25)); got != 10 {
		t.Errorf("count clamped to %d, want 10", got)
	}
}

func TestValidateRejectsBrokenSpecs(t *testing.T) {
	base := func() Spec {
		spec, err := NewSpec("Recursion", DifficultyBeginner, 4, 2)
		if err != nil {
			t.Fatalf("NewSpec: %v", err)
		}
		return spec
	}

	tests := []struct {
		name    string
		mutate  func(*Spec)
		wantErr string
	}{
		{"empty name", func(s *Spec) { s.Name = "" }, "name cannot be empty"},
		{"bad slug", func(s *Spec) { s.Slug = "Has Spaces" }, "slug"},
		{"short description", func(s *Spec) { s.Description = "too short" }, "description"},
		{"bad difficulty", func(s *Spec) { s.Difficulty = "expert" }, "difficulty"},
		{"hours out of range", func(s *Spec) { s.EstimatedHours = 100 }, "estimated_hours"},
		{"no modules", func(s *Spec) { s.Modules = nil }, "module"},
		{"duplicate module names", func(s *Spec) {
			s.Modules[1].Name = s.Modules[0].Name
		}, "duplicate"},
		{"single non-starter module", func(s *Spec) {
			s.Modules = s.Modules[1:2]
		}, "starter"},
		{"bad module type", func(s *Spec) { s.Modules[0].Type = "quiz" }, "module type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base()
			tt.mutate(&spec)
			result := Validate(spec)
			if result.IsValid() {
				t.Fatal("expected validation to fail")
			}
			found := false
			for _, e := range result.Errors {
				if strings.Contains(e, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error mentioning %q in %v", tt.wantErr, result.Errors)
			}
		})
	}
}

func TestValidateWarnsWithoutPrerequisites(t *testing.T) {
	spec, err := NewSpec("Concurrency", DifficultyAdvanced, 6, 2)
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}
	result := Validate(spec)
	if !result.IsValid() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a prerequisites warning for an advanced topic")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topic.json")
	config := `{
		"name": "Binary Trees",
		"description": "Tree structures and traversal algorithms in Python.",
		"difficulty": "intermediate",
		"estimated_hours": 6,
		"concepts": ["trees", "recursion"],
		"learning_objectives": ["Build a BST", "Implement traversals"],
		"modules": [
			{"name": "Tree Basics", "type": "starter", "focus_areas": ["nodes"], "code_complexity": "simple"},
			{"name": "Traversals", "type": "assignment", "focus_areas": ["dfs", "bfs"], "code_complexity": "moderate"}
		]
	}`
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if spec.Slug != "binary_trees" {
		t.Errorf("derived slug = %q", spec.Slug)
	}
	if result := Validate(spec); !result.IsValid() {
		t.Errorf("loaded spec invalid: %v", result.Errors)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
