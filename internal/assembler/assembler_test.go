package assembler

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/courseforge/internal/content"
	"github.com/abhisek/courseforge/internal/llm"
	"github.com/abhisek/courseforge/internal/topic"
)

func testSpec(t *testing.T) *topic.Spec {
	t.Helper()
	spec, err := topic.NewSpec("Data Structures", topic.DifficultyBeginner, 4, 1)
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}
	return &spec
}

func fallbackGenerator(t *testing.T) *content.Generator {
	t.Helper()
	gen, err := content.NewGenerator(nil, nil, content.Options{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return gen
}

func mockGenerator(t *testing.T, provider llm.Provider) *content.Generator {
	t.Helper()
	gen, err := content.NewGenerator(provider, nil, content.Options{RateDelay: time.Millisecond})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return gen
}

func TestBuildModuleStandardPlan(t *testing.T) {
	spec := testSpec(t)
	storage := NewMemStorage()
	asm := New(fallbackGenerator(t), storage)

	mod := topic.ModuleSpec{
		Name:       "Data Structures Fundamentals",
		Type:       topic.ModuleStarter,
		FocusAreas: []string{"lists", "dicts"},
		Complexity: topic.ComplexitySimple,
	}

	result := asm.BuildModule(context.Background(), spec, mod, "out/lesson")
	if !result.Success {
		t.Fatalf("BuildModule failed: %s", result.Error)
	}
	if result.Dir != filepath.Join("out/lesson", "module_data_structures_fundamentals") {
		t.Errorf("unexpected module dir %q", result.Dir)
	}
	if len(result.Files) != len(standardPlan) {
		t.Fatalf("got %d files, want %d", len(result.Files), len(standardPlan))
	}

	for i, entry := range standardPlan {
		file := result.Files[i]
		if filepath.Base(file.Path) != entry.Filename {
			t.Errorf("file %d: got %q, want %q", i, filepath.Base(file.Path), entry.Filename)
		}
		if file.Source != content.SourceFallback {
			t.Errorf("%s: source = %q, want fallback", entry.Filename, file.Source)
		}
		body, ok := storage.Read(file.Path)
		if !ok {
			t.Errorf("%s: not written to storage", entry.Filename)
		}
		if strings.TrimSpace(body) == "" {
			t.Errorf("%s: empty content", entry.Filename)
		}
	}
}

func TestBuildModuleExtraPlan(t *testing.T) {
	spec := testSpec(t)
	storage := NewMemStorage()
	asm := New(fallbackGenerator(t), storage)

	mod := topic.ModuleSpec{Name: "Bonus Drills", Type: topic.ModuleExtra}
	result := asm.BuildModule(context.Background(), spec, mod, "out/lesson")
	if !result.Success {
		t.Fatalf("BuildModule failed: %s", result.Error)
	}
	if len(result.Files) != 1 {
		t.Fatalf("got %d files, want 1", len(result.Files))
	}
	if filepath.Base(result.Files[0].Path) != "extra_exercises.md" {
		t.Errorf("unexpected file %q", result.Files[0].Path)
	}
}

// Test files must be generated against the code produced earlier in the
// same module, even when the model only answered for the code file.
func TestBuildModuleTestsSeeGeneratedCode(t *testing.T) {
	mock := llm.NewMockProvider()
	fooClass := "```python\nclass Foo:\n    def bar(self):\n        return 1\n```"
	for _, entry := range standardPlan {
		if entry.Type == content.TypeAssignmentB {
			mock.AddResponse(llm.MockResponse{Text: fooClass})
			continue
		}
		mock.AddResponse(llm.MockResponse{Err: errors.New("model busy")})
	}

	spec := testSpec(t)
	storage := NewMemStorage()
	asm := New(mockGenerator(t, mock), storage)

	mod := topic.ModuleSpec{Name: "Classes", Type: topic.ModuleAssignment}
	result := asm.BuildModule(context.Background(), spec, mod, "out/lesson")
	if !result.Success {
		t.Fatalf("BuildModule failed: %s", result.Error)
	}

	testBody, ok := storage.Read(filepath.Join(result.Dir, "test_assignment_b.py"))
	if !ok {
		t.Fatal("test_assignment_b.py missing")
	}
	if !strings.Contains(testBody, "Foo") {
		t.Errorf("fallback test does not reference generated class Foo:\n%s", testBody)
	}

	for _, file := range result.Files {
		if filepath.Base(file.Path) == "assignment_b.py" && file.ClassName != "Foo" {
			t.Errorf("assignment_b.py ClassName = %q, want Foo", file.ClassName)
		}
	}
}

func TestBuildModuleRepairsBrokenPython(t *testing.T) {
	mock := llm.NewMockProvider()
	for _, entry := range standardPlan {
		if entry.Type == content.TypeStarterExample {
			mock.AddResponse(llm.MockResponse{Text: "class My-Example:\n    pass\n"})
			continue
		}
		mock.AddResponse(llm.MockResponse{Err: errors.New("model busy")})
	}

	spec := testSpec(t)
	storage := NewMemStorage()
	asm := New(mockGenerator(t, mock), storage)

	mod := topic.ModuleSpec{Name: "Repairs", Type: topic.ModuleStarter}
	result := asm.BuildModule(context.Background(), spec, mod, "out/lesson")
	if !result.Success {
		t.Fatalf("BuildModule failed: %s", result.Error)
	}

	var starter *GeneratedFile
	for i := range result.Files {
		if filepath.Base(result.Files[i].Path) == "starter_example.py" {
			starter = &result.Files[i]
		}
	}
	if starter == nil {
		t.Fatal("starter_example.py missing from result")
	}
	if !starter.Repaired {
		t.Error("expected starter_example.py to be marked repaired")
	}
	body, _ := storage.Read(starter.Path)
	if strings.Contains(body, "My-Example") {
		t.Errorf("hyphenated class name survived repair:\n%s", body)
	}
}

// failStorage fails the first write of a chosen file, then passes
// everything through to the wrapped storage.
type failStorage struct {
	Storage
	failFile string
	failed   bool
}

func (f *failStorage) WriteFile(path, body string) error {
	if !f.failed && filepath.Base(path) == f.failFile {
		f.failed = true
		return errors.New("disk full")
	}
	return f.Storage.WriteFile(path, body)
}

func TestBuildModuleWritesPlaceholderOnFailure(t *testing.T) {
	spec := testSpec(t)
	mem := NewMemStorage()
	storage := &failStorage{Storage: mem, failFile: "assignment_a.py"}
	asm := New(fallbackGenerator(t), storage)

	mod := topic.ModuleSpec{Name: "Flaky", Type: topic.ModuleStarter}
	result := asm.BuildModule(context.Background(), spec, mod, "out/lesson")
	if !result.Success {
		t.Fatalf("BuildModule failed: %s", result.Error)
	}

	var placeholder *GeneratedFile
	for i := range result.Files {
		if filepath.Base(result.Files[i].Path) == "assignment_a.py" {
			placeholder = &result.Files[i]
		}
	}
	if placeholder == nil {
		t.Fatal("assignment_a.py missing from result")
	}
	if !placeholder.Placeholder {
		t.Error("expected assignment_a.py to be marked as placeholder")
	}
	body, _ := mem.Read(placeholder.Path)
	if !strings.Contains(body, "Content generation failed") {
		t.Errorf("placeholder body missing failure note:\n%s", body)
	}
	if !strings.Contains(body, "pass") {
		t.Errorf("python placeholder should still parse:\n%s", body)
	}
}
