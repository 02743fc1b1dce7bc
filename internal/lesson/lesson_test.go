package lesson

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/courseforge/internal/assembler"
	"github.com/abhisek/courseforge/internal/content"
	"github.com/abhisek/courseforge/internal/store"
	"github.com/abhisek/courseforge/internal/topic"
)

func fallbackRunner(t *testing.T, opts Options) (*Runner, *assembler.MemStorage) {
	t.Helper()
	gen, err := content.NewGenerator(nil, nil, content.Options{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	storage := assembler.NewMemStorage()
	opts.Storage = storage
	return NewRunner(gen, opts), storage
}

func TestGenerateSingleModuleLesson(t *testing.T) {
	runner, storage := fallbackRunner(t, Options{})

	spec, err := topic.NewSpec("Data Structures", topic.DifficultyBeginner, 4, 1)
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}

	result, err := runner.Generate(context.Background(), &spec, "out")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !result.Success {
		t.Fatalf("lesson failed: %s", result.Error)
	}
	if result.LessonDir != filepath.Join("out", "data_structures") {
		t.Errorf("LessonDir = %q", result.LessonDir)
	}

	if len(result.Modules) != 1 {
		t.Fatalf("got %d modules, want 1", len(result.Modules))
	}
	if got := len(result.Modules[0].Files); got != 8 {
		t.Errorf("module files = %d, want 8", got)
	}
	if got := len(result.ConfigFiles); got != 6 {
		t.Errorf("config files = %d, want 6", got)
	}

	// 8 module files + 6 lesson-level files on storage.
	if got := len(storage.Files()); got != 14 {
		t.Errorf("stored files = %d, want 14: %v", got, storage.Files())
	}

	readme, ok := storage.Read(filepath.Join(result.LessonDir, "README.md"))
	if !ok {
		t.Fatal("README.md not written")
	}
	if !strings.Contains(readme, "# Data Structures") {
		t.Errorf("README missing title:\n%s", readme)
	}
	if !strings.Contains(readme, "1. Data Structures Fundamentals") {
		t.Errorf("README missing module list:\n%s", readme)
	}

	if !result.Quality.Passed() {
		t.Errorf("quality gate rejected fallback lesson: %.2f %v",
			result.Quality.Score, result.Quality.Issues)
	}
	if result.Stats.FallbackCalls == 0 {
		t.Error("expected fallback calls to be counted")
	}
}

func TestGenerateMultiModuleLesson(t *testing.T) {
	runner, storage := fallbackRunner(t, Options{})

	spec, err := topic.NewSpec("Sorting Algorithms", topic.DifficultyIntermediate, 8, 4)
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}

	result, err := runner.Generate(context.Background(), &spec, "out")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !result.Success {
		t.Fatalf("lesson failed: %s", result.Error)
	}
	if len(result.Modules) != 4 {
		t.Fatalf("got %d modules, want 4", len(result.Modules))
	}
	if result.ModulesSucceeded() != 4 {
		t.Errorf("ModulesSucceeded = %d, want 4", result.ModulesSucceeded())
	}

	for _, mod := range result.Modules {
		if !storage.Exists(mod.Dir) {
			t.Errorf("module dir %s missing", mod.Dir)
		}
	}
	// Last module of four is a capstone project with the standard plan.
	last := result.Modules[3]
	if !strings.Contains(last.Dir, "capstone") {
		t.Errorf("expected capstone module last, got %s", last.Dir)
	}
	if len(last.Files) != 8 {
		t.Errorf("capstone files = %d, want 8", len(last.Files))
	}
}

// lossyStorage silently drops writes for matching paths, so generation
// reports success while the lesson on disk is incomplete.
type lossyStorage struct {
	assembler.Storage
	drop func(path string) bool
}

func (s *lossyStorage) WriteFile(path, content string) error {
	if s.drop(path) {
		return nil
	}
	return s.Storage.WriteFile(path, content)
}

func TestGenerateFailsQualityGateDespiteModuleSuccess(t *testing.T) {
	gen, err := content.NewGenerator(nil, nil, content.Options{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	storage := &lossyStorage{
		Storage: assembler.NewMemStorage(),
		drop: func(path string) bool {
			base := filepath.Base(path)
			return strings.HasPrefix(base, "test_") ||
				base == "README.md" || base == "requirements.txt"
		},
	}
	runner := NewRunner(gen, Options{Storage: storage})

	spec, err := topic.NewSpec("Data Structures", topic.DifficultyBeginner, 4, 1)
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}
	result, err := runner.Generate(context.Background(), &spec, "out")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.ModulesSucceeded() != len(result.Modules) {
		t.Fatalf("ModulesSucceeded = %d/%d, expected every module to succeed",
			result.ModulesSucceeded(), len(result.Modules))
	}
	if result.Success {
		t.Error("lesson must fail when the quality gate rejects it")
	}
	if !strings.Contains(result.Error, "quality score too low") {
		t.Errorf("unexpected error text: %s", result.Error)
	}
	if result.Quality.Passed() {
		t.Errorf("quality passed with score %.2f and no tests on disk", result.Quality.Score)
	}
}

func TestGenerateRejectsInvalidSpec(t *testing.T) {
	runner, _ := fallbackRunner(t, Options{})

	spec := topic.Spec{Name: "", Slug: "x"}
	result, err := runner.Generate(context.Background(), &spec, "out")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if result.Success {
		t.Error("invalid spec must not succeed")
	}
	if !strings.Contains(result.Error, "validation failed") {
		t.Errorf("unexpected error text: %s", result.Error)
	}
}

func TestGenerateReportsProgress(t *testing.T) {
	var stages []string
	runner, _ := fallbackRunner(t, Options{
		OnProgress: func(stage string, completed, total int) {
			stages = append(stages, stage)
		},
	})

	spec, err := topic.NewSpec("Recursion", topic.DifficultyBeginner, 3, 2)
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}
	if _, err := runner.Generate(context.Background(), &spec, "out"); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(stages) < 3 {
		t.Fatalf("expected per-module and gate progress, got %v", stages)
	}
	if stages[len(stages)-1] != "quality gate" {
		t.Errorf("last stage = %q, want quality gate", stages[len(stages)-1])
	}
}

// recordingRepo captures lesson run events; other EventRepo methods are
// unused by the runner.
type recordingRepo struct {
	store.EventRepo
	runs []store.LessonRunData
}

func (r *recordingRepo) AppendLessonRun(_ context.Context, data store.LessonRunData) error {
	r.runs = append(r.runs, data)
	return nil
}

func TestGenerateRecordsLessonRun(t *testing.T) {
	repo := &recordingRepo{}
	runner, _ := fallbackRunner(t, Options{Events: repo})

	spec, err := topic.NewSpec("Hash Tables", topic.DifficultyAdvanced, 5, 1)
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}
	result, err := runner.Generate(context.Background(), &spec, "out")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(repo.runs))
	}
	run := repo.runs[0]
	if run.Slug != "hash_tables" {
		t.Errorf("run slug = %q", run.Slug)
	}
	if run.Passed != result.Success {
		t.Errorf("run passed = %v, result success = %v", run.Passed, result.Success)
	}
	if run.ModulesTotal != 1 || run.ModulesSucceeded != 1 {
		t.Errorf("module counts = %d/%d", run.ModulesTotal, run.ModulesSucceeded)
	}
	if run.FallbackCalls == 0 {
		t.Error("expected fallback calls in recorded run")
	}
}
