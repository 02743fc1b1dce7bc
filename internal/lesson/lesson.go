// Package lesson orchestrates full lesson generation: validation,
// module assembly, lesson scaffolding, and the quality gate.
package lesson

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/courseforge/internal/assembler"
	"github.com/abhisek/courseforge/internal/content"
	"github.com/abhisek/courseforge/internal/quality"
	"github.com/abhisek/courseforge/internal/store"
	"github.com/abhisek/courseforge/internal/topic"
)

// Progress notifies callers as generation advances. stage is a short
// human-readable label; completed/total count module-level steps.
type Progress func(stage string, completed, total int)

// Result summarizes one lesson generation run.
type Result struct {
	TopicName   string
	Slug        string
	LessonDir   string
	Modules     []assembler.ModuleResult
	ConfigFiles []string
	Quality     quality.Report
	Stats       content.Stats
	Success     bool
	Error       string
	Duration    time.Duration
}

// ModulesSucceeded counts modules that assembled without storage errors.
func (r Result) ModulesSucceeded() int {
	n := 0
	for _, m := range r.Modules {
		if m.Success {
			n++
		}
	}
	return n
}

// Runner drives lesson generation end to end.
type Runner struct {
	gen     *content.Generator
	asm     *assembler.Assembler
	storage assembler.Storage
	events  store.EventRepo // nil disables run recording
	onProg  Progress
}

// Options configures a Runner.
type Options struct {
	// Storage receives lesson files. Defaults to DiskStorage.
	Storage assembler.Storage

	// Events records a lesson_run event per run when set.
	Events store.EventRepo

	// OnProgress is invoked as modules complete. Optional.
	OnProgress Progress
}

// NewRunner creates a Runner around a content generator.
func NewRunner(gen *content.Generator, opts Options) *Runner {
	storage := opts.Storage
	if storage == nil {
		storage = assembler.DiskStorage{}
	}
	return &Runner{
		gen:     gen,
		asm:     assembler.New(gen, storage),
		storage: storage,
		events:  opts.Events,
		onProg:  opts.OnProgress,
	}
}

// Generate builds the complete lesson for spec under outputDir. The
// returned Result always describes what happened; the error return is
// reserved for invalid input and broken storage.
func (r *Runner) Generate(ctx context.Context, spec *topic.Spec, outputDir string) (Result, error) {
	start := time.Now()
	result := Result{
		TopicName: spec.Name,
		Slug:      spec.Slug,
		Success:   true,
	}

	validation := topic.Validate(*spec)
	if !validation.IsValid() {
		result.Success = false
		result.Error = "topic validation failed: " + strings.Join(validation.Errors, "; ")
		result.Duration = time.Since(start)
		r.record(ctx, spec, result)
		return result, fmt.Errorf("%s", result.Error)
	}

	result.LessonDir = filepath.Join(outputDir, spec.Slug)
	if err := r.storage.MkdirAll(result.LessonDir); err != nil {
		result.Success = false
		result.Error = fmt.Sprintf("create lesson dir: %v", err)
		result.Duration = time.Since(start)
		r.record(ctx, spec, result)
		return result, fmt.Errorf("create lesson dir %s: %w", result.LessonDir, err)
	}

	total := len(spec.Modules)
	for i, mod := range spec.Modules {
		r.progress("module: "+mod.Name, i, total)
		modResult := r.asm.BuildModule(ctx, spec, mod, result.LessonDir)
		result.Modules = append(result.Modules, modResult)
		if !modResult.Success {
			result.Success = false
			if result.Error == "" {
				result.Error = "failed to generate module: " + mod.Name
			}
		}
	}
	r.progress("modules complete", total, total)

	if result.Success {
		if err := r.writeConfigFiles(spec, &result); err != nil {
			result.Success = false
			result.Error = fmt.Sprintf("write config files: %v", err)
		}
	}

	if result.Success {
		r.progress("quality gate", total, total)
		result.Quality = quality.Evaluate(ctx, r.storage.DirFS(result.LessonDir))
		if !result.Quality.Passed() {
			result.Success = false
			result.Error = fmt.Sprintf("quality score too low: %.2f", result.Quality.Score)
		}
	}

	result.Stats = r.gen.Stats()
	result.Duration = time.Since(start)
	r.record(ctx, spec, result)
	return result, nil
}

func (r *Runner) writeConfigFiles(spec *topic.Spec, result *Result) error {
	for _, cf := range ConfigFiles(spec) {
		path := filepath.Join(result.LessonDir, cf.Name)
		if err := r.storage.WriteFile(path, cf.Content); err != nil {
			return fmt.Errorf("%s: %w", cf.Name, err)
		}
		result.ConfigFiles = append(result.ConfigFiles, cf.Name)
	}
	return nil
}

func (r *Runner) progress(stage string, completed, total int) {
	if r.onProg != nil {
		r.onProg(stage, completed, total)
	}
}

// record appends a lesson_run event. Event store failures never fail
// the lesson itself.
func (r *Runner) record(ctx context.Context, spec *topic.Spec, result Result) {
	if r.events == nil {
		return
	}
	data := store.LessonRunData{
		Topic:            spec.Name,
		Slug:             spec.Slug,
		Difficulty:       string(spec.Difficulty),
		OutputDir:        result.LessonDir,
		ModulesTotal:     len(spec.Modules),
		ModulesSucceeded: result.ModulesSucceeded(),
		QualityScore:     result.Quality.Score,
		Passed:           result.Success,
		AICalls:          result.Stats.AICalls,
		CacheHits:        result.Stats.CacheHits,
		FallbackCalls:    result.Stats.FallbackCalls,
		DurationMs:       result.Duration.Milliseconds(),
		ErrorMessage:     result.Error,
	}
	if err := r.events.AppendLessonRun(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record lesson run: %v\n", err)
	}
}
