package assembler

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/courseforge/internal/content"
	"github.com/abhisek/courseforge/internal/syntaxguard"
	"github.com/abhisek/courseforge/internal/topic"
)

// GeneratedFile records one file written during module assembly.
type GeneratedFile struct {
	Path        string
	Type        string // "python", "markdown", "text"
	SizeBytes   int
	Source      content.Source
	ClassName   string // primary class in a generated code file, if any
	Repaired    bool
	Placeholder bool
}

// ModuleResult is the outcome of assembling one module.
type ModuleResult struct {
	ModuleName string
	Dir        string
	Files      []GeneratedFile
	Success    bool
	Error      string
	Duration   time.Duration
}

// Assembler turns a module spec into files on storage. Content comes
// from the generator; Python files pass through the syntax guard before
// they are written.
type Assembler struct {
	gen     *content.Generator
	storage Storage
}

// New creates an Assembler.
func New(gen *content.Generator, storage Storage) *Assembler {
	return &Assembler{gen: gen, storage: storage}
}

// BuildModule assembles every file in the module's plan under lessonDir.
// A file that cannot be produced gets a placeholder instead of aborting
// the module; only storage failures mark the module unsuccessful.
func (a *Assembler) BuildModule(ctx context.Context, spec *topic.Spec, mod topic.ModuleSpec, lessonDir string) ModuleResult {
	start := time.Now()

	dir := filepath.Join(lessonDir, ModuleDirName(mod.Name))
	result := ModuleResult{
		ModuleName: mod.Name,
		Dir:        dir,
		Success:    true,
	}

	if err := a.storage.MkdirAll(dir); err != nil {
		result.Success = false
		result.Error = fmt.Sprintf("create module dir: %v", err)
		result.Duration = time.Since(start)
		return result
	}

	// Content produced so far, keyed by filename, so test files can be
	// generated against the real code they must exercise.
	produced := make(map[string]string)

	for _, entry := range ModulePlan(mod.Type) {
		req := content.Request{
			Type:   entry.Type,
			Topic:  spec,
			Module: mod,
		}
		if entry.CodeSource != "" {
			req.CodeToTest = produced[entry.CodeSource]
		}

		res := a.gen.Generate(ctx, req)
		text := res.Content

		file := GeneratedFile{
			Path:   filepath.Join(dir, entry.Filename),
			Type:   fileType(entry.Filename),
			Source: res.Source,
		}

		if strings.HasSuffix(entry.Filename, ".py") {
			text, file.Repaired = a.guard(ctx, text)
			if entry.Type.IsCode() {
				if hint, err := syntaxguard.Analyze(ctx, text); err == nil {
					file.ClassName = hint.ClassName
				}
			}
		}

		if err := a.storage.WriteFile(file.Path, text); err != nil {
			// One retry with placeholder content; a second failure means
			// storage itself is broken.
			placeholder := placeholderContent(entry.Filename, mod.Name, err)
			if werr := a.storage.WriteFile(file.Path, placeholder); werr != nil {
				result.Success = false
				result.Error = fmt.Sprintf("write %s: %v", entry.Filename, werr)
				continue
			}
			text = placeholder
			file.Placeholder = true
		}

		file.SizeBytes = len(text)
		produced[entry.Filename] = text
		result.Files = append(result.Files, file)
	}

	result.Duration = time.Since(start)
	return result
}

// guard validates Python source, repairing and revalidating on failure.
// Source that still fails after repair is written anyway; the quality
// gate downstream accounts for it.
func (a *Assembler) guard(ctx context.Context, text string) (string, bool) {
	ok, err := syntaxguard.Valid(ctx, text)
	if err != nil || ok {
		return text, false
	}

	repaired := syntaxguard.Repair(text)
	return repaired, repaired != text
}

func fileType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".py"):
		return "python"
	case strings.HasSuffix(filename, ".md"):
		return "markdown"
	default:
		return "text"
	}
}

// placeholderContent builds a minimal stand-in when a file cannot be
// written with its real content. Python placeholders must still parse.
func placeholderContent(filename, moduleName string, cause error) string {
	if strings.HasSuffix(filename, ".py") {
		return fmt.Sprintf("\"\"\"\n%s\n\nContent generation failed: %v\nTODO: Implement %s for %s\n\"\"\"\n\npass\n",
			filename, cause, filename, moduleName)
	}
	return fmt.Sprintf("# %s\n\nContent generation failed: %v\n\nTODO: Implement %s for %s\n",
		filename, cause, filename, moduleName)
}
