// Package quality scores a generated lesson directory and decides
// whether it meets the bar for delivery.
package quality

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/abhisek/courseforge/internal/syntaxguard"
)

// PassThreshold is the minimum score a lesson must reach.
const PassThreshold = 0.5

// Metrics summarizes the shape of a lesson directory.
type Metrics struct {
	TotalFiles    int
	PythonFiles   int
	TestFiles     int
	MarkdownFiles int
	TotalLines    int
	HasReadme     bool
	HasRequires   bool
	HasMakefile   bool
	ModuleCount   int
}

// Report is the result of evaluating one lesson.
type Report struct {
	Score           float64
	PythonValid     bool
	TestsExecutable bool
	Issues          []string
	Lint            LintResult
	Metrics         Metrics
}

// Passed reports whether the lesson clears the quality threshold.
func (r Report) Passed() bool {
	return r.Score >= PassThreshold
}

// Evaluate walks a lesson tree, validates every Python file, gathers
// structural metrics, and scores the result on a ten point rubric
// normalized to 0..1.
func Evaluate(ctx context.Context, fsys fs.FS) Report {
	report := Report{
		PythonValid:     true,
		TestsExecutable: true,
	}

	if err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(path.Base(p), "module_") {
				report.Metrics.ModuleCount++
			}
			return nil
		}

		report.Metrics.TotalFiles++

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			report.Issues = append(report.Issues, fmt.Sprintf("%s: %v", p, err))
			return nil
		}
		body := string(data)
		report.Metrics.TotalLines += strings.Count(body, "\n")

		base := path.Base(p)
		switch {
		case strings.HasSuffix(base, ".py"):
			report.Metrics.PythonFiles++
			if strings.HasPrefix(base, "test_") {
				report.Metrics.TestFiles++
			}
			checkSyntax(ctx, &report, p, body)
		case strings.HasSuffix(base, ".md"):
			report.Metrics.MarkdownFiles++
		}

		if !strings.Contains(p, "/") {
			switch base {
			case "README.md":
				report.Metrics.HasReadme = true
			case "requirements.txt":
				report.Metrics.HasRequires = true
			case "Makefile":
				report.Metrics.HasMakefile = true
			}
		}
		return nil
	}); err != nil {
		report.Issues = append(report.Issues, fmt.Sprintf("walk lesson: %v", err))
		return report
	}

	if report.Metrics.TestFiles == 0 {
		report.TestsExecutable = false
		report.Issues = append(report.Issues, "no test files found")
	}

	lint, err := Lint(fsys)
	if err != nil {
		report.Issues = append(report.Issues, fmt.Sprintf("lint lesson: %v", err))
	}
	report.Lint = lint

	report.Score = score(report)
	return report
}

func checkSyntax(ctx context.Context, report *Report, p, body string) {
	diags, err := syntaxguard.Check(ctx, body)
	if err != nil {
		report.PythonValid = false
		report.Issues = append(report.Issues, fmt.Sprintf("%s: %v", p, err))
		return
	}
	for _, d := range diags {
		report.PythonValid = false
		report.Issues = append(report.Issues, fmt.Sprintf("%s:%d: %s", p, d.Line, d.Message))
	}
}

// score applies the rubric: syntax 3, executable tests 2, README /
// requirements / Makefile 1 each, and up to 2 for the ratio of test
// files to Python files.
func score(report Report) float64 {
	const maxScore = 10.0
	var s float64

	if report.PythonValid {
		s += 3
	}
	if report.TestsExecutable {
		s += 2
	}
	if report.Metrics.HasReadme {
		s++
	}
	if report.Metrics.HasRequires {
		s++
	}
	if report.Metrics.HasMakefile {
		s++
	}

	var ratio float64
	if report.Metrics.PythonFiles > 0 {
		ratio = float64(report.Metrics.TestFiles) / float64(report.Metrics.PythonFiles)
	}
	switch {
	case ratio >= 0.4:
		s += 2
	case ratio >= 0.2:
		s++
	}

	return min(s/maxScore, 1.0)
}
