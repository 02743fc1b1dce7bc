package quality

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
)

func lessonFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func completeLesson() map[string]string {
	return map[string]string{
		"README.md":        "# Lesson\n",
		"requirements.txt": "pytest>=7.0.0\n",
		"Makefile":         "test:\n\tpytest\n",
		"pytest.ini":       "[tool:pytest]\n",
		"module_basics/learning_path.md":        "# Path\n",
		"module_basics/starter_example.py":      "class Example:\n    pass\n",
		"module_basics/test_starter_example.py": "def test_example():\n    assert True\n",
		"module_basics/assignment_a.py":         "def solve():\n    return 1\n",
		"module_basics/test_assignment_a.py":    "def test_solve():\n    assert True\n",
	}
}

func TestEvaluateCompleteLesson(t *testing.T) {
	report := Evaluate(context.Background(), lessonFS(completeLesson()))

	if !report.PythonValid {
		t.Errorf("PythonValid = false, issues: %v", report.Issues)
	}
	if !report.TestsExecutable {
		t.Error("TestsExecutable = false")
	}
	if !report.Passed() {
		t.Errorf("score %.2f below threshold %.2f", report.Score, PassThreshold)
	}
	// 3 syntax + 2 tests + 3 files + 2 test ratio = 10/10.
	if report.Score != 1.0 {
		t.Errorf("score = %.2f, want 1.0", report.Score)
	}

	m := report.Metrics
	if m.ModuleCount != 1 {
		t.Errorf("ModuleCount = %d, want 1", m.ModuleCount)
	}
	if m.PythonFiles != 4 || m.TestFiles != 2 {
		t.Errorf("python/test counts = %d/%d, want 4/2", m.PythonFiles, m.TestFiles)
	}
	if !m.HasReadme || !m.HasRequires || !m.HasMakefile {
		t.Errorf("required files flags = %v/%v/%v", m.HasReadme, m.HasRequires, m.HasMakefile)
	}
	if report.Lint.FilesChecked != 4 || len(report.Lint.Warnings) != 0 {
		t.Errorf("lint = %d files / %v, want 4 clean files", report.Lint.FilesChecked, report.Lint.Warnings)
	}
}

func TestEvaluateReportsLintWarnings(t *testing.T) {
	files := completeLesson()
	files["module_basics/assignment_a.py"] = "def solve(): \n    return 1\n"

	report := Evaluate(context.Background(), lessonFS(files))
	if len(report.Lint.Warnings) != 1 {
		t.Fatalf("lint warnings = %v, want one", report.Lint.Warnings)
	}
	if !strings.Contains(report.Lint.Warnings[0], "trailing whitespace") {
		t.Errorf("warning = %q", report.Lint.Warnings[0])
	}
	// Style warnings never gate delivery.
	if !report.Passed() {
		t.Errorf("score %.2f below threshold over a style warning", report.Score)
	}
}

func TestEvaluateFlagsBrokenPython(t *testing.T) {
	files := completeLesson()
	files["module_basics/assignment_a.py"] = "def solve(:\n    return\n"

	report := Evaluate(context.Background(), lessonFS(files))
	if report.PythonValid {
		t.Fatal("expected PythonValid = false for broken source")
	}
	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "assignment_a.py") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue names the broken file: %v", report.Issues)
	}
}

func TestEvaluateNoTests(t *testing.T) {
	files := map[string]string{
		"README.md":                        "# Lesson\n",
		"module_basics/starter_example.py": "x = 1\n",
	}

	report := Evaluate(context.Background(), lessonFS(files))
	if report.TestsExecutable {
		t.Error("expected TestsExecutable = false with no test files")
	}
	// 3 syntax + 1 readme = 4/10.
	if report.Score >= PassThreshold {
		t.Errorf("score = %.2f, expected a failing lesson", report.Score)
	}
}

func TestEvaluateNestedFilesIgnoredForRootChecks(t *testing.T) {
	files := map[string]string{
		"module_basics/README.md":       "# nested\n",
		"module_basics/test_example.py": "def test_ok():\n    assert True\n",
		"module_basics/example.py":      "x = 1\n",
	}

	report := Evaluate(context.Background(), lessonFS(files))
	if report.Metrics.HasReadme {
		t.Error("nested README.md should not count as the lesson README")
	}
}

func TestLint(t *testing.T) {
	long := strings.Repeat("x", 120)
	files := map[string]string{
		"module_basics/example.py": "value = 1 \nlong = \"" + long + "\"\nok = 2\n",
		"notes.md":                 long + "\n",
	}

	result, err := Lint(lessonFS(files))
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if result.FilesChecked != 1 {
		t.Errorf("FilesChecked = %d, want 1", result.FilesChecked)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("warnings = %v, want trailing whitespace + long line", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "trailing whitespace") {
		t.Errorf("warning 0 = %q", result.Warnings[0])
	}
	if !strings.Contains(result.Warnings[1], "line too long") {
		t.Errorf("warning 1 = %q", result.Warnings[1])
	}
}
