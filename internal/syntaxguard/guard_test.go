package syntaxguard

import (
	"context"
	"strings"
	"testing"
)

const validPython = `"""Example module."""


class Calculator:
    """A small calculator."""

    def add(self, a, b):
        """Add two numbers."""
        return a + b

    def _internal(self):
        pass


def helper():
    return 42
`

func TestCheck_ValidSource(t *testing.T) {
	diags, err := Check(context.Background(), validPython)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestCheck_UnbalancedParens(t *testing.T) {
	code := "def broken(:\n    return 1\n"
	diags, err := Check(context.Background(), code)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(diags) == 0 {
		t.Fatal("expected diagnostics for broken source")
	}
	if diags[0].Line < 1 {
		t.Errorf("expected 1-based line, got %d", diags[0].Line)
	}
}

func TestCheck_EmptySource(t *testing.T) {
	diags, err := Check(context.Background(), "")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics for empty source, got %v", diags)
	}
}

func TestValid(t *testing.T) {
	ok, err := Valid(context.Background(), validPython)
	if err != nil {
		t.Fatalf("valid: %v", err)
	}
	if !ok {
		t.Error("expected valid source")
	}

	ok, err = Valid(context.Background(), "class Broken(:\n    pass\n")
	if err != nil {
		t.Fatalf("valid: %v", err)
	}
	if ok {
		t.Error("expected invalid source")
	}
}

func TestCheck_DiagnosticLimit(t *testing.T) {
	// Heavily malformed input must not produce unbounded diagnostics.
	code := strings.Repeat("def f(:\n", 200)
	diags, err := Check(context.Background(), code)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(diags) > maxDiagnostics {
		t.Fatalf("got %d diagnostics, cap is %d", len(diags), maxDiagnostics)
	}
}

func TestRepair_ClassNameHyphens(t *testing.T) {
	code := "class Data-Science-Example:\n    pass\n"
	fixed := Repair(code)
	if !strings.Contains(fixed, "class DataScienceExample:") {
		t.Errorf("expected hyphens removed, got: %q", fixed)
	}

	ok, err := Valid(context.Background(), fixed)
	if err != nil {
		t.Fatalf("valid: %v", err)
	}
	if !ok {
		t.Error("expected repaired source to be valid")
	}
}

func TestRepair_UnclosedDocstring(t *testing.T) {
	code := "\"\"\"Module docstring that never closes.\n\nclass Example:\n    pass\n"
	fixed := Repair(code)
	if strings.Count(fixed, `"""`)%2 != 0 {
		t.Errorf("expected balanced triple quotes, got: %q", fixed)
	}
}

func TestRepair_Idempotent(t *testing.T) {
	inputs := []string{
		validPython,
		"class Data-Science:\n    pass\n",
		"\"\"\"Unclosed.\n\nclass Example:\n    pass\n",
		"",
	}

	for _, code := range inputs {
		once := Repair(code)
		twice := Repair(once)
		if once != twice {
			t.Errorf("repair not idempotent for %q:\nonce:  %q\ntwice: %q", code, once, twice)
		}
	}
}

func TestRepair_LeavesValidSourceAlone(t *testing.T) {
	if got := Repair(validPython); got != validPython {
		t.Error("expected valid source unchanged")
	}
}

func TestAnalyze_ClassAndMethods(t *testing.T) {
	hint, err := Analyze(context.Background(), validPython)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if hint.ClassName != "Calculator" {
		t.Errorf("class = %q, want Calculator", hint.ClassName)
	}
	if len(hint.Methods) != 1 || hint.Methods[0] != "add" {
		t.Errorf("methods = %v, want [add]", hint.Methods)
	}
}

func TestAnalyze_NoClass(t *testing.T) {
	code := "def first():\n    pass\n\n\ndef second():\n    pass\n"
	hint, err := Analyze(context.Background(), code)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if hint.ClassName != "" {
		t.Errorf("class = %q, want empty", hint.ClassName)
	}
	if len(hint.Methods) != 2 {
		t.Errorf("methods = %v, want two top-level functions", hint.Methods)
	}
}

func TestAnalyze_EmptySource(t *testing.T) {
	hint, err := Analyze(context.Background(), "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if hint.ClassName != "" || len(hint.Methods) != 0 {
		t.Errorf("expected zero hint, got %+v", hint)
	}
}
