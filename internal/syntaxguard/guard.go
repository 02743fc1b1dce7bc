// Package syntaxguard validates and repairs generated Python source
// before it is written to disk. Validation parses with tree-sitter and
// reports ERROR/MISSING nodes with positions; repair fixes the handful
// of mistakes LLMs make most often.
package syntaxguard

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Diagnostic is one syntax problem found in a source file.
type Diagnostic struct {
	Line    int    // 1-based
	Column  int    // 0-based
	Message string
	Context string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d, col %d: %s", d.Line, d.Column, d.Message)
}

const (
	maxDiagnostics = 50
	maxDepth       = 1000
	maxContext     = 50
)

// Check parses code as Python and returns diagnostics for every syntax
// error found. A nil slice means the source is valid.
func Check(ctx context.Context, code string) ([]Diagnostic, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	src := []byte(code)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse python: %w", err)
	}
	defer tree.Close()

	var diags []Diagnostic
	collect(tree.RootNode(), src, &diags, 0)
	return diags, nil
}

// Valid reports whether code parses as Python without errors.
func Valid(ctx context.Context, code string) (bool, error) {
	diags, err := Check(ctx, code)
	if err != nil {
		return false, err
	}
	return len(diags) == 0, nil
}

// collect walks the tree gathering ERROR and MISSING nodes. The depth
// guard prevents stack exhaustion on pathological input.
func collect(node *sitter.Node, src []byte, diags *[]Diagnostic, depth int) {
	if depth > maxDepth || len(*diags) >= maxDiagnostics {
		return
	}

	if node.IsError() || node.IsMissing() {
		start := node.StartPoint()
		from := node.StartByte()
		to := node.EndByte()
		if to > uint32(len(src)) {
			to = uint32(len(src))
		}

		context := ""
		if to > from && to-from < 100 {
			context = string(src[from:to])
		}

		msg := "syntax error"
		if node.IsMissing() {
			msg = fmt.Sprintf("missing %s", node.Type())
		} else if context != "" {
			msg = fmt.Sprintf("unexpected: %s", truncate(context, maxContext))
		}

		*diags = append(*diags, Diagnostic{
			Line:    int(start.Row) + 1,
			Column:  int(start.Column),
			Message: msg,
			Context: context,
		})
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collect(node.Child(i), src, diags, depth+1)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
