package syntaxguard

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Hint describes the testable surface of a Python source file: the first
// top-level class and its public methods. Test generators use it to
// import and exercise the right names.
type Hint struct {
	ClassName string
	Methods   []string
}

// Analyze extracts a Hint from Python source. Source without a class
// yields a zero ClassName and the top-level function names as Methods.
func Analyze(ctx context.Context, code string) (Hint, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	src := []byte(code)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return Hint{}, fmt.Errorf("parse python: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "class_definition" {
			continue
		}

		hint := Hint{ClassName: fieldContent(child, "name", src)}
		if body := child.ChildByFieldName("body"); body != nil {
			for j := 0; j < int(body.NamedChildCount()); j++ {
				fn := body.NamedChild(j)
				if fn.Type() != "function_definition" {
					continue
				}
				name := fieldContent(fn, "name", src)
				if name != "" && !strings.HasPrefix(name, "_") {
					hint.Methods = append(hint.Methods, name)
				}
			}
		}
		return hint, nil
	}

	// No class: report top-level functions instead.
	var hint Hint
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "function_definition" {
			continue
		}
		if name := fieldContent(child, "name", src); name != "" {
			hint.Methods = append(hint.Methods, name)
		}
	}
	return hint, nil
}

func fieldContent(node *sitter.Node, field string, src []byte) string {
	f := node.ChildByFieldName(field)
	if f == nil {
		return ""
	}
	return f.Content(src)
}
