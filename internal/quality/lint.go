package quality

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

const maxLineLength = 100

// LintResult holds style warnings for the Python files in a lesson.
type LintResult struct {
	FilesChecked int
	Warnings     []string
}

// Lint runs lightweight style checks over every Python file: overlong
// lines and trailing whitespace. It never fails a lesson, it only
// annotates the report shown to the author.
func Lint(fsys fs.FS) (LintResult, error) {
	var result LintResult

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path.Base(p), ".py") {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		result.FilesChecked++

		for i, line := range strings.Split(string(data), "\n") {
			if len(line) > maxLineLength {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s:%d line too long (%d > %d)", p, i+1, len(line), maxLineLength))
			}
			if strings.TrimRight(line, " \t") != line {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s:%d trailing whitespace", p, i+1))
			}
		}
		return nil
	})

	return result, err
}
