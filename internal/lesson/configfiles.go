package lesson

import (
	"fmt"
	"strings"

	"github.com/abhisek/courseforge/internal/topic"
)

// ConfigFile is one lesson-level scaffold file.
type ConfigFile struct {
	Name    string
	Content string
}

// ConfigFiles renders the lesson-level scaffold: a README, the Python
// toolchain pins, pytest and coverage configuration, a Makefile, and a
// gitignore. Only the README depends on the topic.
func ConfigFiles(spec *topic.Spec) []ConfigFile {
	return []ConfigFile{
		{Name: "README.md", Content: renderReadme(spec)},
		{Name: "requirements.txt", Content: requirementsTxt},
		{Name: "pytest.ini", Content: pytestIni},
		{Name: "Makefile", Content: makefile},
		{Name: "setup.cfg", Content: setupCfg},
		{Name: ".gitignore", Content: gitignore},
	}
}

func renderReadme(spec *topic.Spec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n%s\n\n", spec.Name, spec.Description)

	b.WriteString("## Learning Objectives\n\n")
	for _, obj := range spec.LearningObjectives {
		fmt.Fprintf(&b, "- %s\n", obj)
	}

	b.WriteString("\n## Prerequisites\n\n")
	if len(spec.Prerequisites) == 0 {
		b.WriteString("None\n")
	}
	for _, prereq := range spec.Prerequisites {
		fmt.Fprintf(&b, "- %s\n", prereq)
	}

	b.WriteString("\n## Modules\n\n")
	for i, mod := range spec.Modules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, mod.Name)
	}

	b.WriteString(`
## Getting Started

1. Clone this repository
2. Create a virtual environment: ` + "`python -m venv venv`" + `
3. Activate the virtual environment: ` + "`source venv/bin/activate`" + ` (Linux/Mac) or ` + "`venv\\Scripts\\activate`" + ` (Windows)
4. Install dependencies: ` + "`pip install -r requirements.txt`" + `
5. Run tests: ` + "`pytest`" + `

## Estimated Time

`)
	fmt.Fprintf(&b, "This lesson should take approximately %g hours to complete.\n", spec.EstimatedHours)

	return b.String()
}

const requirementsTxt = `pytest>=7.0.0
pytest-cov>=4.0.0
pylint>=2.17.0
black>=23.0.0
`

const pytestIni = `[tool:pytest]
testpaths = .
python_files = test_*.py
python_classes = Test*
python_functions = test_*
addopts = --tb=short --cov=. --cov-report=term-missing
`

const makefile = `# Makefile for lesson

.PHONY: test lint format clean install

install:
	pip install -r requirements.txt

test:
	pytest

lint:
	pylint **/*.py

format:
	black **/*.py

clean:
	find . -type d -name "__pycache__" -delete
	find . -type f -name "*.pyc" -delete
	rm -rf .pytest_cache
	rm -rf .coverage
`

const setupCfg = `[pylint]
disable = missing-docstring,too-few-public-methods

[coverage:run]
source = .
omit = test_*, *_test.py

[coverage:report]
exclude_lines =
    pragma: no cover
    def __repr__
    raise AssertionError
    raise NotImplementedError
`

const gitignore = `# Python
__pycache__/
*.py[cod]
*$py.class
*.so
.Python
build/
develop-eggs/
dist/
downloads/
eggs/
.eggs/
lib/
lib64/
parts/
sdist/
var/
wheels/
*.egg-info/
.installed.cfg
*.egg

# Testing
.pytest_cache/
.coverage
htmlcov/
.tox/

# IDEs
.vscode/
.idea/
*.swp
*.swo

# OS
.DS_Store
Thumbs.db
`
