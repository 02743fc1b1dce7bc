package topic

import (
	"fmt"
	"regexp"
)

// ValidationError describes a single blocking problem with a Spec.
type ValidationError struct {
	Field   string // Spec field the problem applies to, e.g. "modules[2].name"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result collects the outcome of validating a Spec.
// Errors block generation; warnings and suggestions never do.
type Result struct {
	Errors      []string
	Warnings    []string
	Suggestions []string
}

// IsValid reports whether generation may proceed.
func (r *Result) IsValid() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) suggestf(format string, args ...any) {
	r.Suggestions = append(r.Suggestions, fmt.Sprintf(format, args...))
}

var slugPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Validate checks a Spec for structural completeness before generation.
// Pure function: no I/O, no mutation of the input.
func Validate(spec Spec) *Result {
	r := &Result{}

	if spec.Name == "" {
		r.errorf("topic name cannot be empty")
	} else if len(spec.Name) > 100 {
		r.errorf("topic name exceeds 100 characters")
	}

	if spec.Slug == "" {
		r.errorf("topic slug cannot be empty")
	} else if !slugPattern.MatchString(spec.Slug) {
		r.errorf("topic slug %q must match [a-z0-9_]+", spec.Slug)
	}

	if len(spec.Description) < 10 {
		r.errorf("description must be at least 10 characters")
	} else if len(spec.Description) > 500 {
		r.errorf("description exceeds 500 characters")
	}

	switch spec.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		r.errorf("difficulty must be beginner, intermediate, or advanced (got %q)", spec.Difficulty)
	}

	if spec.EstimatedHours < 0.5 || spec.EstimatedHours > 40 {
		r.errorf("estimated_hours must be between 0.5 and 40 (got %g)", spec.EstimatedHours)
	} else if spec.EstimatedHours > 20 {
		r.warnf("estimated_hours %g is unusually high for a single lesson", spec.EstimatedHours)
	}

	validateStringList(r, "concepts", spec.Concepts, 1, 15)
	if len(spec.Concepts) > 10 {
		r.warnf("%d concepts may be too many to cover well", len(spec.Concepts))
	}
	validateStringList(r, "learning_objectives", spec.LearningObjectives, 2, 10)
	if len(spec.Prerequisites) > 10 {
		r.errorf("at most 10 prerequisites allowed (got %d)", len(spec.Prerequisites))
	}
	if len(spec.Prerequisites) == 0 && spec.Difficulty != DifficultyBeginner {
		r.warnf("%s topics usually list prerequisites", spec.Difficulty)
	}

	validateModules(r, spec.Modules)

	if spec.Difficulty == DifficultyAdvanced && !hasModuleType(spec.Modules, ModuleExtra) {
		r.suggestf("advanced topics benefit from an extra-exercises module")
	}

	return r
}

func validateStringList(r *Result, field string, items []string, min, max int) {
	if len(items) < min {
		r.errorf("%s requires at least %d entries (got %d)", field, min, len(items))
	}
	if len(items) > max {
		r.errorf("%s allows at most %d entries (got %d)", field, max, len(items))
	}
	for i, s := range items {
		if s == "" {
			r.errorf("%s[%d] is empty", field, i)
		}
	}
}

func validateModules(r *Result, modules []ModuleSpec) {
	if len(modules) == 0 {
		r.errorf("at least 1 module is required")
		return
	}
	if len(modules) > 10 {
		r.errorf("at most 10 modules allowed (got %d)", len(modules))
	}

	if len(modules) == 1 {
		if modules[0].Type != ModuleStarter {
			r.errorf("single-module lessons must have a starter module")
		}
	} else {
		if !hasModuleType(modules, ModuleStarter) {
			r.errorf("at least one starter module is required")
		}
		if !hasModuleType(modules, ModuleAssignment) {
			r.errorf("multi-module lessons need at least one assignment module")
		}
	}

	seen := make(map[string]string, len(modules))
	for i, m := range modules {
		field := fmt.Sprintf("modules[%d]", i)

		if m.Name == "" {
			r.errorf("%s.name cannot be empty", field)
		} else {
			norm := NormalizeName(m.Name)
			if prev, dup := seen[norm]; dup {
				r.errorf("duplicate module name %q (conflicts with %q)", m.Name, prev)
			}
			seen[norm] = m.Name
		}

		switch m.Type {
		case ModuleStarter, ModuleAssignment, ModuleProject, ModuleExtra:
		default:
			r.errorf("%s.type %q is not a valid module type", field, m.Type)
		}

		if len(m.FocusAreas) < 1 || len(m.FocusAreas) > 5 {
			r.errorf("%s.focus_areas requires 1-5 entries (got %d)", field, len(m.FocusAreas))
		}
		for j, area := range m.FocusAreas {
			if area == "" {
				r.errorf("%s.focus_areas[%d] is empty", field, j)
			}
		}

		switch m.Complexity {
		case ComplexitySimple, ComplexityModerate, ComplexityComplex:
		default:
			r.errorf("%s.code_complexity %q is not a valid complexity", field, m.Complexity)
		}
	}
}

func hasModuleType(modules []ModuleSpec, t ModuleType) bool {
	for _, m := range modules {
		if m.Type == t {
			return true
		}
	}
	return false
}
