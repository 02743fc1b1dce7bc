package topic

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a Spec from a JSON config file. The slug is derived from the
// name when the file omits it. The Spec is not validated here; callers run
// Validate before generation.
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read topic config: %w", err)
	}

	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("parse topic config: %w", err)
	}

	if spec.Slug == "" && spec.Name != "" {
		slug, err := Slugify(spec.Name)
		if err != nil {
			return Spec{}, err
		}
		spec.Slug = slug
	}

	return spec, nil
}

// DefaultModules synthesizes a standard module breakdown for a topic when
// the caller only supplies a count: one starter, then assignments, with the
// last slot becoming a project once there are three or more modules.
func DefaultModules(topicName string, count int) []ModuleSpec {
	if count < 1 {
		count = 1
	}
	if count > 10 {
		count = 10
	}

	modules := make([]ModuleSpec, 0, count)
	modules = append(modules, ModuleSpec{
		Name:       fmt.Sprintf("%s Fundamentals", topicName),
		Type:       ModuleStarter,
		FocusAreas: []string{"core concepts", "basic usage"},
		Complexity: ComplexitySimple,
	})

	for i := 1; i < count; i++ {
		if i == count-1 && count >= 3 {
			modules = append(modules, ModuleSpec{
				Name:       fmt.Sprintf("%s Capstone", topicName),
				Type:       ModuleProject,
				FocusAreas: []string{"applied practice", "integration"},
				Complexity: ComplexityComplex,
			})
			continue
		}
		modules = append(modules, ModuleSpec{
			Name:       fmt.Sprintf("%s Practice %d", topicName, i),
			Type:       ModuleAssignment,
			FocusAreas: []string{"implementation", "testing"},
			Complexity: ComplexityModerate,
		})
	}

	return modules
}

// NewSpec assembles a Spec for a topic name with generated defaults,
// mirroring what the CLI builds when no config file is given.
func NewSpec(name string, difficulty Difficulty, hours float64, moduleCount int) (Spec, error) {
	slug, err := Slugify(name)
	if err != nil {
		return Spec{}, err
	}

	return Spec{
		Name:           name,
		Slug:           slug,
		Description:    fmt.Sprintf("A hands-on programming lesson covering %s with worked examples, assignments, and tests.", name),
		Difficulty:     difficulty,
		EstimatedHours: hours,
		Concepts:       []string{name},
		LearningObjectives: []string{
			fmt.Sprintf("Understand the core ideas behind %s", name),
			fmt.Sprintf("Apply %s concepts in working code", name),
		},
		Modules: DefaultModules(name, moduleCount),
	}, nil
}
