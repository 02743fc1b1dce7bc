package assembler

import (
	"strings"

	"github.com/abhisek/courseforge/internal/content"
	"github.com/abhisek/courseforge/internal/topic"
)

// PlanEntry is one file a module produces.
type PlanEntry struct {
	Filename string
	Type     content.Type

	// CodeSource names the earlier file whose content the generator
	// receives as code-to-test context. Empty for non-test files.
	CodeSource string
}

// standardPlan lists the files for starter, assignment, and project
// modules. Order matters: each test file follows the code it tests so
// the generator can see the real class and method names.
var standardPlan = []PlanEntry{
	{Filename: "learning_path.md", Type: content.TypeLearningPath},
	{Filename: "starter_example.py", Type: content.TypeStarterExample},
	{Filename: "test_starter_example.py", Type: content.TypeTestStarter, CodeSource: "starter_example.py"},
	{Filename: "assignment_a.py", Type: content.TypeAssignmentA},
	{Filename: "test_assignment_a.py", Type: content.TypeTestAssignmentA, CodeSource: "assignment_a.py"},
	{Filename: "assignment_b.py", Type: content.TypeAssignmentB},
	{Filename: "test_assignment_b.py", Type: content.TypeTestAssignmentB, CodeSource: "assignment_b.py"},
	{Filename: "extra_exercises.md", Type: content.TypeExtraExercises},
}

// extraPlan lists the files for exercise-only modules.
var extraPlan = []PlanEntry{
	{Filename: "extra_exercises.md", Type: content.TypeExtraExercises},
}

// ModulePlan returns the ordered file plan for a module type.
func ModulePlan(t topic.ModuleType) []PlanEntry {
	if t == topic.ModuleExtra {
		return extraPlan
	}
	return standardPlan
}

// ModuleDirName derives the on-disk directory name for a module.
func ModuleDirName(name string) string {
	return "module_" + strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
