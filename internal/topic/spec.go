package topic

// Difficulty is the target audience level for a topic.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ModuleType identifies what kind of material a module produces.
type ModuleType string

const (
	ModuleStarter    ModuleType = "starter"
	ModuleAssignment ModuleType = "assignment"
	ModuleProject    ModuleType = "project"
	ModuleExtra      ModuleType = "extra"
)

// Complexity controls how elaborate the generated code should be.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// ModuleSpec describes a single unit within a lesson.
type ModuleSpec struct {
	Name       string     `json:"name"`
	Type       ModuleType `json:"type"`
	FocusAreas []string   `json:"focus_areas"`
	Complexity Complexity `json:"code_complexity"`
}

// Spec is the full description of one lesson topic and its module breakdown.
type Spec struct {
	Name               string       `json:"name"`
	Slug               string       `json:"slug"`
	Description        string       `json:"description"`
	Difficulty         Difficulty   `json:"difficulty"`
	EstimatedHours     float64      `json:"estimated_hours"`
	Concepts           []string     `json:"concepts"`
	LearningObjectives []string     `json:"learning_objectives"`
	Prerequisites      []string     `json:"prerequisites"`
	Modules            []ModuleSpec `json:"modules"`
}
