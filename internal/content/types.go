package content

import (
	"strings"
	"time"

	"github.com/abhisek/courseforge/internal/topic"
)

// Type identifies a kind of lesson content.
type Type string

const (
	TypeLearningPath    Type = "learning_path"
	TypeStarterExample  Type = "starter_example"
	TypeAssignmentA     Type = "assignment_a"
	TypeAssignmentB     Type = "assignment_b"
	TypeTestStarter     Type = "test_starter"
	TypeTestAssignmentA Type = "test_assignment_a"
	TypeTestAssignmentB Type = "test_assignment_b"
	TypeExtraExercises  Type = "extra_exercises"
)

// IsCode reports whether this content type produces Python source
// (as opposed to markdown prose).
func (t Type) IsCode() bool {
	switch t {
	case TypeStarterExample, TypeAssignmentA, TypeAssignmentB,
		TypeTestStarter, TypeTestAssignmentA, TypeTestAssignmentB:
		return true
	}
	return false
}

// IsTest reports whether this content type produces pytest test code.
func (t Type) IsTest() bool {
	switch t {
	case TypeTestStarter, TypeTestAssignmentA, TypeTestAssignmentB:
		return true
	}
	return false
}

// Request describes one piece of content to generate.
type Request struct {
	Type   Type
	Topic  *topic.Spec
	Module topic.ModuleSpec

	// CodeToTest carries the already-generated code a test file must
	// exercise. Only set for test content types.
	CodeToTest string
}

// CacheKey returns a stable identity for this request. Requests that
// would produce equivalent content share a key, so repeated generation
// within a run hits the cache instead of the provider.
func (r Request) CacheKey() string {
	parts := []string{
		string(r.Type),
		normalizeKey(r.Topic.Name),
		string(r.Topic.Difficulty),
		normalizeKey(r.Module.Name),
		string(r.Module.Type),
	}
	return strings.Join(parts, "|")
}

func normalizeKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

// Source identifies where a Result came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Result is a piece of generated content.
type Result struct {
	Content    string
	Model      string
	TokensUsed int
	Duration   time.Duration
	Source     Source
}
