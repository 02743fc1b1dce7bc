package content

// tokenBudgets caps output size per content type. Test files need far
// fewer tokens than examples; learning paths get the most room because
// truncating them ruins the document.
var tokenBudgets = map[Type]int{
	TypeStarterExample:  800,
	TypeAssignmentA:     600,
	TypeAssignmentB:     600,
	TypeTestStarter:     400,
	TypeTestAssignmentA: 400,
	TypeTestAssignmentB: 400,
	TypeExtraExercises:  800,
	TypeLearningPath:    1200,
}

const defaultTokenBudget = 600

// MaxTokens returns the output token budget for a content type.
func MaxTokens(t Type) int {
	if n, ok := tokenBudgets[t]; ok {
		return n
	}
	return defaultTokenBudget
}
