package content

import (
	"fmt"
	"strings"
)

const codeSystemPrompt = `You are an expert Python programming instructor.

CRITICAL REQUIREMENTS:
1. Generate ONLY valid, executable Python code with NO syntax errors
2. ALL strings must be properly quoted and terminated
3. ALL parentheses, brackets, and braces must be balanced
4. ALL indentation must be consistent (4 spaces)
5. NO markdown formatting, comments outside the code, or explanations
6. Include proper docstrings and meaningful implementations
7. Focus on practical, educational examples with proper error handling

Generate clean, professional Python code that students can learn from.`

const testSystemPrompt = `You are an expert Python programming instructor specializing in test generation.

CRITICAL REQUIREMENTS:
1. Generate ONLY valid, executable Python code with NO syntax errors
2. ALL strings must be properly quoted and terminated
3. ALL parentheses, brackets, and braces must be balanced
4. ALL indentation must be consistent (4 spaces)
5. NO markdown formatting, comments outside the code, or explanations
6. Verify all imports are correct and match actual file names
7. Double-check all method names match the actual code being tested

Focus on creating comprehensive, syntactically perfect pytest test cases.`

const proseSystemPrompt = `You are an expert educational content creator. Generate practical, engaging educational content focused on programming concepts. Use clear explanations and real-world examples.`

// systemPrompt returns the system prompt for a content type.
func systemPrompt(t Type) string {
	switch {
	case t.IsTest():
		return testSystemPrompt
	case t.IsCode():
		return codeSystemPrompt
	default:
		return proseSystemPrompt
	}
}

// brevityDirectives keep output inside the token budget without
// sacrificing the parts that matter for each type.
var brevityDirectives = map[Type]string{
	TypeStarterExample:  "Generate a concise code example with minimal comments. Focus on core functionality only.",
	TypeAssignmentA:     "Create a brief assignment with clear objectives. Keep instructions concise.",
	TypeAssignmentB:     "Generate a short, focused assignment. Avoid lengthy descriptions.",
	TypeTestStarter:     "Write minimal test cases covering key functionality only.",
	TypeTestAssignmentA: "Create essential test cases. Keep test names descriptive but brief.",
	TypeTestAssignmentB: "Generate focused test cases. Prioritize coverage over quantity.",
	TypeExtraExercises:  "List 3-5 concise exercises. Keep descriptions short and actionable.",
	TypeLearningPath:    "Create a structured learning guide. Be comprehensive but concise.",
}

// userPrompt builds the full user prompt for a request.
func userPrompt(req Request) string {
	directive, ok := brevityDirectives[req.Type]
	if !ok {
		directive = "Generate concise, focused content."
	}
	return directive + "\n\n" + promptBody(req)
}

// baseContext summarizes the topic and module for every prompt.
func baseContext(req Request) string {
	return fmt.Sprintf(`
Topic: %s
Difficulty: %s
Module: %s
Module Type: %s
Focus Areas: %s
Learning Objectives: %s
`,
		req.Topic.Name,
		req.Topic.Difficulty,
		req.Module.Name,
		req.Module.Type,
		strings.Join(req.Module.FocusAreas, ", "),
		strings.Join(req.Topic.LearningObjectives, ", "),
	)
}

// codeToTestBlock embeds the code a test file must exercise.
func codeToTestBlock(req Request) string {
	if req.CodeToTest == "" {
		return "CODE TO TEST:\nNo code provided\n\n"
	}
	return "CODE TO TEST:\n" + req.CodeToTest + "\n\n"
}

func promptBody(req Request) string {
	focus := strings.Join(req.Module.FocusAreas, ", ")
	ctx := baseContext(req)

	switch req.Type {
	case TypeLearningPath:
		return fmt.Sprintf(`Create a comprehensive learning path guide for %s.
%s
Generate a detailed markdown guide with COMPLETE content including:

## Learning Objectives
List 4-5 specific, measurable learning objectives for %s in %s

## Introduction
2-3 paragraph introduction explaining what %s is and why it's important

## Key Concepts
Detailed explanation of 3-4 key concepts students will learn, with
definitions and examples relevant to %s for %s level students.

## Step-by-Step Learning Path
Walk through the module files in this exact order:
1. Study starter_example.py and run it
2. Read test_starter_example.py and run the tests with pytest
3. Write tests in test_assignment_a.py for the code in assignment_a.py
4. Implement assignment_b.py to make test_assignment_b.py pass
5. Complete the exercises in extra_exercises.md

## Success Criteria
A checklist covering each of the five steps above.

Make it engaging and practical with real examples, not placeholders.`,
			req.Module.Name, ctx, focus, req.Topic.Name,
			req.Topic.Name, req.Topic.Name, req.Topic.Difficulty)

	case TypeStarterExample:
		return fmt.Sprintf(`Create a Python code example for this module.
%s
Generate ONLY executable Python code (no markdown formatting) with:
1. A complete Python class demonstrating %s
2. Clear docstrings explaining the purpose
3. Well-commented methods with practical examples
4. Appropriate complexity for %s level
5. Error handling where relevant
6. Example usage at the end

Return only valid Python code that can be executed directly.`,
			ctx, focus, req.Topic.Difficulty)

	case TypeAssignmentA:
		return fmt.Sprintf(`Create Python code that students will write tests for.
%s
Generate ONLY executable Python code (no markdown formatting) with:
1. A Python class demonstrating %s
2. Multiple methods of varying complexity for %s level
3. Clear docstrings with parameters and return values
4. Some edge cases and error conditions to test
5. Methods that require comprehensive testing

Return only valid Python code that students can write tests for.`,
			ctx, focus, req.Topic.Difficulty)

	case TypeAssignmentB:
		return fmt.Sprintf(`Create a Python class template with method signatures and docstrings.
%s
Generate ONLY executable Python code (no markdown formatting) with:
1. A Python class focused on %s
2. Method signatures only with 'pass' or 'raise NotImplementedError()'
3. Detailed docstrings explaining what each method should do
4. Parameter descriptions and return value specifications
5. Appropriate complexity for %s level

Students will implement these methods to make tests pass.
Return only valid Python code template.`,
			ctx, focus, req.Topic.Difficulty)

	case TypeExtraExercises:
		return fmt.Sprintf(`Create 3 specific practice exercises for %s focusing on %s.
%s
Generate a markdown document with COMPLETE, SPECIFIC exercises:

## Exercise 1: Basic Practice (beginner)
A specific coding challenge with exact requirements, example
input/output, a solution approach, and a starter code template.

## Exercise 2: Intermediate Challenge
A more complex problem with specific requirements, constraints,
and expected behavior.

## Exercise 3: Real-World Application (advanced)
A practical project applying %s to a real problem, with specific
requirements and deliverables.

NO placeholders - provide complete, actionable exercises.`,
			req.Module.Name, focus, ctx, req.Topic.Name)

	case TypeTestStarter:
		return testPrompt(req, "starter example", "starter_example")
	case TypeTestAssignmentA:
		return testPrompt(req, "assignment A", "assignment_a")
	case TypeTestAssignmentB:
		return testPrompt(req, "assignment B", "assignment_b")
	}

	return fmt.Sprintf("Generate %s content for %s", req.Type, req.Module.Name)
}

func testPrompt(req Request, label, importName string) string {
	return fmt.Sprintf(`Create comprehensive pytest test cases for the %s.
%s
%sGenerate ONLY executable Python test code (no markdown formatting) with:
1. Import statements: 'import pytest' and 'from %s import ClassName' (use the actual class name from the code above)
2. Test class that follows pytest conventions
3. Comprehensive test methods covering normal functionality, edge cases, error conditions, and method interactions
4. Clear, descriptive test method names
5. Docstrings explaining what each test verifies

CRITICAL SYNTAX REQUIREMENTS:
- ALL strings must be properly quoted with matching quotes
- ALL parentheses, brackets, and braces must be balanced
- ALL indentation must use 4 spaces consistently
- Import from the filename '%s', not from any module name

Analyze the actual code structure and create tests that match the real class names and methods.
Return only valid, syntax-error-free Python test code.`,
		label, baseContext(req), codeToTestBlock(req), importName, importName)
}
