package content

import (
	"strings"
	"testing"
)

func TestUserPromptEmbedsCodeToTest(t *testing.T) {
	req := testRequest(TypeTestAssignmentA)
	req.CodeToTest = "class Foo:\n    pass\n"

	prompt := userPrompt(req)
	if !strings.Contains(prompt, "CODE TO TEST:\nclass Foo:") {
		t.Errorf("expected code-to-test block in prompt, got:\n%s", prompt)
	}
}

func TestUserPromptWithoutCodeToTest(t *testing.T) {
	prompt := userPrompt(testRequest(TypeTestAssignmentA))
	if !strings.Contains(prompt, "CODE TO TEST:\nNo code provided") {
		t.Errorf("expected explicit no-code marker in prompt, got:\n%s", prompt)
	}
}
