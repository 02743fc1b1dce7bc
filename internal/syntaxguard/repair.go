package syntaxguard

import "strings"

// Repair applies best-effort fixes for the syntax mistakes generated
// Python most commonly contains: hyphens inside class definition lines
// and docstrings that open but never close. Repair is idempotent;
// running it on already-repaired source returns it unchanged.
func Repair(code string) string {
	lines := strings.Split(code, "\n")

	for i, line := range lines {
		// Hyphens are invalid in identifiers. On class definition lines
		// they almost always come from a hyphenated topic name.
		if strings.HasPrefix(strings.TrimSpace(line), "class ") && strings.Contains(line, "-") {
			lines[i] = strings.ReplaceAll(line, "-", "")
		}
	}

	fixed := strings.Join(lines, "\n")

	// An odd number of triple quotes leaves the tail of the file inside
	// a string. Closing at the end keeps the count-based check stable,
	// so a second Repair pass is a no-op.
	if strings.Count(fixed, `"""`)%2 == 1 {
		if !strings.HasSuffix(fixed, "\n") {
			fixed += "\n"
		}
		fixed += "\"\"\"\n"
	}

	return fixed
}
