package rlm

import (
	"fmt"
	"regexp"

	"go.starlark.net/starlark"
)

var (
	finalPattern    = regexp.MustCompile(`(?s)FINAL\((.*?)\)`)
	finalVarPattern = regexp.MustCompile(`FINAL_VAR\((\w+)\)`)
)

// CheckFinal looks for a termination marker. FINAL(text) returns the
// wrapped text verbatim; FINAL_VAR(name) resolves name against the
// session's variables, degrading to a placeholder when the name is
// undefined. When a response contains both forms, the literal FINAL
// wins; the tie-break is fixed and tested. The marker grammar does not
// support escaping parentheses inside a FINAL payload.
func CheckFinal(response string, session *Session) (string, bool) {
	if match := finalPattern.FindStringSubmatch(response); match != nil {
		return match[1], true
	}

	if match := finalVarPattern.FindStringSubmatch(response); match != nil {
		name := match[1]
		value, ok := session.Vars[name]
		if !ok {
			return fmt.Sprintf("[variable %s not found]", name), true
		}
		return stringify(value), true
	}

	return "", false
}

func stringify(value starlark.Value) string {
	if s, ok := starlark.AsString(value); ok {
		return s
	}
	return value.String()
}
