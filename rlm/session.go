package rlm

import "go.starlark.net/starlark"

// Session holds one run's execution state. Each run owns its session
// exclusively; nothing is shared across concurrent runs.
type Session struct {
	// ContextData is the externally stored data. It is injected into
	// the sandbox as the `context` binding and never placed in a
	// prompt; only its size is.
	ContextData string

	// Vars accumulates top-level bindings created by executed code
	// blocks. Keys are never removed within a run; re-assignment
	// overwrites the value.
	Vars starlark.StringDict

	// LastOutput is the captured output of the most recent block,
	// feeding the next prompt.
	LastOutput string

	SubCalls   int
	RootTokens int
	SubTokens  int
}

func NewSession(contextData string) *Session {
	return &Session{
		ContextData: contextData,
		Vars:        make(starlark.StringDict),
	}
}
