package rlm

import (
	"context"
	"strings"

	"github.com/atrislabs/rlm/logs"
	"github.com/atrislabs/rlm/models"
	starlarkjson "go.starlark.net/lib/json"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Execute runs one fenced code block in the session's sandbox and
// returns the captured output. New top-level bindings are merged into
// the session's variables; a fault is converted into output text and
// progress made before it is kept.
type Execute func(ctx context.Context, model models.Model, session *Session, code string) string

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// bindings re-established on every block; never harvested back into
// the session's variables
var systemBindings = map[string]bool{
	"context":   true,
	"llm_query": true,
	"json":      true,
	"find_all":  true,
	"match":     true,
}

func (Module) Execute(
	estimate EstimateTokens,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, model models.Model, session *Session, code string) string {
		var buf strings.Builder

		predeclared := make(starlark.StringDict, len(session.Vars)+len(systemBindings))
		for name, value := range session.Vars {
			predeclared[name] = value
		}
		// injected bindings win over accumulated variables
		predeclared["context"] = starlark.String(session.ContextData)
		predeclared["json"] = starlarkjson.Module
		predeclared["find_all"] = starlark.NewBuiltin("find_all", findAll)
		predeclared["match"] = starlark.NewBuiltin("match", match)
		predeclared["llm_query"] = toStarlarkValue(func(prompt string) string {
			session.SubCalls++
			session.SubTokens += estimate(prompt) + subCallOverhead
			logger.DebugContext(ctx, "sub model call",
				"n", session.SubCalls,
				"prompt_chars", len(prompt),
			)
			response, err := model.Call(ctx, prompt, true)
			if err != nil {
				// degrade into text the root model can see
				return "sub model error: " + err.Error()
			}
			return response
		})

		thread := &starlark.Thread{
			Name: "sandbox",
			Print: func(_ *starlark.Thread, msg string) {
				buf.WriteString(msg)
				buf.WriteByte('\n')
			},
		}

		globals, err := starlark.ExecFileOptions(fileOptions, thread, "block.star", code, predeclared)

		// merge whatever completed before a fault, keys are never removed
		for name, value := range globals {
			if systemBindings[name] {
				continue
			}
			session.Vars[name] = value
		}

		if err != nil {
			buf.WriteString("Error: ")
			buf.WriteString(err.Error())
			buf.WriteByte('\n')
		}

		session.LastOutput = buf.String()
		return session.LastOutput
	}
}
