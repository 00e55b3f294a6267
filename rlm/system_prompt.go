package rlm

import "fmt"

// The first prompt describes the sandbox and the data's size, never
// the data itself. No code path places the stored data into a root
// prompt; that externalization is the point of the whole design.
func initialPrompt(contextChars int, query string) string {
	return fmt.Sprintf("You have access to a sandboxed starlark environment with:\n"+
		"- context: a string variable (%d chars) holding the data\n"+
		"- llm_query(prompt): query a sub model, pass it small excerpts only\n"+
		"- find_all(pattern, text), match(pattern, text): regular expression helpers\n"+
		"- json.encode(x), json.decode(s): structured data helpers\n"+
		"- print(): emit results to be shown to you next turn\n"+
		"\n"+
		"Write code in ```repl fenced blocks to explore the context and answer: %s\n"+
		"\n"+
		"When ready, reply with FINAL(answer) or FINAL_VAR(variable_name).",
		contextChars, query)
}

func nextPrompt(lastOutput string, query string) string {
	return fmt.Sprintf("Previous output:\n"+
		"%s\n"+
		"\n"+
		"Continue exploring to answer: %s\n"+
		"Use FINAL(answer) or FINAL_VAR(variable_name) when ready.",
		lastOutput, query)
}
