package rlm

import (
	"context"
	"strings"
	"testing"

	"github.com/atrislabs/rlm/models"
	"github.com/atrislabs/rlm/modes"
	"github.com/reusee/dscope"
)

func TestRunEndToEnd(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		run Run,
	) {
		script := &models.Script{
			Responses: []string{
				"Let me store the answer.\n" +
					"```repl\n" +
					"answer = \"Revenue is $45.2M\"\n" +
					"print(answer)\n" +
					"```\n",
				"FINAL_VAR(answer)",
			},
		}

		result, err := run(context.Background(), script, "Revenue: $45.2M", "What is revenue?")
		if err != nil {
			t.Fatal(err)
		}
		if !result.Answered {
			t.Fatal()
		}
		if result.Answer != "Revenue is $45.2M" {
			t.Fatalf("got %q", result.Answer)
		}
		if result.Iterations != 2 {
			t.Fatalf("got %d iterations", result.Iterations)
		}
		if len(result.Variables) != 1 || result.Variables[0] != "answer" {
			t.Fatalf("got %v", result.Variables)
		}
	})
}

func TestRunBudgetExhaustion(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(MaxIterations(3)),
	).Call(func(
		run Run,
	) {
		script := &models.Script{
			Responses: []string{"still thinking, no marker"},
		}

		result, err := run(context.Background(), script, "data", "query")
		if err != nil {
			t.Fatal(err)
		}
		if result.Answered {
			t.Fatal()
		}
		if result.Iterations != 3 {
			t.Fatalf("got %d iterations", result.Iterations)
		}
		if len(script.RootPrompts) != 3 {
			t.Fatalf("got %d prompts", len(script.RootPrompts))
		}
	})
}

func TestRunExternalization(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(MaxIterations(4)),
	).Call(func(
		run Run,
	) {
		const secret = "EXTREMELY-LARGE-CORPUS-CONTENT"
		script := &models.Script{
			Responses: []string{
				"```repl\nexcerpt = context[:4]\nprint(excerpt)\n```\n",
				"keep going",
			},
		}

		if _, err := run(context.Background(), script, secret, "what is in there?"); err != nil {
			t.Fatal(err)
		}

		for i, prompt := range script.RootPrompts {
			if strings.Contains(prompt, secret) {
				t.Fatalf("prompt %d leaks the stored data", i)
			}
		}
		first := script.RootPrompts[0]
		if !strings.Contains(first, "30 chars") {
			t.Fatalf("first prompt misses size metadata: %q", first)
		}
		if !strings.Contains(first, "what is in there?") {
			t.Fatalf("first prompt misses the query: %q", first)
		}
		// sandbox output may carry excerpts into later prompts, but only
		// what executed code chose to print
		if !strings.Contains(script.RootPrompts[1], "EXTR") {
			t.Fatalf("second prompt misses captured output: %q", script.RootPrompts[1])
		}
	})
}

func TestRunCounterMonotonicity(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(MaxIterations(3)),
	).Call(func(
		run Run,
	) {
		script := &models.Script{
			Responses: []string{
				"```repl\na = llm_query(\"chunk one\")\nb = llm_query(\"chunk two\")\n```\n",
				"no code this turn",
			},
			OnSub: func(string) string { return "ok" },
		}

		result, err := run(context.Background(), script, "data", "query")
		if err != nil {
			t.Fatal(err)
		}
		if result.SubCalls != 2 {
			t.Fatalf("got %d sub calls", result.SubCalls)
		}
		if result.RootTokens <= 0 || result.SubTokens <= 0 {
			t.Fatalf("got root=%d sub=%d", result.RootTokens, result.SubTokens)
		}
	})
}

func TestRunFaultKeepsIterating(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(MaxIterations(2)),
	).Call(func(
		run Run,
	) {
		script := &models.Script{
			Responses: []string{
				"```repl\nfail(\"broken block\")\n```\n",
				"second turn",
			},
		}

		result, err := run(context.Background(), script, "data", "query")
		if err != nil {
			t.Fatal(err)
		}
		if result.Iterations != 2 {
			t.Fatalf("got %d iterations", result.Iterations)
		}
		// the fault surfaced to the model as output text
		if !strings.Contains(script.RootPrompts[1], "Error:") {
			t.Fatalf("got %q", script.RootPrompts[1])
		}
	})
}

func TestRunEmptyResponse(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(MaxIterations(2)),
	).Call(func(
		run Run,
	) {
		script := &models.Script{
			Responses: []string{
				"```repl\nprint(\"some output\")\n```\n",
				"",
			},
		}

		result, err := run(context.Background(), script, "data", "query")
		if err != nil {
			t.Fatal(err)
		}
		if result.Iterations != 2 {
			t.Fatalf("got %d iterations", result.Iterations)
		}
	})
}
