package main

import (
	"context"
	"strings"
	"testing"

	"github.com/atrislabs/rlm/modes"
	"github.com/atrislabs/rlm/rlm"
	"github.com/reusee/dscope"
)

func TestDemoRun(t *testing.T) {
	dscope.New(
		new(rlm.Module),
		modes.ForTest(t),
	).Call(func(
		run rlm.Run,
	) {
		result, err := run(
			context.Background(),
			new(demoModel),
			sampleDocuments,
			"What is the company's revenue and who is the CEO?",
		)
		if err != nil {
			t.Fatal(err)
		}
		if !result.Answered {
			t.Fatal()
		}
		if !strings.Contains(result.Answer, "$45.2M") {
			t.Fatalf("got %q", result.Answer)
		}
		if !strings.Contains(result.Answer, "Sarah Chen") {
			t.Fatalf("got %q", result.Answer)
		}
		if result.Iterations != 3 {
			t.Fatalf("got %d iterations", result.Iterations)
		}
		if result.SubCalls != 1 {
			t.Fatalf("got %d sub calls", result.SubCalls)
		}
	})
}

func TestSubResponse(t *testing.T) {
	if got := subResponse("what is the acquisition status"); !strings.Contains(got, "DataFlow") {
		t.Fatalf("got %q", got)
	}
	if got := subResponse("something else entirely"); !strings.Contains(got, "Analyzed excerpt") {
		t.Fatalf("got %q", got)
	}
}
