package rlm

import "testing"

func TestExtractCodeBlocks(t *testing.T) {
	response := "I'll explore the context.\n" +
		"```repl\n" +
		"print(len(context))\n" +
		"```\n" +
		"then dig into sections:\n" +
		"```repl\n" +
		"docs = context.split(\"===\")\n" +
		"print(len(docs))\n" +
		"```\n"

	blocks := ExtractCodeBlocks(response)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	if blocks[0] != "print(len(context))\n" {
		t.Fatalf("got %q", blocks[0])
	}
	if blocks[1] != "docs = context.split(\"===\")\nprint(len(docs))\n" {
		t.Fatalf("got %q", blocks[1])
	}
}

func TestExtractNoBlocks(t *testing.T) {
	if blocks := ExtractCodeBlocks("just prose, nothing to run"); len(blocks) != 0 {
		t.Fatalf("got %v", blocks)
	}
	// a plain fence without the repl marker is not executable
	if blocks := ExtractCodeBlocks("```\nx = 1\n```"); len(blocks) != 0 {
		t.Fatalf("got %v", blocks)
	}
}

func TestExtractMultiLine(t *testing.T) {
	response := "```repl\n" +
		"total = 0\n" +
		"for line in context.splitlines():\n" +
		"    total += 1\n" +
		"print(total)\n" +
		"```"
	blocks := ExtractCodeBlocks(response)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	if blocks[0] != "total = 0\nfor line in context.splitlines():\n    total += 1\nprint(total)\n" {
		t.Fatalf("got %q", blocks[0])
	}
}
