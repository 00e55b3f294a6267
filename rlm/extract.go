package rlm

import "regexp"

var codeBlockPattern = regexp.MustCompile("(?s)```repl\n(.*?)```")

// ExtractCodeBlocks returns all ```repl fenced blocks in order of
// appearance. No blocks is not an error; it means the response carries
// no executable instructions this turn.
func ExtractCodeBlocks(response string) []string {
	var blocks []string
	for _, match := range codeBlockPattern.FindAllStringSubmatch(response, -1) {
		blocks = append(blocks, match[1])
	}
	return blocks
}
