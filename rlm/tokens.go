package rlm

import "strings"

// rough per-call overheads, added on top of the word count
const (
	rootCallOverhead = 100
	subCallOverhead  = 50
)

type EstimateTokens func(text string) int

func (Module) EstimateTokens() EstimateTokens {
	return func(text string) int {
		return len(strings.Fields(text))
	}
}
