package rlm

// Result summarizes a finished run.
type Result struct {
	Answer     string
	Answered   bool
	Iterations int
	SubCalls   int
	RootTokens int
	SubTokens  int
	Variables  []string
}
