package models

import (
	"context"
	"sync"
)

// Script is a deterministic Model for tests and demos. Root calls
// consume Responses in order, repeating the last one when exhausted.
// Sub calls are answered by OnSub. All prompts are recorded.
type Script struct {
	Responses []string
	OnSub     func(prompt string) string

	mu          sync.Mutex
	next        int
	RootPrompts []string
	SubPrompts  []string
}

var _ Model = new(Script)

func (s *Script) Call(_ context.Context, prompt string, isSubCall bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isSubCall {
		s.SubPrompts = append(s.SubPrompts, prompt)
		if s.OnSub != nil {
			return s.OnSub(prompt), nil
		}
		return "", nil
	}

	s.RootPrompts = append(s.RootPrompts, prompt)
	if len(s.Responses) == 0 {
		return "", nil
	}
	i := min(s.next, len(s.Responses)-1)
	s.next++
	return s.Responses[i], nil
}
