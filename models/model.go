package models

import "context"

// Model is the sole dependency on a reasoning capability. Responses
// are free text and must be parsed, never trusted as structured data.
type Model interface {
	Call(ctx context.Context, prompt string, isSubCall bool) (string, error)
}
