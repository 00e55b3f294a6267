package logs

// Span identifies one logical unit of work, carried in a context and
// stamped on every log record emitted under it.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
