package body

import "context"

type rawContentKey struct{}
type contentKey struct{}

// WithRawContent returns a context carrying the raw body bytes.
func WithRawContent(ctx context.Context, raw []byte) context.Context {
	return context.WithValue(ctx, rawContentKey{}, raw)
}

// RawContent returns the raw body bytes a parser middleware read for this
// request, or nil when no parser ran. The body stream itself is consumed by
// the parser and must not be read again.
func RawContent(ctx context.Context) []byte {
	raw, _ := ctx.Value(rawContentKey{}).([]byte)
	return raw
}

// WithContent returns a context carrying the decoded body value.
func WithContent(ctx context.Context, value any) context.Context {
	return context.WithValue(ctx, contentKey{}, value)
}

// Content returns the decoded JSON value the JSON middleware stored for this
// request: map[string]any, []any, string, json.Number, bool or nil.
func Content(ctx context.Context) any {
	return ctx.Value(contentKey{})
}
