package routing

import "context"

// pathArgsKey is the context key for captured path values.
type pathArgsKey struct{}

// WithPathArgs returns a new context carrying the values captured by path
// converters. The Router calls this before dispatching; handlers normally
// only read via PathArgs.
func WithPathArgs(ctx context.Context, args []any) context.Context {
	return context.WithValue(ctx, pathArgsKey{}, args)
}

// PathArgs returns the path values captured for this request, in pattern
// order. It returns nil when the request was not dispatched through a Router
// or the matched pattern captures nothing.
func PathArgs(ctx context.Context) []any {
	args, _ := ctx.Value(pathArgsKey{}).([]any)
	return args
}
