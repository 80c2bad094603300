package routing

import (
	"fmt"
	"net/http"

	"github.com/rpkak/webtools/httperr"
)

// Option configures a Router.
type Option func(*Router)

// WithRenderer sets the renderer used for routing errors. The default is
// compact JSON.
func WithRenderer(r httperr.Renderer) Option {
	return func(ro *Router) {
		ro.renderer = r
	}
}

type route struct {
	values  []any
	handler http.Handler
}

// Router dispatches requests by narrowing the registered routes through an
// ordered list of rules (its dimensions). The rule order decides error
// precedence: the first dimension that eliminates every remaining candidate
// raises its own error and later dimensions are never consulted.
//
// A Router is built once at program start and is immutable during request
// traffic; registering routes while serving is not supported.
type Router struct {
	rules    []Rule
	routes   []route
	renderer httperr.Renderer
}

// NewRouter creates a Router evaluating the given rules in order.
func NewRouter(rules []Rule, opts ...Option) *Router {
	ro := &Router{rules: rules}
	for _, opt := range opts {
		opt(ro)
	}
	return ro
}

// Route registers a handler with one expected value per rule, in rule order.
// It rejects arity mismatches, values a rule cannot use, and routes whose key
// tuple duplicates an already registered one.
func (ro *Router) Route(handler http.Handler, values ...any) error {
	if handler == nil {
		return fmt.Errorf("routing: nil handler")
	}
	if len(values) != len(ro.rules) {
		return fmt.Errorf("routing: route has %d values, router has %d rules", len(values), len(ro.rules))
	}
	for dim, rule := range ro.rules {
		if vc, ok := rule.(valueChecker); ok {
			if err := vc.checkValue(values[dim]); err != nil {
				return err
			}
		}
	}
	for _, existing := range ro.routes {
		if sameKey(existing.values, values) {
			return fmt.Errorf("routing: duplicate route %v", values)
		}
	}
	ro.routes = append(ro.routes, route{values: values, handler: handler})
	return nil
}

// RouteFunc registers a handler function; see Route.
func (ro *Router) RouteFunc(handler http.HandlerFunc, values ...any) error {
	return ro.Route(handler, values...)
}

// MustRoute is like Route but panics on error and returns the Router for
// chaining. It is intended for route tables built at program start.
func (ro *Router) MustRoute(handler http.Handler, values ...any) *Router {
	if err := ro.Route(handler, values...); err != nil {
		panic(err)
	}
	return ro
}

// MustRouteFunc is like RouteFunc but panics on error; see MustRoute.
func (ro *Router) MustRouteFunc(handler http.HandlerFunc, values ...any) *Router {
	return ro.MustRoute(handler, values...)
}

// Match narrows the route table against the request, one dimension at a time.
// It returns the selected handler and the values captured by capturing rules
// (notably path converters), or the failing dimension's error. When several
// routes survive every dimension the first registered one wins.
func (ro *Router) Match(r *http.Request) (http.Handler, []any, *httperr.Error) {
	if len(ro.routes) == 0 {
		return nil, nil, httperr.NewNotFound("Path not found")
	}

	candidates := make([]int, len(ro.routes))
	for i := range ro.routes {
		candidates[i] = i
	}

	for dim, rule := range ro.rules {
		remaining := candidates[:0]
		for _, i := range candidates {
			if rule.Check(r, ro.routes[i].values[dim]) {
				remaining = append(remaining, i)
			}
		}
		if len(remaining) == 0 {
			return nil, nil, rule.Err(ro.routes[0].values[dim])
		}
		candidates = remaining
	}

	winner := ro.routes[candidates[0]]

	var args []any
	for dim, rule := range ro.rules {
		if c, ok := rule.(Capturer); ok {
			captured, _ := c.Capture(r, winner.values[dim])
			args = append(args, captured...)
		}
	}
	return winner.handler, args, nil
}

// ServeHTTP implements http.Handler. Captured path values are published into
// the request context before the matched handler runs; routing failures are
// rendered through the configured renderer.
func (ro *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, args, err := ro.Match(r)
	if err != nil {
		httperr.Respond(w, err, ro.renderer)
		return
	}
	if len(args) > 0 {
		r = r.WithContext(WithPathArgs(r.Context(), args))
	}
	handler.ServeHTTP(w, r)
}

// sameKey reports whether two route key tuples are equal. Patterns compare by
// skeleton: equal literals with converters in the same positions cover the
// same paths, so registering both would make dispatch depend on registration
// order alone.
func sameKey(a, b []any) bool {
	for i := range a {
		pa, aok := a[i].(*Pattern)
		pb, bok := b[i].(*Pattern)
		if aok != bok {
			return false
		}
		if aok {
			if pa.skeleton() != pb.skeleton() {
				return false
			}
			continue
		}
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
