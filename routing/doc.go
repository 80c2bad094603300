// Package routing dispatches HTTP requests through a rule-chain router.
//
// A Router evaluates an ordered list of rules, its matching dimensions. Each
// registered route carries one expected value per rule: a *Pattern for the
// path dimension, a method string, a content-type string or nil. Dispatch
// narrows the set of routes one dimension at a time; the first dimension that
// eliminates every candidate raises its error (404, 405 or 415), so error
// precedence follows the rule order the caller configured.
//
// # Basic Usage
//
//	router := routing.NewRouter([]routing.Rule{routing.Path, routing.Method, routing.ContentType}).
//		MustRouteFunc(create, routing.MustPattern("/create"), "POST", "json").
//		MustRouteFunc(options, routing.MustPattern("/", routing.Int, "/options"), "GET", nil)
//
//	http.ListenAndServe(":8080", router)
//
// # Path Patterns
//
// Patterns alternate literal substrings and converters. A converter parses
// the path text up to the next literal into a typed value:
//
//	routing.MustPattern("/id/", routing.Int, "/name/", routing.String)
//
// matches /id/42/name/joe and captures 42 and "joe". Handlers read the
// captured values from the request context:
//
//	args := routing.PathArgs(r.Context())
//	id := args[0].(int)
package routing
