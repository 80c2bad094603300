// Package filter validates JSON value trees with composable predicates.
//
// A Filter checks one value and reports a precise, location-qualified reason
// on the first failure. Leaves check kinds (String, Boolean, Null, Number,
// Int, Float, the numeric ones with optional inclusive bounds); composites
// recurse (Array over elements, Object over declared keys, Options over
// ordered alternatives).
//
// # Basic Usage
//
//	f := filter.Object(map[string]filter.Entry{
//		"id":          filter.Key(filter.Int(filter.Min(0))),
//		"description": filter.OptionalKey(filter.String),
//	})
//
//	ok, reason := f.Check(value)
//	if !ok {
//		// reason e.g. "id: expected int, found '-1' of type int"
//	}
//
// # Value Vocabulary
//
// Filters operate on the tree shapes encoding/json produces: map[string]any,
// []any, string, bool, nil, and numbers. Decode with json.Decoder.UseNumber
// so the numeric kind checks can tell 5 from 5.0; native int, int64 and
// float64 values are understood as well for trees built in code. The body
// package decodes this way.
//
// Filters hold no per-call state, so one instance may serve unrelated
// validations concurrently.
package filter
