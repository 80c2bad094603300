// Package body provides middleware that reads and decodes request bodies.
//
// The JSON middleware enforces the content-type contract (400 without a
// Content-Type, 415 without a json subtype token, 422 for undecodable input),
// reads at most the declared number of body bytes exactly once, and stores
// the raw bytes and decoded value in the request context for the handler.
// Combined with a filter it also rejects well-formed JSON of the wrong shape
// with a 400 naming the offending location:
//
//	parse := body.JSON(body.WithFilter(filter.Object(map[string]filter.Entry{
//		"id": filter.Key(filter.Int(filter.Min(0))),
//	})))
//
//	handler := parse(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		doc := body.Content(r.Context()).(map[string]any)
//		// doc passed the filter
//	}))
//
// The XML middleware applies the same taxonomy for xml content and stores
// the raw bytes only; handlers decode them with encoding/xml.
package body
