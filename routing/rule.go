package routing

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rpkak/webtools/httperr"
)

// Rule is one matching dimension evaluated by the Router. Each registered
// route carries one expected value per rule; Check reports whether the request
// satisfies that value and Err builds the error raised when no route survives
// this dimension.
//
// Rules are stateless and shared across concurrently handled requests; any
// per-request output (such as captured path values) is returned through
// Capturer rather than stored on the rule.
type Rule interface {
	Check(r *http.Request, value any) bool
	Err(value any) *httperr.Error
}

// Capturer is implemented by rules that extract request-scoped values on a
// successful match. The Router publishes captured values into the request
// context before dispatching.
type Capturer interface {
	Capture(r *http.Request, value any) ([]any, bool)
}

// valueChecker is implemented by rules that can validate a route's expected
// value at registration time.
type valueChecker interface {
	checkValue(value any) error
}

// Predeclared rule instances. All three variants are stateless, so the
// shared values are all a route table needs.
var (
	// Path matches the request path against a *Pattern and captures the
	// pattern's converted values. Failure class: 404.
	Path Rule = PathRule{}

	// Method matches the request method by exact, case-sensitive equality
	// against a string. Failure class: 405.
	Method Rule = MethodRule{}

	// ContentType matches the request's Content-Type header. Failure
	// class: 415.
	ContentType Rule = ContentTypeRule{}
)

// PathRule matches the request path against a compiled *Pattern.
type PathRule struct{}

// Check implements Rule. The expected value must be a *Pattern.
func (PathRule) Check(r *http.Request, value any) bool {
	_, ok := value.(*Pattern).Match(r.URL.Path)
	return ok
}

// Capture implements Capturer, returning the pattern's converted values.
func (PathRule) Capture(r *http.Request, value any) ([]any, bool) {
	return value.(*Pattern).Match(r.URL.Path)
}

// Err implements Rule.
func (PathRule) Err(any) *httperr.Error {
	return httperr.NewNotFound("Path not found")
}

func (PathRule) checkValue(value any) error {
	if _, ok := value.(*Pattern); !ok {
		return fmt.Errorf("routing: path rule needs a *Pattern, got %T", value)
	}
	return nil
}

// MethodRule matches the HTTP method by exact, case-sensitive string
// equality.
type MethodRule struct{}

// Check implements Rule. The expected value must be a string such as "GET".
func (MethodRule) Check(r *http.Request, value any) bool {
	return value.(string) == r.Method
}

// Err implements Rule.
func (MethodRule) Err(any) *httperr.Error {
	return httperr.NewMethodNotAllowed("")
}

func (MethodRule) checkValue(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("routing: method rule needs a string, got %T", value)
	}
	return nil
}

// ContentTypeRule matches the request's Content-Type header.
//
// The expected value is nil to require that the request declares no
// content-type (e.g. for GET routes). A string containing a slash must equal
// the header exactly. A bare token such as "json" matches when it appears
// among the +-delimited components after the slash, so "json" accepts both
// "application/json" and "application/vnd.api+json".
type ContentTypeRule struct{}

// Check implements Rule.
func (ContentTypeRule) Check(r *http.Request, value any) bool {
	contentType := r.Header.Get("Content-Type")
	if value == nil {
		return contentType == ""
	}
	if contentType == "" {
		return false
	}
	expected := value.(string)
	if strings.Contains(expected, "/") {
		return expected == contentType
	}
	return HasSubtypeToken(contentType, expected)
}

// Err implements Rule.
func (ContentTypeRule) Err(any) *httperr.Error {
	return httperr.NewUnsupportedMediaType("Unsupported Content-Type")
}

func (ContentTypeRule) checkValue(value any) error {
	if value == nil {
		return nil
	}
	if _, ok := value.(string); !ok {
		return fmt.Errorf("routing: content-type rule needs a string or nil, got %T", value)
	}
	return nil
}

// HasSubtypeToken reports whether token appears among the +-delimited
// components following the slash in contentType.
func HasSubtypeToken(contentType, token string) bool {
	_, subtype, found := strings.Cut(contentType, "/")
	if !found {
		return false
	}
	for _, part := range strings.Split(subtype, "+") {
		if part == token {
			return true
		}
	}
	return false
}
