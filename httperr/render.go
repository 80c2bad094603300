package httperr

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
)

// Renderer turns an *Error into a wire response. Renderers must set the
// Content-Type header, write the status code, and write the body.
type Renderer interface {
	Render(w http.ResponseWriter, e *Error)
}

// Respond writes an error response using the given renderer. The error's
// extra headers are applied first, then the renderer writes status and body.
// A nil renderer falls back to compact JSON.
func Respond(w http.ResponseWriter, e *Error, r Renderer) {
	for key, values := range e.Headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	if r == nil {
		r = JSONRenderer{}
	}
	r.Render(w, e)
}

// JSONRenderer renders errors as a JSON document of the form
//
//	{"code": 404, "error": "Not Found", "message": "Path not found"}
//
// The message key is omitted when the error carries no message. With Friendly
// set the output is indented for human consumption.
type JSONRenderer struct {
	Friendly bool
}

// Render implements Renderer.
func (r JSONRenderer) Render(w http.ResponseWriter, e *Error) {
	body := map[string]any{
		"code":  e.Code,
		"error": http.StatusText(e.Code),
	}
	if e.Message != "" {
		body["message"] = e.Message
	}

	var raw []byte
	if r.Friendly {
		raw, _ = json.MarshalIndent(body, "", "    ")
	} else {
		raw, _ = json.Marshal(body)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Code)
	_, _ = w.Write(raw)
}

// HTMLRenderer renders errors as a minimal HTML page naming the status line
// and, if present, the message.
type HTMLRenderer struct{}

// Render implements Renderer.
func (HTMLRenderer) Render(w http.ResponseWriter, e *Error) {
	status := html.EscapeString(e.StatusLine())
	var detail string
	if e.Message != "" {
		detail = fmt.Sprintf("<p>%s</p>", html.EscapeString(e.Message))
	}
	body := fmt.Sprintf("<html><head><title>%s</title></head><body><h1>%s</h1>%s</body></html>",
		status, status, detail)

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(e.Code)
	_, _ = w.Write([]byte(body))
}
