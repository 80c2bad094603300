package routing

import (
	"errors"
	"strconv"
	"strings"
)

// Converter parses one path segment into a typed value. It returns an error
// when the segment text is not valid input, which fails the whole match.
type Converter func(segment string) (any, error)

// Built-in converters.
var (
	// Int parses the segment as a base-10 integer.
	Int Converter = func(segment string) (any, error) {
		return strconv.Atoi(segment)
	}

	// Float parses the segment as a floating point number.
	Float Converter = func(segment string) (any, error) {
		return strconv.ParseFloat(segment, 64)
	}

	// String captures the segment verbatim. It never fails.
	String Converter = func(segment string) (any, error) {
		return segment, nil
	}
)

// segment is one element of a compiled pattern: either a literal or a
// converter, never both.
type segment struct {
	literal   string
	converter Converter
}

// Pattern is a compiled path pattern: an alternating sequence of literal
// substrings and converters. A pattern always starts with a literal (possibly
// empty) and never places two converters next to each other, since the
// boundary between them would be ambiguous.
//
// A converter's input runs up to the first occurrence of the following
// literal. A captured value whose own text contains that literal therefore
// splits at the earlier position; keep such literals out of capturable text.
type Pattern struct {
	segments []segment
}

// NewPattern compiles a pattern from literals (string) and Converters.
// Consecutive literals are merged. The first part must be a literal and two
// converters must not be adjacent.
func NewPattern(parts ...any) (*Pattern, error) {
	if len(parts) == 0 {
		return nil, errors.New("routing: pattern must not be empty")
	}

	var segments []segment
	for i, part := range parts {
		if lit, ok := part.(string); ok {
			if len(segments) > 0 && segments[len(segments)-1].converter == nil {
				segments[len(segments)-1].literal += lit
			} else {
				segments = append(segments, segment{literal: lit})
			}
			continue
		}

		var conv Converter
		switch p := part.(type) {
		case Converter:
			conv = p
		case func(string) (any, error):
			conv = p
		default:
			return nil, errors.New("routing: pattern parts must be strings or Converters")
		}

		if i == 0 {
			return nil, errors.New("routing: pattern must start with a literal")
		}
		if segments[len(segments)-1].converter != nil {
			return nil, errors.New("routing: pattern must not contain adjacent converters")
		}
		segments = append(segments, segment{converter: conv})
	}
	return &Pattern{segments: segments}, nil
}

// MustPattern is like NewPattern but panics on an invalid pattern. It is
// intended for patterns built at program start.
func MustPattern(parts ...any) *Pattern {
	p, err := NewPattern(parts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Match walks the pattern across path. Literals must appear as exact prefixes
// of the remaining path; each converter consumes the text up to the first
// occurrence of the next literal (or the full remainder if it is the last
// element) and must parse it successfully. The path must be consumed entirely.
// The captured values are returned in pattern order.
func (p *Pattern) Match(path string) ([]any, bool) {
	args := make([]any, 0, p.arity())

	for i, seg := range p.segments {
		if seg.converter == nil {
			if !strings.HasPrefix(path, seg.literal) {
				return nil, false
			}
			path = path[len(seg.literal):]
			continue
		}

		var input string
		if i+1 == len(p.segments) {
			input, path = path, ""
		} else {
			end := strings.Index(path, p.segments[i+1].literal)
			if end == -1 {
				return nil, false
			}
			input, path = path[:end], path[end:]
		}

		value, err := seg.converter(input)
		if err != nil {
			return nil, false
		}
		args = append(args, value)
	}

	if path != "" {
		return nil, false
	}
	return args, true
}

// arity returns the number of values the pattern captures.
func (p *Pattern) arity() int {
	n := 0
	for _, seg := range p.segments {
		if seg.converter != nil {
			n++
		}
	}
	return n
}

// skeleton renders the pattern's literals with a placeholder per converter.
// Two patterns with equal skeletons cover the same paths, converter parsing
// aside, so the router uses it to reject duplicate registrations.
func (p *Pattern) skeleton() string {
	var sb strings.Builder
	for _, seg := range p.segments {
		if seg.converter != nil {
			sb.WriteString("\x00*\x00")
		} else {
			sb.WriteString(seg.literal)
		}
	}
	return sb.String()
}
