package filter

import (
	"fmt"
	"sort"
	"strings"
)

type arrayFilter struct {
	elem Filter
}

// Array accepts JSON arrays whose every element passes elem. Validation stops
// at the first failing element; its index qualifies the reason.
func Array(elem Filter) Filter {
	return &arrayFilter{elem: elem}
}

// Check implements Filter.
func (f *arrayFilter) Check(value any) (bool, string) {
	list, ok := value.([]any)
	if !ok {
		return false, typeReason("array", value)
	}
	for i, element := range list {
		if ok, reason := f.elem.Check(element); !ok {
			return false, fmt.Sprintf("%d: %s", i, reason)
		}
	}
	return true, ""
}

// Entry declares one object key: the filter its value must pass and whether
// the key may be absent.
type Entry struct {
	Filter   Filter
	Optional bool
}

// Key declares a required object key.
func Key(f Filter) Entry {
	return Entry{Filter: f}
}

// OptionalKey declares an object key that may be absent.
func OptionalKey(f Filter) Entry {
	return Entry{Filter: f, Optional: true}
}

// ObjectOption configures an object filter.
type ObjectOption func(*objectFilter)

// AllowExtra makes the object filter accept keys beyond the declared ones.
// By default an undeclared key fails validation.
func AllowExtra() ObjectOption {
	return func(f *objectFilter) {
		f.allowExtra = true
	}
}

type objectFilter struct {
	entries    map[string]Entry
	keys       []string // declared keys, sorted for deterministic reporting
	allowExtra bool
}

// Object accepts JSON objects whose declared keys pass their entry filters.
// A missing required key fails; a failing key's reason is qualified with the
// key name; an undeclared key fails unless AllowExtra is set. Declared keys
// are checked in lexical order so the reported failure is deterministic.
func Object(entries map[string]Entry, opts ...ObjectOption) Filter {
	f := &objectFilter{
		entries: make(map[string]Entry, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}
	for key, entry := range entries {
		f.entries[key] = entry
		f.keys = append(f.keys, key)
	}
	sort.Strings(f.keys)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Check implements Filter.
func (f *objectFilter) Check(value any) (bool, string) {
	obj, ok := value.(map[string]any)
	if !ok {
		return false, typeReason("object", value)
	}

	consumed := 0
	for _, key := range f.keys {
		entry := f.entries[key]
		child, present := obj[key]
		if !present {
			if entry.Optional {
				continue
			}
			return false, fmt.Sprintf("entry with key '%s' required", key)
		}
		if ok, reason := entry.Filter.Check(child); !ok {
			return false, fmt.Sprintf("%s: %s", key, reason)
		}
		consumed++
	}

	if f.allowExtra || consumed == len(obj) {
		return true, ""
	}

	extra := make([]string, 0, len(obj)-consumed)
	for key := range obj {
		if _, declared := f.entries[key]; !declared {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return false, fmt.Sprintf("unsupported key '%s'", extra[0])
}

type optionsFilter struct {
	alternatives []Filter
}

// Options accepts a value that passes any one of the alternatives, tried in
// declared order with the first success short-circuiting. When none accept,
// the alternatives' reasons are joined into one aggregated reason.
func Options(alternatives ...Filter) Filter {
	return &optionsFilter{alternatives: alternatives}
}

// Check implements Filter.
func (f *optionsFilter) Check(value any) (bool, string) {
	reasons := make([]string, 0, len(f.alternatives))
	for _, alt := range f.alternatives {
		ok, reason := alt.Check(value)
		if ok {
			return true, ""
		}
		reasons = append(reasons, reason)
	}
	return false, fmt.Sprintf("value not allowed (%s)", strings.Join(reasons, " or "))
}
