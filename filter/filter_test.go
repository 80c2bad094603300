package filter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode parses raw as the body package would: numbers stay json.Number.
func decode(t *testing.T, raw string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestLeafFilters(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		ok, reason := String.Check("hello")
		assert.True(t, ok)
		assert.Empty(t, reason)

		ok, reason = String.Check(true)
		assert.False(t, ok)
		assert.Equal(t, "expected string, found 'true' of type boolean", reason)
	})

	t.Run("Boolean", func(t *testing.T) {
		ok, _ := Boolean.Check(false)
		assert.True(t, ok)

		ok, reason := Boolean.Check("true")
		assert.False(t, ok)
		assert.Contains(t, reason, "expected boolean")
	})

	t.Run("Null", func(t *testing.T) {
		ok, _ := Null.Check(nil)
		assert.True(t, ok)

		ok, reason := Null.Check(0)
		assert.False(t, ok)
		assert.Contains(t, reason, "expected null")
	})
}

func TestNumericFilters(t *testing.T) {
	t.Run("Number accepts both kinds", func(t *testing.T) {
		ok, _ := Number().Check(json.Number("5"))
		assert.True(t, ok)
		ok, _ = Number().Check(json.Number("5.5"))
		assert.True(t, ok)

		ok, reason := Number().Check("5")
		assert.False(t, ok)
		assert.Contains(t, reason, "expected number")
	})

	t.Run("Int rejects float literals", func(t *testing.T) {
		ok, _ := Int().Check(json.Number("5"))
		assert.True(t, ok)

		ok, reason := Int().Check(json.Number("5.0"))
		assert.False(t, ok)
		assert.Equal(t, "expected int, found '5.0' of type float", reason)
	})

	t.Run("Float rejects int literals", func(t *testing.T) {
		ok, _ := Float().Check(json.Number("5.0"))
		assert.True(t, ok)

		ok, reason := Float().Check(json.Number("5"))
		assert.False(t, ok)
		assert.Contains(t, reason, "expected float")
	})

	t.Run("native Go numbers", func(t *testing.T) {
		ok, _ := Int().Check(42)
		assert.True(t, ok)
		ok, _ = Float().Check(2.5)
		assert.True(t, ok)
		ok, _ = Int().Check(2.5)
		assert.False(t, ok)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		f := Int(Min(0), Max(10))

		ok, _ := f.Check(0)
		assert.True(t, ok)
		ok, _ = f.Check(10)
		assert.True(t, ok)

		ok, reason := f.Check(-1)
		assert.False(t, ok)
		assert.Contains(t, reason, "bigger than 0")

		ok, reason = f.Check(11)
		assert.False(t, ok)
		assert.Contains(t, reason, "smaller than 10")
	})
}

func TestPurity(t *testing.T) {
	// The same filter instance must give identical verdicts no matter how
	// many validations ran before or run concurrently.
	f := Object(map[string]Entry{
		"id": Key(Int(Min(0))),
	})
	value := decode(t, `{"id": -3}`)

	ok1, reason1 := f.Check(value)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				ok, reason := f.Check(value)
				if ok != ok1 || reason != reason1 {
					t.Errorf("verdict changed: (%v, %q) != (%v, %q)", ok, reason, ok1, reason1)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	ok2, reason2 := f.Check(value)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, reason1, reason2)
}
