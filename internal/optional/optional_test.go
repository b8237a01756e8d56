package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Presence verifies the basic Present/Absent tagging, including
// that the zero Value is absent and that present zero values stay present.
func TestValue_Presence(t *testing.T) {
	assert.False(t, Empty[int]().Present())
	assert.False(t, Value[int]{}.Present()) // zero value is absent
	assert.True(t, Of(42).Present())
	assert.True(t, Of(0).Present()) // present zero is not absent
}

// TestValue_Get verifies the value + presence-flag accessor.
func TestValue_Get(t *testing.T) {
	v, ok := Of(7).Get()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = Empty[int]().Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v) // zero value when absent
}

// TestValue_MustGet verifies the forced unwrap: present values are returned,
// absent values panic with a *DerefError rather than yielding a default.
func TestValue_MustGet(t *testing.T) {
	assert.Equal(t, 7, Of(7).MustGet())

	defer func() {
		r := recover()
		require.NotNil(t, r, "MustGet on an absent value must panic")
		derefErr, ok := r.(*DerefError)
		require.True(t, ok, "panic payload must be *DerefError, got %T", r)
		assert.Contains(t, derefErr.Error(), "nil dereference")
	}()
	Empty[int]().MustGet()
}

// TestValue_IfPresent verifies the safe-call: the block runs exactly once
// for a present value and not at all for an absent one.
func TestValue_IfPresent(t *testing.T) {
	var calls []int
	Of(7).IfPresent(func(n int) { calls = append(calls, n) })
	Empty[int]().IfPresent(func(n int) { calls = append(calls, n) })
	assert.Equal(t, []int{7}, calls)
}

// TestValue_String verifies display rendering: absent values render as the
// literal "null", present values render their contents.
func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value Value[int]
		want  string
	}{
		{"absent renders null", Empty[int](), "null"},
		{"present renders value", Of(7), "7"},
		{"present zero renders 0, not null", Of(0), "0"},
		{"negative value", Of(-3), "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

// TestDerefError_Context verifies the diagnostic names the access site.
func TestDerefError_Context(t *testing.T) {
	err := &DerefError{Context: "nullableInts[3]"}
	assert.Equal(t, "nil dereference: nullableInts[3] is absent", err.Error())
}
