// Package optional implements a tagged optional value: Present(value) or
// Absent. It exists so that "no value" is an explicit state rather than a
// zero value — an absent integer slot is never 0.
package optional

import "fmt"

// DerefError reports a forced unwrap of an absent value. It is the only
// failure kind in this package: every other operation either returns a
// presence flag or silently no-ops when the value is absent.
type DerefError struct {
	// Context names the access site, e.g. "nullableInts[3]".
	Context string
}

// Error satisfies the error interface.
func (e *DerefError) Error() string {
	return fmt.Sprintf("nil dereference: %s is absent", e.Context)
}

// Value holds either a value of type T or nothing. The zero Value is absent,
// so a freshly allocated slice of Values starts with every element absent.
type Value[T any] struct {
	val     T
	present bool
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{val: v, present: true}
}

// Empty returns an absent Value.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// Present reports whether the Value holds something.
func (v Value[T]) Present() bool {
	return v.present
}

// Get returns the held value and a presence flag. When the Value is absent,
// the returned T is the type's zero value and must not be used.
func (v Value[T]) Get() (T, bool) {
	return v.val, v.present
}

// MustGet is the forced unwrap: it returns the held value, or panics with a
// *DerefError when the Value is absent. It never substitutes a default.
//
// Callers that know the access site should prefer an unwrap that names it
// (see sequence.MustAt) so the fault diagnostic identifies the slot.
func (v Value[T]) MustGet() T {
	if !v.present {
		panic(&DerefError{Context: "optional value"})
	}
	return v.val
}

// IfPresent is the safe-call: it runs fn with the held value only when the
// Value is present. An absent Value is a no-op — no fault, no output.
func (v Value[T]) IfPresent(fn func(T)) {
	if v.present {
		fn(v.val)
	}
}

// String renders the Value for display: the literal "null" when absent,
// otherwise the held value formatted with fmt.Sprint. This satisfies
// fmt.Stringer so Values print naturally in CLI output.
func (v Value[T]) String() string {
	if !v.present {
		return "null"
	}
	return fmt.Sprint(v.val)
}
