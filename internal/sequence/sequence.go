// Package sequence implements a named, fixed-size ordered container of
// optional integers. Every slot starts absent; presence is tracked per slot
// and is independent of neighboring slots.
//
// The sequence name appears in dereference diagnostics so a fault reads like
// the access expression that caused it, e.g. "nullableInts[3]".
package sequence

import (
	"fmt"
	"iter"

	"github.com/mmr-tortoise/nullsafe/internal/optional"
)

// Sequence is a fixed-size ordered container of optional integers.
// The size is set at construction and never changes.
type Sequence struct {
	name  string
	slots []optional.Value[int]
}

// New creates a Sequence with the given name and size. All slots are absent.
// Size must be non-negative; callers validate size upstream (model.Scenario).
func New(name string, size int) *Sequence {
	return &Sequence{
		name: name,
		// The zero optional.Value is absent, so allocating the backing
		// slice is all the initialization a fresh sequence needs.
		slots: make([]optional.Value[int], size),
	}
}

// Name returns the sequence name used in output and fault diagnostics.
func (s *Sequence) Name() string {
	return s.name
}

// Len returns the number of slots.
func (s *Sequence) Len() int {
	return len(s.slots)
}

// At returns the optional value at index i. Callers index within [0, Len).
func (s *Sequence) At(i int) optional.Value[int] {
	return s.slots[i]
}

// Set stores v as a present value at index i.
func (s *Sequence) Set(i, v int) {
	s.slots[i] = optional.Of(v)
}

// Slots returns a lazy, single-pass iteration over the slots in index order.
// The iterator yields each slot's optional value exactly once.
func (s *Sequence) Slots() iter.Seq[optional.Value[int]] {
	return func(yield func(optional.Value[int]) bool) {
		for _, slot := range s.slots {
			if !yield(slot) {
				return
			}
		}
	}
}

// MustAt is the forced unwrap of slot i: it returns the slot's integer, or
// panics with a *optional.DerefError naming the access site when the slot
// is absent. It never substitutes a default.
func (s *Sequence) MustAt(i int) int {
	slot := s.slots[i]
	if !slot.Present() {
		panic(&optional.DerefError{
			Context: fmt.Sprintf("%s[%d]", s.name, i),
		})
	}
	return slot.MustGet()
}
