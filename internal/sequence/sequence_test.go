package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/nullsafe/internal/optional"
)

// TestNew_AllSlotsAbsent verifies the core construction invariant: a fresh
// sequence has every slot absent, regardless of index.
func TestNew_AllSlotsAbsent(t *testing.T) {
	seq := New("nullableInts", 5)

	require.Equal(t, 5, seq.Len())
	assert.Equal(t, "nullableInts", seq.Name())
	for i := 0; i < seq.Len(); i++ {
		assert.False(t, seq.At(i).Present(), "slot %d must start absent", i)
	}
}

// TestSet_IndependentPresence verifies presence is tracked per slot: setting
// one slot leaves its neighbors absent.
func TestSet_IndependentPresence(t *testing.T) {
	seq := New("nullableInts", 5)
	seq.Set(1, 10)

	v, ok := seq.At(1).Get()
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.False(t, seq.At(0).Present())
	assert.False(t, seq.At(2).Present())
}

// TestSlots_IterationOrder verifies the lazy iteration yields each slot
// exactly once, in index order.
func TestSlots_IterationOrder(t *testing.T) {
	seq := New("nullableInts", 3)
	seq.Set(2, 9)

	var rendered []string
	for slot := range seq.Slots() {
		rendered = append(rendered, slot.String())
	}

	assert.Equal(t, []string{"null", "null", "9"}, rendered)
}

// TestSlots_EarlyBreak verifies the iterator honors single-pass consumers
// that stop early.
func TestSlots_EarlyBreak(t *testing.T) {
	seq := New("nullableInts", 5)

	count := 0
	for range seq.Slots() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

// TestMustAt verifies the forced unwrap: present slots return their value,
// absent slots panic with a DerefError naming the access site.
func TestMustAt(t *testing.T) {
	t.Run("present slot returns value", func(t *testing.T) {
		seq := New("nullableInts", 5)
		seq.Set(3, 42)
		assert.Equal(t, 42, seq.MustAt(3))
	})

	t.Run("absent slot panics with contextual DerefError", func(t *testing.T) {
		seq := New("nullableInts", 5)

		defer func() {
			r := recover()
			require.NotNil(t, r, "MustAt on an absent slot must panic")
			derefErr, ok := r.(*optional.DerefError)
			require.True(t, ok, "panic payload must be *optional.DerefError, got %T", r)
			assert.Equal(t, "nullableInts[3]", derefErr.Context)
		}()
		seq.MustAt(3)
	})
}
