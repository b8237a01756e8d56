package demo

import (
	"io"
	"strconv"

	"github.com/mmr-tortoise/nullsafe/internal/model"
	"github.com/mmr-tortoise/nullsafe/internal/optional"
	"github.com/mmr-tortoise/nullsafe/internal/sequence"
)

// Build constructs the scenario's sequence: all slots absent, then any
// preset values applied. Exposed separately from Run so the render command
// can display a sequence without triggering the forced unwrap.
func Build(sc *model.Scenario) *sequence.Sequence {
	seq := sequence.New(sc.Name, sc.Size)
	for idx, val := range sc.Values {
		seq.Set(idx, val)
	}
	return seq
}

// Run executes the demonstration against w.
//
// Step 1: construct the sequence (all slots absent, presets applied).
// Step 2: iterate the slots lazily in index order, printing each one —
// the literal "null" for absent slots, the integer for present ones.
// Step 3: force-unwrap the fault slot into its string representation and
// print it. When that slot is absent the unwrap faults, and the scenario's
// fault mode decides the outcome:
//
//   - FaultPropagate: Run returns the *optional.DerefError; nothing is
//     written after the slot lines. The caller maps this to a non-zero exit.
//   - FaultCatch: Run prints a diagnostic line in the form
//     "NullPointerException ao acessar <name>[<index>]" and returns nil.
//
// When the fault slot is present (a preset filled it), step 3 simply prints
// its value and Run returns nil in either mode.
func Run(w io.Writer, sc *model.Scenario) (err error) {
	seq := Build(sc)

	for slot := range seq.Slots() {
		PrintText(w, slot.String())
	}

	// The forced unwrap below panics with *optional.DerefError when the
	// fault slot is absent. Recovering here keeps the fault at the demo
	// boundary: anything else that panics is a bug and is re-raised.
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		derefErr, ok := r.(*optional.DerefError)
		if !ok {
			panic(r)
		}
		if sc.OnFault == model.FaultCatch {
			PrintText(w, "NullPointerException ao acessar "+derefErr.Context)
			return
		}
		err = derefErr
	}()

	text := strconv.Itoa(seq.MustAt(sc.FaultIndex))
	PrintText(w, text)
	return nil
}
