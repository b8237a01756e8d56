package demo

import (
	"fmt"
	"io"

	"github.com/mmr-tortoise/nullsafe/internal/optional"
)

// PrintText writes a single line of text to w. This is the only way the
// demo touches its output stream; keeping it in one place makes the output
// contract (one line per call, newline-terminated) easy to verify.
func PrintText(w io.Writer, text string) {
	fmt.Fprintln(w, text)
}

// PrintIfPresent is the safe-print helper: it prints the value as its own
// line only when v is present. An absent value produces zero output and
// no fault — the safe-call counterpart to the forced unwrap in Run.
func PrintIfPresent(w io.Writer, v optional.Value[int]) {
	v.IfPresent(func(n int) {
		PrintText(w, fmt.Sprint(n))
	})
}
