// Package demo implements the nullable-array demonstration: it builds a
// sequence of optional integers, prints every slot in index order (absent
// slots render as the literal "null"), then force-unwraps one slot's string
// representation. When that slot is absent the unwrap faults, and the
// scenario's fault mode decides whether the fault propagates to the caller
// or is caught and reported as a diagnostic line.
//
// All output goes through an injected io.Writer so tests can capture it.
package demo
