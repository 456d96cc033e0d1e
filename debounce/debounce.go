// Package debounce provides functions to debounce function calls, i.e., to
// ensure that a function is only executed after a certain amount of time has
// passed since the last call.
//
// Debouncing is useful where calls are triggered rapidly, such as keystrokes
// in a search box, but the underlying operation only needs to run once per
// burst. Arguments follow last-write-wins semantics: the callback receives the
// argument of the final call in a burst, earlier ones are discarded.
package debounce

import (
	"time"
)

// New returns a debounced function that delays invoking f until after wait
// time has elapsed since the last time the debounced function was called. f
// receives the argument of that last call.
//
// The returned cancel function can be used to cancel any pending invocation of
// f, but is not required to be called, so can be ignored if not needed.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
//
// The debounced function does not wait for f to complete and returns nothing
// from it. f runs in its own goroutine, so it needs to be thread-safe, and a
// panic in f is not recovered.
func New[T any](
	wait time.Duration,
	f func(T),
	opts ...Option,
) (debounced func(T), cancel func()) {
	d := NewDebouncer(wait, f, opts...)

	return d.Debounce, d.Reset
}

// NewFunc is like New for callbacks that take no argument.
func NewFunc(
	wait time.Duration,
	f func(),
	opts ...Option,
) (debounced func(), cancel func()) {
	d := NewDebouncer(wait, func(struct{}) { f() }, opts...)

	return func() { d.Debounce(struct{}{}) }, d.Reset
}
