package debounce

import (
	"time"
)

// NewMutable returns a debounced function like NewFunc, but it allows the
// callback to be changed, as a new callback is passed to each call of the
// debounced function.
//
// Only the very last f passed to the debounced function is called when the
// delay expires. Previous f values are discarded.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
func NewMutable(
	wait time.Duration,
	opts ...Option,
) (debounced func(f func()), cancel func()) {
	d := NewDebouncer(wait, func(f func()) {
		if f != nil {
			f()
		}
	}, opts...)

	return d.Debounce, d.Reset
}
