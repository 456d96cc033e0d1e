package debounce

import (
	"time"
)

// Option configures a debounced function.
type Option func(*config)

// Leading returns an option that will cause the debounced function to invoke
// the callback immediately, and then ignore calls until the wait duration has
// passed since the last call.
//
// When only leading is used, a burst of calls immediately invokes the
// callback, any subsequent calls will be ignored until the wait duration has
// passed.
func Leading() Option {
	return func(c *config) {
		c.leading = true
	}
}

// Trailing returns an option that will cause the callback to be invoked after
// the wait duration has passed since the last call. This is the default.
//
// If both Leading and Trailing are used, a burst of calls immediately invokes
// the callback, followed by another invocation after the wait duration has
// passed since the last call. If only a single call is made, only one
// invocation will occur.
func Trailing() Option {
	return func(c *config) {
		c.trailing = true
	}
}

// MaxWait returns an option that will cause the callback to be invoked at least
// every maxWait duration, even if the debounced function is called repeatedly
// within the wait duration.
//
// Without a max wait, the callback might never be invoked if the debounced
// function keeps being called within the wait duration.
//
// A maxWait less than or equal to the wait duration is ignored.
func MaxWait(maxWait time.Duration) Option {
	return func(c *config) {
		c.maxWait = maxWait
	}
}
