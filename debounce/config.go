package debounce

import (
	"time"
)

type config struct {
	leading  bool
	trailing bool
	maxWait  time.Duration
}

func newConfig(wait time.Duration, opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}

	// If neither leading nor trailing is set, default to trailing.
	if !c.leading && !c.trailing {
		c.trailing = true
	}

	if c.maxWait <= wait {
		c.maxWait = 0
	}

	return c
}
