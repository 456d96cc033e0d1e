package debounce

import (
	"sync"
	"time"
)

// Debouncer holds the configuration and state of a single debounced
// callback. The zero value is not usable, create one with NewDebouncer.
type Debouncer[T any] struct {
	// Configuration
	wait time.Duration
	conf config

	// State
	mux        sync.Mutex
	fn         func(T)
	arg        T
	dirty      bool
	lastCall   time.Time
	lastInvoke time.Time
	timer      *time.Timer
	maxTimer   *time.Timer
}

// NewDebouncer creates a new Debouncer with the given wait duration, callback
// and options.
func NewDebouncer[T any](
	wait time.Duration,
	f func(T),
	opts ...Option,
) *Debouncer[T] {
	d := &Debouncer[T]{
		wait: wait,
		conf: newConfig(wait, opts),
		fn:   f,
	}

	d.timer = stoppedTimer(d.callback)
	d.maxTimer = stoppedTimer(d.callback)

	return d
}

// Debounce records arg as the argument of the next invocation and schedules
// the callback according to the configured options. This method is safe for
// concurrent use.
func (d *Debouncer[T]) Debounce(arg T) {
	d.DebounceWith(arg, nil)
}

// DebounceWith is like Debounce, but also replaces the callback. On repeated
// calls within a wait window, the last passed callback and argument win.
//
// If f is nil, the callback is not modified from its current value.
func (d *Debouncer[T]) DebounceWith(arg T, f func(T)) {
	d.mux.Lock()
	defer d.mux.Unlock()

	if f != nil {
		d.fn = f
	}
	d.arg = arg

	now := time.Now()
	defer func() { d.lastCall = now }()

	if d.wait <= 0 {
		d.invoke(now)
		return
	}

	if d.conf.leading && d.leadingEdge(now) {
		d.invoke(now)
		return
	}

	if !d.conf.trailing && d.conf.maxWait == 0 {
		return
	}

	if d.conf.trailing {
		d.timer.Reset(d.wait)
	}
	if d.conf.maxWait > 0 && !d.dirty {
		d.maxTimer.Reset(d.conf.maxWait)
	}
	d.dirty = true
}

// Pending reports whether an invocation is currently scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mux.Lock()
	defer d.mux.Unlock()

	return d.dirty
}

// Reset resets the debouncer, discarding any pending invocation.
// This method is safe for concurrent use.
func (d *Debouncer[T]) Reset() {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.lastCall = time.Time{}
	d.lastInvoke = time.Time{}
	d.clear()
}

// leadingEdge reports whether a call at now starts a new burst. It should only
// be called while the mutex is already locked.
func (d *Debouncer[T]) leadingEdge(now time.Time) bool {
	elapsed := now.Sub(d.lastCall)
	elapsedInvoke := now.Sub(d.lastInvoke)

	return d.lastCall.IsZero() ||
		elapsed < 0 ||
		elapsedInvoke < 0 ||
		(elapsed >= d.wait && elapsedInvoke >= d.wait)
}

// callback is called when timer or maxTimer expires.
func (d *Debouncer[T]) callback() {
	d.mux.Lock()
	defer d.mux.Unlock()

	if !d.dirty {
		return
	}

	d.invoke(time.Now())
	d.clear()
}

// clear stops and clears any pending invocation, without resetting last call
// and invocation times. It should only be called while the mutex is already
// locked.
func (d *Debouncer[T]) clear() {
	var zero T

	d.dirty = false
	d.arg = zero
	d.maxTimer.Stop()
	d.timer.Stop()
}

// invoke runs the callback with the current argument in its own goroutine and
// updates the last invoke time. It should only be called while the mutex is
// already locked.
//
// A panic in the callback is not recovered.
func (d *Debouncer[T]) invoke(now time.Time) {
	if f := d.fn; f != nil {
		d.lastInvoke = now
		go f(d.arg)
	}
}
