package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 3 * time.Second

// stopper is the part of *time.Timer the Notifier needs.
type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func timeAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithDuration sets how long toasts stay visible. Non-positive values are
// ignored.
func WithDuration(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.duration = d
		}
	}
}

// WithLogger sets the logger used for dropped toasts and lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Notifier) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithRateLimit drops toasts beyond limit per second, allowing bursts of up
// to burst toasts. Dropped toasts are logged at debug level.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(n *Notifier) {
		n.limiter = rate.NewLimiter(limit, max(1, burst))
	}
}

func withAfterFunc(f afterFunc) Option {
	return func(n *Notifier) {
		n.afterFunc = f
	}
}

// Notifier shows toasts on a Renderer and retracts them after a fixed
// duration. It is safe for concurrent use.
type Notifier struct {
	renderer  Renderer
	duration  time.Duration
	logger    *zap.Logger
	limiter   *rate.Limiter
	afterFunc afterFunc

	mux     sync.Mutex
	nextID  uint64
	pending map[uint64]pendingToast
	closed  bool
}

type pendingToast struct {
	timer   stopper
	retract func()
}

// New returns a Notifier that mounts toasts on r.
func New(r Renderer, opts ...Option) *Notifier {
	n := &Notifier{
		renderer:  r,
		duration:  DefaultDuration,
		logger:    zap.NewNop(),
		afterFunc: timeAfterFunc,
		pending:   make(map[uint64]pendingToast),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Notify shows message with the given severity. The toast is retracted
// automatically once the notifier's duration has passed.
func (n *Notifier) Notify(message string, severity Severity) {
	n.mux.Lock()
	defer n.mux.Unlock()

	if n.closed || n.renderer == nil {
		return
	}

	if n.limiter != nil && !n.limiter.Allow() {
		n.logger.Debug("toast dropped by rate limit",
			zap.Stringer("severity", severity),
			zap.String("message", message),
		)
		return
	}

	n.nextID++
	t := Toast{
		ID:       n.nextID,
		Message:  message,
		Severity: severity,
		Class:    severity.Class(),
		ShownAt:  time.Now(),
	}

	retract := n.renderer.Mount(t)
	if retract == nil {
		retract = func() {}
	}

	timer := n.afterFunc(n.duration, func() { n.expire(t.ID) })
	n.pending[t.ID] = pendingToast{timer: timer, retract: retract}
}

// Visible returns the number of toasts that have not been retracted yet.
func (n *Notifier) Visible() int {
	n.mux.Lock()
	defer n.mux.Unlock()

	return len(n.pending)
}

// Close retracts every visible toast and stops their timers. Notify calls
// after Close are ignored.
func (n *Notifier) Close() {
	n.mux.Lock()
	pending := n.pending
	n.pending = make(map[uint64]pendingToast)
	n.closed = true
	n.mux.Unlock()

	for _, p := range pending {
		p.timer.Stop()
		p.retract()
	}
}

func (n *Notifier) expire(id uint64) {
	n.mux.Lock()
	p, ok := n.pending[id]
	delete(n.pending, id)
	n.mux.Unlock()

	if ok {
		p.retract()
	}
}
