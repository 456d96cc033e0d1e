package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Toast is a single message shown by a Notifier.
type Toast struct {
	ID       uint64
	Message  string
	Severity Severity
	Class    string
	ShownAt  time.Time
}

// Renderer makes toasts visible. Mount shows t and returns a function that
// retracts it. Notifier calls retract exactly once.
type Renderer interface {
	Mount(t Toast) (retract func())
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(t Toast) (retract func())

func (f RendererFunc) Mount(t Toast) func() {
	return f(t)
}

// Board is an in-memory Renderer holding the currently visible toasts in
// mount order.
type Board struct {
	mux    sync.Mutex
	toasts []Toast
}

// NewBoard returns an empty Board.
func NewBoard() *Board {
	return &Board{}
}

func (b *Board) Mount(t Toast) func() {
	b.mux.Lock()
	defer b.mux.Unlock()

	b.toasts = append(b.toasts, t)

	return func() { b.remove(t.ID) }
}

// Visible returns a copy of the visible toasts, oldest first.
func (b *Board) Visible() []Toast {
	b.mux.Lock()
	defer b.mux.Unlock()

	out := make([]Toast, len(b.toasts))
	copy(out, b.toasts)

	return out
}

// Len returns the number of visible toasts.
func (b *Board) Len() int {
	b.mux.Lock()
	defer b.mux.Unlock()

	return len(b.toasts)
}

func (b *Board) remove(id uint64) {
	b.mux.Lock()
	defer b.mux.Unlock()

	for i, t := range b.toasts {
		if t.ID == id {
			b.toasts = append(b.toasts[:i], b.toasts[i+1:]...)
			return
		}
	}
}

// LogRenderer returns a Renderer that writes toasts to logger. Error toasts
// are logged at warn level, everything else at info.
func LogRenderer(logger *zap.Logger) Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return RendererFunc(func(t Toast) func() {
		fields := []zap.Field{
			zap.Uint64("toast_id", t.ID),
			zap.Stringer("severity", t.Severity),
			zap.String("message", t.Message),
		}
		if t.Severity == Error {
			logger.Warn("toast shown", fields...)
		} else {
			logger.Info("toast shown", fields...)
		}

		return func() {
			logger.Debug("toast retracted",
				zap.Uint64("toast_id", t.ID),
				zap.Duration("visible_for", time.Since(t.ShownAt)),
			)
		}
	})
}
