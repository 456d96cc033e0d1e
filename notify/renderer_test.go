package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBoard(t *testing.T) {
	b := NewBoard()

	retractA := b.Mount(Toast{ID: 1, Message: "a"})
	retractB := b.Mount(Toast{ID: 2, Message: "b"})
	assert.Equal(t, 2, b.Len())

	retractA()
	visible := b.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "b", visible[0].Message)

	// Retracting twice is harmless.
	retractA()
	retractB()
	assert.Equal(t, 0, b.Len())
}

func TestBoard_VisibleIsACopy(t *testing.T) {
	b := NewBoard()
	b.Mount(Toast{ID: 1, Message: "a"})

	visible := b.Visible()
	visible[0].Message = "changed"

	assert.Equal(t, "a", b.Visible()[0].Message)
}

func TestLogRenderer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := LogRenderer(zap.New(core))

	retract := r.Mount(Toast{
		ID: 7, Message: "Saved", Severity: Success, ShownAt: time.Now(),
	})
	r.Mount(Toast{ID: 8, Message: "Nope", Severity: Error, ShownAt: time.Now()})
	retract()

	all := logs.All()
	require.Len(t, all, 3)

	assert.Equal(t, zapcore.InfoLevel, all[0].Level)
	assert.Equal(t, "toast shown", all[0].Message)
	assert.Equal(t, "success", all[0].ContextMap()["severity"])
	assert.Equal(t, "Saved", all[0].ContextMap()["message"])

	assert.Equal(t, zapcore.WarnLevel, all[1].Level)

	assert.Equal(t, zapcore.DebugLevel, all[2].Level)
	assert.Equal(t, "toast retracted", all[2].Message)
	assert.Equal(t, uint64(7), all[2].ContextMap()["toast_id"])
}

func TestLogRenderer_nilLogger(t *testing.T) {
	r := LogRenderer(nil)

	assert.NotPanics(t, func() {
		r.Mount(Toast{ID: 1, Message: "x"})()
	})
}
