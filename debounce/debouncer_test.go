package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDebouncer(t *testing.T) {
	testFn := func(string) {}

	tests := []struct {
		name         string
		wait         time.Duration
		fn           func(string)
		opts         []Option
		wantLeading  bool
		wantTrailing bool
		wantMaxWait  time.Duration
		wantFnNil    bool
	}{
		{
			name:         "default configuration with function",
			wait:         100 * time.Millisecond,
			fn:           testFn,
			wantTrailing: true, // defaults to trailing
		},
		{
			name:         "nil function",
			wait:         100 * time.Millisecond,
			wantTrailing: true,
			wantFnNil:    true,
		},
		{
			name:         "leading option only",
			wait:         100 * time.Millisecond,
			fn:           testFn,
			opts:         []Option{Leading()},
			wantLeading:  true,
			wantTrailing: false,
		},
		{
			name:         "leading and trailing",
			wait:         100 * time.Millisecond,
			fn:           testFn,
			opts:         []Option{Leading(), Trailing()},
			wantLeading:  true,
			wantTrailing: true,
		},
		{
			name:         "max wait greater than wait",
			wait:         100 * time.Millisecond,
			fn:           testFn,
			opts:         []Option{MaxWait(500 * time.Millisecond)},
			wantTrailing: true,
			wantMaxWait:  500 * time.Millisecond,
		},
		{
			name:         "max wait equal to wait is disabled",
			wait:         100 * time.Millisecond,
			fn:           testFn,
			opts:         []Option{MaxWait(100 * time.Millisecond)},
			wantTrailing: true,
			wantMaxWait:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDebouncer(tt.wait, tt.fn, tt.opts...)
			require.NotNil(t, d)

			assert.Equal(t, tt.wait, d.wait)
			assert.Equal(t, tt.wantLeading, d.conf.leading)
			assert.Equal(t, tt.wantTrailing, d.conf.trailing)
			assert.Equal(t, tt.wantMaxWait, d.conf.maxWait)
			assert.Equal(t, tt.wantFnNil, d.fn == nil)
			assert.NotNil(t, d.timer)
			assert.NotNil(t, d.maxTimer)
			assert.False(t, d.Pending())
		})
	}
}

func TestDebouncer_Debounce(t *testing.T) {
	t.Parallel()

	var mux sync.Mutex
	var got []string
	d := NewDebouncer(100*time.Millisecond, func(s string) {
		mux.Lock()
		defer mux.Unlock()
		got = append(got, s)
	})

	d.Debounce("e")
	d.Debounce("em")
	d.Debounce("ema")
	assert.True(t, d.Pending())

	time.Sleep(200 * time.Millisecond)
	assert.False(t, d.Pending())

	mux.Lock()
	defer mux.Unlock()
	assert.Equal(t, []string{"ema"}, got)
}

func TestDebouncer_DebounceWith(t *testing.T) {
	t.Parallel()

	var first, second int64
	d := NewDebouncer(100*time.Millisecond, func(n int64) {
		atomic.AddInt64(&first, n)
	})

	d.Debounce(1)
	d.DebounceWith(2, func(n int64) {
		atomic.AddInt64(&second, n)
	})

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int64(0), atomic.LoadInt64(&first))
	assert.Equal(t, int64(2), atomic.LoadInt64(&second))

	// A nil callback keeps the current one.
	d.DebounceWith(3, nil)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int64(0), atomic.LoadInt64(&first))
	assert.Equal(t, int64(5), atomic.LoadInt64(&second))
}

func TestDebouncer_Reset(t *testing.T) {
	t.Parallel()

	var n int64
	d := NewDebouncer(100*time.Millisecond, func(int) {
		atomic.AddInt64(&n, 1)
	}, Leading(), Trailing())

	d.Debounce(1) // leading
	d.Debounce(2)
	assert.True(t, d.Pending())

	d.Reset()
	assert.False(t, d.Pending())
	assert.True(t, d.lastCall.IsZero())
	assert.True(t, d.lastInvoke.IsZero())

	// After a reset the next call is a fresh leading edge.
	d.Debounce(3)

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int64(2), atomic.LoadInt64(&n))
}

func TestDebouncer_nilFunction(t *testing.T) {
	t.Parallel()

	d := NewDebouncer[int](50*time.Millisecond, nil)

	assert.NotPanics(t, func() {
		d.Debounce(1)
		time.Sleep(100 * time.Millisecond)
	})
	assert.True(t, d.lastInvoke.IsZero())
}

func TestDebouncer_concurrentCalls(t *testing.T) {
	t.Parallel()

	var n int64
	d := NewDebouncer(100*time.Millisecond, func(int) {
		atomic.AddInt64(&n, 1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d.Debounce(i)
		}(i)
	}
	wg.Wait()

	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&n))
}
