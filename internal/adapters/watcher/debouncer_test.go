package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ponder/internal/adapters/watcher"
)

// recorder collects settle signals with their fake-clock time.
type recorder struct {
	mu    sync.Mutex
	start time.Time
	calls []call
}

type call struct {
	path string
	at   time.Duration
}

func newRecorder() *recorder {
	return &recorder{start: time.Now()}
}

func (r *recorder) callback(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{path: path, at: time.Since(r.start)})
}

func (r *recorder) snapshot() []call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]call(nil), r.calls...)
}

func TestNewDebouncer(t *testing.T) {
	tests := []struct {
		name     string
		window   time.Duration
		callback func(string)
	}{
		{
			name:     "with callback",
			window:   100 * time.Millisecond,
			callback: func(string) {},
		},
		{
			name:     "with nil callback",
			window:   50 * time.Millisecond,
			callback: nil,
		},
		{
			name:     "with zero window",
			window:   0,
			callback: func(string) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := watcher.NewDebouncer(tt.window, tt.callback)
			require.NotNil(t, d)
		})
	}
}

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := newRecorder()
		d := watcher.NewDebouncer(300*time.Millisecond, r.callback)

		d.Add("/project/schema.graphql")

		time.Sleep(time.Second)
		synctest.Wait()

		calls := r.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, "/project/schema.graphql", calls[0].path)
		assert.Equal(t, 300*time.Millisecond, calls[0].at)
	})
}

func TestDebouncer_BurstFiresOnceAfterLastEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := newRecorder()
		d := watcher.NewDebouncer(300*time.Millisecond, r.callback)

		// Events every 100ms keep resetting the quiet period.
		for range 5 {
			d.Add("/project/schema.graphql")
			time.Sleep(100 * time.Millisecond)
		}
		synctest.Wait()
		assert.Empty(t, r.snapshot(), "no signal while events keep arriving")

		time.Sleep(time.Second)
		synctest.Wait()

		calls := r.snapshot()
		require.Len(t, calls, 1)
		// Last event at 400ms, plus the 300ms window.
		assert.Equal(t, 700*time.Millisecond, calls[0].at)
	})
}

func TestDebouncer_ConcurrentAddsFireOnce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := newRecorder()
		d := watcher.NewDebouncer(300*time.Millisecond, r.callback)

		var wg sync.WaitGroup
		for range 50 {
			wg.Go(func() {
				d.Add("/project/ponder.yaml")
			})
		}
		wg.Wait()

		time.Sleep(time.Second)
		synctest.Wait()

		assert.Len(t, r.snapshot(), 1)
	})
}

func TestDebouncer_PathsAreIndependent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := newRecorder()
		d := watcher.NewDebouncer(300*time.Millisecond, r.callback)

		d.Add("/project/ponder.yaml")
		time.Sleep(200 * time.Millisecond)
		// Activity on the schema must not delay the config signal.
		d.Add("/project/schema.graphql")
		time.Sleep(200 * time.Millisecond)
		d.Add("/project/schema.graphql")

		time.Sleep(time.Second)
		synctest.Wait()

		calls := r.snapshot()
		require.Len(t, calls, 2)
		assert.Equal(t, call{path: "/project/ponder.yaml", at: 300 * time.Millisecond}, calls[0])
		assert.Equal(t, call{path: "/project/schema.graphql", at: 700 * time.Millisecond}, calls[1])
	})
}

func TestDebouncer_Flush_Immediate(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := newRecorder()
		d := watcher.NewDebouncer(100*time.Millisecond, r.callback)

		d.Add("/project/schema.graphql")
		d.Add("/project/ponder.yaml")
		assert.Equal(t, []string{"/project/ponder.yaml", "/project/schema.graphql"}, d.Pending())

		d.Flush()

		// Callbacks ran synchronously, sorted by path.
		calls := r.snapshot()
		require.Len(t, calls, 2)
		assert.Equal(t, "/project/ponder.yaml", calls[0].path)
		assert.Equal(t, "/project/schema.graphql", calls[1].path)
		assert.Empty(t, d.Pending())

		// The original timers must not fire again.
		time.Sleep(time.Second)
		synctest.Wait()
		assert.Len(t, r.snapshot(), 2)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(100*time.Millisecond, func(string) {
		callCount++
	})

	d.Flush()

	assert.Equal(t, 0, callCount)
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := newRecorder()
		d := watcher.NewDebouncer(50*time.Millisecond, r.callback)

		d.Add("/project/schema.graphql")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Len(t, r.snapshot(), 1)

		d.Flush()

		assert.Len(t, r.snapshot(), 1)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/project/schema.graphql")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/schema.graphql")
		d.Flush()
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := newRecorder()
		d := watcher.NewDebouncer(100*time.Millisecond, r.callback)

		d.Add("/project/schema.graphql")
		d.Stop()
		d.Add("/project/ponder.yaml")

		time.Sleep(time.Second)
		synctest.Wait()

		assert.Empty(t, r.snapshot())
		assert.Empty(t, d.Pending())
	})
}
