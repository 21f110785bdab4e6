// Package watcher turns raw file system events into settle signals.
package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

type timerEntry struct {
	timer *time.Timer
	gen   uint64
}

// Debouncer runs an independent quiet-period timer per path.
// The callback fires once per path after window elapses with no further Add.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]*timerEntry
	window   time.Duration
	callback func(path string)
	stopped  bool
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(path string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]*timerEntry),
		window:   window,
		callback: callback,
	}
}

// Add arms the timer of path, replacing any timer armed before.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	handle := unique.Make(path)
	entry, ok := d.pending[handle]
	if !ok {
		entry = &timerEntry{}
		d.pending[handle] = entry
	}
	if entry.timer != nil {
		entry.timer.Stop()
	}

	// A timer whose Stop lost the race still sees a stale generation and returns.
	entry.gen++
	gen := entry.gen
	entry.timer = time.AfterFunc(d.window, func() { d.fire(handle, gen) })
}

// fire is called when the window of one path expires.
func (d *Debouncer) fire(handle unique.Handle[string], gen uint64) {
	d.mu.Lock()
	entry, ok := d.pending[handle]
	if !ok || entry.gen != gen {
		d.mu.Unlock()
		return
	}
	delete(d.pending, handle)
	d.mu.Unlock()

	if d.callback != nil {
		go d.callback(handle.Value())
	}
}

// Pending returns the paths with an armed timer, sorted.
func (d *Debouncer) Pending() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	slices.Sort(paths)
	return paths
}

// Flush fires every pending path immediately and blocks until the callbacks return.
func (d *Debouncer) Flush() {
	paths := d.drain()
	if d.callback == nil {
		return
	}
	for _, path := range paths {
		d.callback(path)
	}
}

// Stop cancels every pending timer. Later calls to Add are ignored.
func (d *Debouncer) Stop() {
	d.drain()
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}

func (d *Debouncer) drain() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	paths := make([]string, 0, len(d.pending))
	for handle, entry := range d.pending {
		entry.timer.Stop()
		paths = append(paths, handle.Value())
	}
	clear(d.pending)
	slices.Sort(paths)
	return paths
}
