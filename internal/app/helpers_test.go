package app_test

import (
	"bytes"
	"sync"
)

// syncWriter guards a buffer written by the renderer and read by the test.
type syncWriter struct {
	mu  sync.Mutex
	buf *bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}
