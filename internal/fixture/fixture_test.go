package fixture

import (
	"bytes"
	"errors"
	"sync"
)

// syncBuffer is a goroutine-safe buffer for tests that read stdout
// while the fixture is still writing.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func newSyncBuffer() *syncBuffer {
	return &syncBuffer{}
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// failingWriter simulates a broken stdout.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

// failingReader simulates a stdin that errors rather than closing.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("input/output error")
}
