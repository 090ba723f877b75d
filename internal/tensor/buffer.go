package tensor

import (
	"sync"
	"sync/atomic"
)

// buffer is a reference-counted element store shared by every view derived
// from it. The pinned flag is metadata carried to every derived view; the
// buffer itself is reclaimed by the garbage collector like any slice, so
// dropping views without Release is never an error.
type buffer[T DType] struct {
	data     []T
	pinned   bool
	refCount atomic.Int32
	mu       sync.Mutex // Guards data on final release
}

// newBuffer wraps data (no copy) in a buffer with refCount = 1.
func newBuffer[T DType](data []T, pinned bool) *buffer[T] {
	buf := &buffer[T]{
		data:   data,
		pinned: pinned,
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count.
func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count. The last release drops the
// element slice.
func (b *buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique returns true if exactly one view references the buffer.
func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}
