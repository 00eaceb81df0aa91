package luma

import (
	"errors"

	"github.com/gogpu/luma/backend"
)

// Facade errors.
var (
	// ErrInvalidLength is returned when creating a buffer with a negative
	// length.
	ErrInvalidLength = errors.New("luma: buffer length must not be negative")

	// ErrViewOpen is returned when an operation needs the buffer's
	// mapping and a view is already open on it.
	ErrViewOpen = errors.New("luma: a view is open on this buffer")

	// ErrViewClosed is returned when using a view after Close.
	ErrViewClosed = errors.New("luma: view has been closed")
)

// Buffer is a typed, device-resident buffer of elements of type T.
//
// Every operation that touches device memory is a complete map/copy/unmap
// round trip through the owning backend. Per-element access (At, Set) pays
// that round trip on every call and is expected to be slow; callers
// needing many reads or writes should open a view once with Slice or
// SliceMut.
//
// A view guard serializes access to the buffer's single device-level
// mapping: while any view is open, element and bulk operations fail with
// ErrViewOpen, a mutable view is rejected while any view is open, and a
// read view is rejected while a mutable view is open. The guard is the Go
// rendition of exclusive-versus-shared access rules; violating it at the
// device level would be undefined behavior, so it is enforced at runtime.
//
// Buffers are not safe for concurrent use. Serialize all access onto the
// thread that owns the rendering context.
type Buffer[T Element] struct {
	raw backend.Buffer

	// length is the element count, fixed at creation.
	length int

	// readers counts open read views; writer marks an open mutable view.
	readers int
	writer  bool

	destroyed bool
}

// NewBuffer creates a device buffer of length elements of type T.
// The backing store is uninitialized.
func NewBuffer[T Element](b backend.Backend, length int) (*Buffer[T], error) {
	if length < 0 {
		return nil, ErrInvalidLength
	}
	raw, err := b.CreateBuffer(uint64(length) * elemSize[T]())
	if err != nil {
		return nil, err
	}
	Logger().Debug("buffer created", "len", length, "bytes", uint64(length)*elemSize[T]())
	return &Buffer[T]{raw: raw, length: length}, nil
}

// NewBufferFrom creates a device buffer sized and initialized from values.
func NewBufferFrom[T Element](b backend.Backend, values []T) (*Buffer[T], error) {
	raw, err := b.CreateBufferInit(elemBytes(values))
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{raw: raw, length: len(values)}, nil
}

// NewBufferRepeat creates a device buffer of length elements, every one
// set to value. The composition is atomic from the caller's point of view:
// if the fill fails, the fresh allocation is destroyed before the error is
// returned, so no partially-filled buffer is ever observable.
func NewBufferRepeat[T Element](b backend.Backend, length int, value T) (*Buffer[T], error) {
	buf, err := NewBuffer[T](b, length)
	if err != nil {
		return nil, err
	}
	if err := buf.Fill(value); err != nil {
		_ = buf.Destroy()
		return nil, err
	}
	return buf, nil
}

// Len returns the element count. O(1); does not touch the device.
func (b *Buffer[T]) Len() int { return b.length }

// At returns the element at index i and true, or the zero value and false
// when i is out of bounds, the buffer is destroyed, a view is open, or the
// device refuses the mapping.
//
// Each call is a full map/unmap round trip; prefer Slice for bulk reads.
func (b *Buffer[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= b.length || b.destroyed || b.viewOpen() {
		return zero, false
	}
	m, err := b.raw.Map(backend.MapRead)
	if err != nil {
		return zero, false
	}
	v := bytesAsElems[T](m.Bytes(), b.length)[i]
	_ = m.Unmap()
	return v, true
}

// Set writes value at index i.
// Returns an *backend.OverflowError when i is out of bounds.
//
// Each call is a full map/unmap round trip; prefer SliceMut for bulk
// writes.
func (b *Buffer[T]) Set(i int, value T) error {
	if i < 0 || i >= b.length {
		return &backend.OverflowError{Index: i, Len: b.length}
	}
	if b.destroyed {
		return backend.ErrBufferDestroyed
	}
	if b.viewOpen() {
		return ErrViewOpen
	}
	m, err := b.raw.Map(backend.MapWrite)
	if err != nil {
		return err
	}
	bytesAsElems[T](m.Bytes(), b.length)[i] = value
	return m.Unmap()
}

// ReadAll copies the entire backing store into a fresh owned slice. The
// result never aliases the device mapping.
func (b *Buffer[T]) ReadAll() ([]T, error) {
	if b.destroyed {
		return nil, backend.ErrBufferDestroyed
	}
	if b.viewOpen() {
		return nil, ErrViewOpen
	}
	m, err := b.raw.Map(backend.MapRead)
	if err != nil {
		return nil, err
	}
	out := make([]T, b.length)
	copy(out, bytesAsElems[T](m.Bytes(), b.length))
	if err := m.Unmap(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteAll overwrites every element from values. The length must match
// exactly: a short slice fails with *backend.TooFewValuesError, a long one
// with *backend.TooManyValuesError, and in both cases the buffer's prior
// contents are left untouched. No partial overwrite is permitted.
func (b *Buffer[T]) WriteAll(values []T) error {
	if len(values) < b.length {
		return &backend.TooFewValuesError{Provided: len(values), Expected: b.length}
	}
	if len(values) > b.length {
		return &backend.TooManyValuesError{Provided: len(values), Expected: b.length}
	}
	if b.destroyed {
		return backend.ErrBufferDestroyed
	}
	if b.viewOpen() {
		return ErrViewOpen
	}
	m, err := b.raw.Map(backend.MapWrite)
	if err != nil {
		return err
	}
	copy(m.Bytes(), elemBytes(values))
	return m.Unmap()
}

// Fill sets every element to value. Equivalent to WriteAll with Len
// copies of value.
func (b *Buffer[T]) Fill(value T) error {
	values := make([]T, b.length)
	for i := range values {
		values[i] = value
	}
	return b.WriteAll(values)
}

// Slice opens a read-only view over the buffer's backing store.
// Fails with ErrViewOpen while a mutable view is open. The view must be
// closed with Close on every exit path.
func (b *Buffer[T]) Slice() (*BufferSlice[T], error) {
	if b.destroyed {
		return nil, backend.ErrBufferDestroyed
	}
	if b.writer {
		return nil, ErrViewOpen
	}
	m, err := b.raw.Map(backend.MapRead)
	if err != nil {
		return nil, err
	}
	b.readers++
	return &BufferSlice[T]{buf: b, mapped: m}, nil
}

// SliceMut opens a mutable view over the buffer's backing store.
// Fails with ErrViewOpen while any view is open. The view must be closed
// with Close on every exit path.
func (b *Buffer[T]) SliceMut() (*BufferSliceMut[T], error) {
	if b.destroyed {
		return nil, backend.ErrBufferDestroyed
	}
	if b.viewOpen() {
		return nil, ErrViewOpen
	}
	m, err := b.raw.Map(backend.MapReadWrite)
	if err != nil {
		return nil, err
	}
	b.writer = true
	return &BufferSliceMut[T]{buf: b, mapped: m}, nil
}

// Destroy releases the device buffer. Destroying twice is a no-op.
// Fails with ErrViewOpen while a view is open; close all views first.
func (b *Buffer[T]) Destroy() error {
	if b.destroyed {
		return nil
	}
	if b.viewOpen() {
		return ErrViewOpen
	}
	b.destroyed = true
	b.raw.Destroy()
	Logger().Debug("buffer destroyed", "len", b.length)
	return nil
}

func (b *Buffer[T]) viewOpen() bool { return b.readers > 0 || b.writer }

// BufferSlice is a scoped read-only view over a buffer's mapped backing
// store. It keeps the owning buffer alive (the buffer cannot be destroyed
// while the view is open) and must be closed exactly once.
type BufferSlice[T Element] struct {
	buf    *Buffer[T]
	mapped backend.MappedRange
	closed bool
}

// Values reinterprets the mapped region as a contiguous element slice of
// the owning buffer's length. The slice is only valid until Close; returns
// nil on a closed view.
func (s *BufferSlice[T]) Values() []T {
	if s.closed {
		return nil
	}
	return bytesAsElems[T](s.mapped.Bytes(), s.buf.length)
}

// Len returns the view length in elements.
func (s *BufferSlice[T]) Len() int { return s.buf.length }

// Close unmaps the view and releases its hold on the owning buffer.
// Closing an already-closed view fails with ErrViewClosed.
func (s *BufferSlice[T]) Close() error {
	if s.closed {
		return ErrViewClosed
	}
	s.closed = true
	s.buf.readers--
	return s.mapped.Unmap()
}

// BufferSliceMut is a scoped mutable view over a buffer's mapped backing
// store. At most one mutable view may be open on a buffer, and no other
// view may coexist with it. It must be closed exactly once; writes reach
// the device on Close.
type BufferSliceMut[T Element] struct {
	buf    *Buffer[T]
	mapped backend.MappedRange
	closed bool
}

// Values reinterprets the mapped region as a contiguous, writable element
// slice of the owning buffer's length. The slice is only valid until
// Close; returns nil on a closed view.
func (s *BufferSliceMut[T]) Values() []T {
	if s.closed {
		return nil
	}
	return bytesAsElems[T](s.mapped.Bytes(), s.buf.length)
}

// Len returns the view length in elements.
func (s *BufferSliceMut[T]) Len() int { return s.buf.length }

// Close unmaps the view, flushing writes, and releases its hold on the
// owning buffer. Closing an already-closed view fails with ErrViewClosed.
func (s *BufferSliceMut[T]) Close() error {
	if s.closed {
		return ErrViewClosed
	}
	s.closed = true
	s.buf.writer = false
	return s.mapped.Unmap()
}
