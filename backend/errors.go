package backend

import (
	"errors"
	"fmt"
)

// Buffer errors.
var (
	// ErrMapFailed is returned when the device returns a null mapping.
	ErrMapFailed = errors.New("backend: buffer map failed")

	// ErrBufferDestroyed is returned when operating on a destroyed buffer.
	ErrBufferDestroyed = errors.New("backend: buffer has been destroyed")

	// ErrTextureDestroyed is returned (wrapped in a TextureError) when
	// attaching a destroyed texture to a framebuffer.
	ErrTextureDestroyed = errors.New("backend: texture has been destroyed")

	// ErrFramebufferDestroyed is returned when operating on a destroyed
	// framebuffer.
	ErrFramebufferDestroyed = errors.New("backend: framebuffer has been destroyed")

	// ErrForeignTexture is returned (wrapped in a TextureError) when a
	// texture from a different backend is attached to a framebuffer.
	ErrForeignTexture = errors.New("backend: texture belongs to a different backend")
)

// OverflowError reports an element index past the end of a buffer.
type OverflowError struct {
	// Index is the out-of-bounds element index.
	Index int
	// Len is the buffer's element count.
	Len int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("backend: index %d out of bounds for buffer of length %d", e.Index, e.Len)
}

// TooFewValuesError reports a bulk write with fewer values than the buffer
// holds. Bulk writes require an exact length match; no partial overwrite is
// permitted.
type TooFewValuesError struct {
	// Provided is the number of values supplied.
	Provided int
	// Expected is the buffer's element count.
	Expected int
}

func (e *TooFewValuesError) Error() string {
	return fmt.Sprintf("backend: too few values: %d provided, buffer holds %d", e.Provided, e.Expected)
}

// TooManyValuesError reports a bulk write with more values than the buffer
// holds.
type TooManyValuesError struct {
	// Provided is the number of values supplied.
	Provided int
	// Expected is the buffer's element count.
	Expected int
}

func (e *TooManyValuesError) Error() string {
	return fmt.Sprintf("backend: too many values: %d provided, buffer holds %d", e.Provided, e.Expected)
}
