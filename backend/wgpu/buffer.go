package wgpu

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/luma/backend"
)

// bufferObj is a device buffer plus the queue that moves its bytes.
// size is the logical size callers asked for; physical is the padded
// device allocation.
type bufferObj struct {
	buf      hal.Buffer
	size     uint64
	physical uint64

	device hal.Device
	queue  hal.Queue

	destroyed bool
}

// Size returns the logical buffer size in bytes.
func (b *bufferObj) Size() uint64 { return b.size }

// Map copies the device store into a host staging slice. The store is
// always read first, even for write mappings, so partial writes leave the
// untouched bytes intact when Unmap flushes the whole store back.
func (b *bufferObj) Map(mode backend.MapMode) (backend.MappedRange, error) {
	if b.destroyed {
		return nil, backend.ErrBufferDestroyed
	}
	staging := make([]byte, b.physical)
	if err := b.queue.ReadBuffer(b.buf, 0, staging); err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrMapFailed, err)
	}
	return &mappedRange{buf: b, staging: staging, mode: mode}, nil
}

// Destroy releases the device buffer. Idempotent.
func (b *bufferObj) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.device.DestroyBuffer(b.buf)
}

// mappedRange is a staged copy of a buffer's store. Writes land in the
// staging slice and reach the device when Unmap flushes.
type mappedRange struct {
	buf     *bufferObj
	staging []byte
	mode    backend.MapMode

	unmapped bool
}

// Bytes returns the logical bytes of the mapping.
func (m *mappedRange) Bytes() []byte {
	if m.unmapped {
		return nil
	}
	return m.staging[:m.buf.size]
}

// Unmap releases the mapping, flushing the staging slice back to the
// device unless the mapping was read-only.
func (m *mappedRange) Unmap() error {
	if m.unmapped {
		return nil
	}
	m.unmapped = true
	if m.mode != backend.MapRead && !m.buf.destroyed {
		m.buf.queue.WriteBuffer(m.buf.buf, 0, m.staging)
	}
	m.staging = nil
	return nil
}
