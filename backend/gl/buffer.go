package gl

import (
	"github.com/gogpu/luma"
	"github.com/gogpu/luma/backend"
)

// bufferObj is a device buffer: an object name, its byte size, and the
// shared binding cache it binds through.
type bufferObj struct {
	id   uint32
	size uint64

	state *State
	dev   Device

	destroyed bool
}

// Size returns the buffer size in bytes.
func (b *bufferObj) Size() uint64 { return b.size }

// Map binds the buffer (cached) and maps its store into host memory.
func (b *bufferObj) Map(mode backend.MapMode) (backend.MappedRange, error) {
	if b.destroyed {
		return nil, backend.ErrBufferDestroyed
	}
	var access Enum
	switch mode {
	case backend.MapRead:
		access = ReadOnly
	case backend.MapWrite:
		access = WriteOnly
	default:
		access = ReadWrite
	}
	b.state.BindArrayBuffer(b.id, BindCached)
	raw := b.dev.MapBuffer(ArrayBuffer, access)
	if raw == nil {
		return nil, backend.ErrMapFailed
	}
	return &mappedRange{buf: b, bytes: raw}, nil
}

// Destroy unbinds the buffer from the binding cache and deletes the
// device object. Idempotent.
func (b *bufferObj) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.state.UnbindBuffer(b.id)
	b.dev.DeleteBuffer(b.id)
}

// mappedRange is a live mapping of a buffer's store. Unmapping rebinds
// the owning buffer (cached) first: another resource may have been bound
// since the map.
type mappedRange struct {
	buf      *bufferObj
	bytes    []byte
	unmapped bool
}

func (m *mappedRange) Bytes() []byte {
	if m.unmapped {
		return nil
	}
	return m.bytes
}

func (m *mappedRange) Unmap() error {
	if m.unmapped {
		return nil
	}
	m.unmapped = true
	m.bytes = nil
	m.buf.state.BindArrayBuffer(m.buf.id, BindCached)
	if !m.buf.dev.UnmapBuffer(ArrayBuffer) {
		// The store was corrupted while mapped (e.g. screen mode
		// change). Contents are undefined but the mapping is released.
		luma.Logger().Warn("unmap reported corrupted buffer store", "buffer", m.buf.id)
	}
	return nil
}
