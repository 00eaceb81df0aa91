package gl

import (
	"github.com/gogpu/luma/backend"
)

// RegisterDevice registers the gl backend with the supplied device. The
// windowing layer calls this once its context is current; afterwards the
// backend is selectable through the registry:
//
//	gl.RegisterDevice(device)
//	b := backend.Get(backend.BackendGL)
func RegisterDevice(dev Device) {
	backend.Register(backend.BackendGL, func() backend.Backend {
		return New(dev)
	})
}

// Backend implements the luma backend contracts against a GL-style device.
type Backend struct {
	dev   Device
	state *State

	initialized bool
}

// New creates a gl backend over dev. Call Init before creating resources.
func New(dev Device) *Backend {
	return &Backend{dev: dev}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendGL
}

// Init initializes the backend and its binding cache.
func (b *Backend) Init() error {
	if b.dev == nil {
		return backend.ErrNilDevice
	}
	b.state = NewState(b.dev)
	b.initialized = true
	return nil
}

// Close releases the backend. The device connection belongs to the
// windowing layer and is left untouched; resources created by the backend
// must already be destroyed.
func (b *Backend) Close() {
	b.state = nil
	b.initialized = false
}

// CreateBuffer allocates a device buffer of size bytes, store
// uninitialized. The fresh object is bound forced: the prior global
// binding state is unknown and must not be trusted.
func (b *Backend) CreateBuffer(size uint64) (backend.Buffer, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	id := b.dev.GenBuffer()
	b.state.BindArrayBuffer(id, BindForced)
	b.dev.BufferData(ArrayBuffer, int(size), nil, StreamDraw)
	return &bufferObj{id: id, size: size, state: b.state, dev: b.dev}, nil
}

// CreateBufferInit allocates a device buffer sized and initialized from
// data.
func (b *Backend) CreateBufferInit(data []byte) (backend.Buffer, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	id := b.dev.GenBuffer()
	b.state.BindArrayBuffer(id, BindCached)
	b.dev.BufferData(ArrayBuffer, len(data), data, StreamDraw)
	return &bufferObj{id: id, size: uint64(len(data)), state: b.state, dev: b.dev}, nil
}

// CreateTexture allocates a device texture for attachment use. Pixel
// format and storage configuration belong to the texture subsystem; this
// backend carries only what the framebuffer contract consumes.
func (b *Backend) CreateTexture(desc *backend.TextureDescriptor) (backend.Texture, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}
	id := b.dev.GenTexture()
	return &Texture{
		id:      id,
		width:   desc.Width,
		height:  desc.Height,
		samples: samples,
		dev:     b.dev,
	}, nil
}

// CreateFramebuffer allocates a device framebuffer object. The fresh
// object is bound forced, like buffers.
func (b *Backend) CreateFramebuffer(desc *backend.FramebufferDescriptor) (backend.Framebuffer, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	id := b.dev.GenFramebuffer()
	b.state.BindDrawFramebuffer(id, BindForced)
	return &framebufferObj{
		id:        id,
		width:     desc.Width,
		height:    desc.Height,
		mipLevels: desc.MipLevels,
		state:     b.state,
		dev:       b.dev,
	}, nil
}
