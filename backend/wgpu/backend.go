package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/luma/backend"
)

// copyAlignment is the WebGPU buffer copy granularity. Buffer stores are
// padded up to it so whole-store staging copies stay legal.
const copyAlignment = 4

// RegisterDevice registers the wgpu backend with the supplied device and
// queue. The windowing layer calls this once the device is live.
func RegisterDevice(device hal.Device, queue hal.Queue) {
	backend.Register(backend.BackendWGPU, func() backend.Backend {
		return New(device, queue)
	})
}

// Backend implements the luma backend contracts against a WebGPU-style
// HAL device.
type Backend struct {
	device hal.Device
	queue  hal.Queue

	initialized bool
}

// New creates a wgpu backend over device and queue. Call Init before
// creating resources.
func New(device hal.Device, queue hal.Queue) *Backend {
	return &Backend{device: device, queue: queue}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendWGPU
}

// Init initializes the backend.
func (b *Backend) Init() error {
	if b.device == nil || b.queue == nil {
		return backend.ErrNilDevice
	}
	b.initialized = true
	return nil
}

// Close releases the backend. The device and queue belong to the
// windowing layer and are left untouched.
func (b *Backend) Close() {
	b.initialized = false
}

// alignSize pads size up to the copy granularity, with a floor of one
// alignment unit so zero-byte stores stay addressable.
func alignSize(size uint64) uint64 {
	if size < copyAlignment {
		return copyAlignment
	}
	return (size + copyAlignment - 1) &^ (copyAlignment - 1)
}

func (b *Backend) createBuffer(label string, size uint64) (*bufferObj, error) {
	physical := alignSize(size)
	buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  physical,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageMapWrite |
			gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create buffer: %w", err)
	}
	return &bufferObj{
		buf:      buf,
		size:     size,
		physical: physical,
		device:   b.device,
		queue:    b.queue,
	}, nil
}

// CreateBuffer allocates a device buffer of size bytes, store zeroed.
func (b *Backend) CreateBuffer(size uint64) (backend.Buffer, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	return b.createBuffer("luma_buffer", size)
}

// CreateBufferInit allocates a device buffer sized and initialized from
// data.
func (b *Backend) CreateBufferInit(data []byte) (backend.Buffer, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	buf, err := b.createBuffer("luma_buffer_init", uint64(len(data)))
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		b.queue.WriteBuffer(buf.buf, 0, data)
	}
	return buf, nil
}

// CreateTexture allocates a device texture for attachment use.
func (b *Backend) CreateTexture(desc *backend.TextureDescriptor) (backend.Texture, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}
	usage := gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	if desc.Renderable {
		usage |= gputypes.TextureUsageRenderAttachment
	}
	tex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              desc.Width,
			Height:             desc.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	return &Texture{
		tex:        tex,
		width:      desc.Width,
		height:     desc.Height,
		samples:    samples,
		renderable: desc.Renderable,
		device:     b.device,
	}, nil
}

// CreateFramebuffer creates a framebuffer. WebGPU has no framebuffer
// object; the attachment set lives host-side and is checked by Validate.
func (b *Backend) CreateFramebuffer(desc *backend.FramebufferDescriptor) (backend.Framebuffer, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	return &framebufferObj{
		width:     desc.Width,
		height:    desc.Height,
		mipLevels: desc.MipLevels,
	}, nil
}
