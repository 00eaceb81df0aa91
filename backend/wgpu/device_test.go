package wgpu

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/gogpu/wgpu/hal"
)

// mockHALBuffer is a test double for hal.Buffer with a real backing
// store, so queue reads and writes round trip.
type mockHALBuffer struct {
	label string
	size  uint64
	store []byte
}

// Destroy implements hal.Resource.
func (b *mockHALBuffer) Destroy() {}

// NativeHandle implements hal.NativeHandle.
func (b *mockHALBuffer) NativeHandle() uintptr { return 0 }

// mockHALTexture is a test double for hal.Texture.
type mockHALTexture struct {
	width  uint32
	height uint32
}

// Destroy implements hal.Resource.
func (t *mockHALTexture) Destroy() {}

// NativeHandle implements hal.NativeHandle.
func (t *mockHALTexture) NativeHandle() uintptr { return 0 }

// mockHALDevice is a test double for hal.Device.
type mockHALDevice struct {
	createBufferFunc func(*hal.BufferDescriptor) (hal.Buffer, error)

	buffersCreated    int32
	buffersDestroyed  int32
	texturesCreated   int32
	texturesDestroyed int32

	// lastBufferDesc records the most recent buffer descriptor.
	lastBufferDesc *hal.BufferDescriptor
}

func (d *mockHALDevice) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	atomic.AddInt32(&d.buffersCreated, 1)
	d.lastBufferDesc = desc
	if d.createBufferFunc != nil {
		return d.createBufferFunc(desc)
	}
	return &mockHALBuffer{
		label: desc.Label,
		size:  desc.Size,
		store: make([]byte, desc.Size),
	}, nil
}

func (d *mockHALDevice) DestroyBuffer(_ hal.Buffer) {
	atomic.AddInt32(&d.buffersDestroyed, 1)
}

func (d *mockHALDevice) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	atomic.AddInt32(&d.texturesCreated, 1)
	return &mockHALTexture{
		width:  desc.Size.Width,
		height: desc.Size.Height,
	}, nil
}

func (d *mockHALDevice) DestroyTexture(_ hal.Texture) {
	atomic.AddInt32(&d.texturesDestroyed, 1)
}

// Remaining hal.Device interface methods as no-ops; not exercised here.

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateTextureView(_ hal.Texture, _ *hal.TextureViewDescriptor) (hal.TextureView, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroyTextureView(_ hal.TextureView) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateSampler(_ *hal.SamplerDescriptor) (hal.Sampler, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroySampler(_ hal.Sampler) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateBindGroupLayout(_ *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroyBindGroupLayout(_ hal.BindGroupLayout) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateBindGroup(_ *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroyBindGroup(_ hal.BindGroup) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreatePipelineLayout(_ *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroyPipelineLayout(_ hal.PipelineLayout) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateShaderModule(_ *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroyShaderModule(_ hal.ShaderModule) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateRenderPipeline(_ *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroyRenderPipeline(_ hal.RenderPipeline) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateComputePipeline(_ *hal.ComputePipelineDescriptor) (hal.ComputePipeline, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroyComputePipeline(_ hal.ComputePipeline) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateQuerySet(_ *hal.QuerySetDescriptor) (hal.QuerySet, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroyQuerySet(_ hal.QuerySet) {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateCommandEncoder(_ *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	return nil, nil
}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateRenderBundleEncoder(_ *hal.RenderBundleEncoderDescriptor) (hal.RenderBundleEncoder, error) {
	return nil, nil
}
func (d *mockHALDevice) DestroyRenderBundle(_ hal.RenderBundle) {}
func (d *mockHALDevice) FreeCommandBuffer(_ hal.CommandBuffer)  {}

//nolint:nilnil // Mock: unused interface methods.
func (d *mockHALDevice) CreateFence() (hal.Fence, error) { return nil, nil }
func (d *mockHALDevice) DestroyFence(_ hal.Fence)        {}
func (d *mockHALDevice) Wait(_ hal.Fence, _ uint64, _ time.Duration) (bool, error) {
	return true, nil
}
func (d *mockHALDevice) ResetFence(_ hal.Fence) error { return nil }
func (d *mockHALDevice) GetFenceStatus(_ hal.Fence) (bool, error) {
	return true, nil
}
func (d *mockHALDevice) WaitIdle() error { return nil }
func (d *mockHALDevice) Destroy()        {}

var errMockRead = errors.New("mock read failure")

// mockHALQueue is a test double for hal.Queue operating on mockHALBuffer
// stores.
type mockHALQueue struct {
	writeCalls int
	readCalls  int

	// failRead forces ReadBuffer to fail.
	failRead bool
}

func (q *mockHALQueue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) {
	q.writeCalls++
	buf := buffer.(*mockHALBuffer)
	copy(buf.store[offset:], data)
}

func (q *mockHALQueue) ReadBuffer(buffer hal.Buffer, offset uint64, dst []byte) error {
	q.readCalls++
	if q.failRead {
		return errMockRead
	}
	buf := buffer.(*mockHALBuffer)
	copy(dst, buf.store[offset:])
	return nil
}

func (q *mockHALQueue) WriteTexture(_ *hal.ImageCopyTexture, _ []byte, _ *hal.ImageDataLayout, _ *hal.Extent3D) {
}

func (q *mockHALQueue) Submit(_ []hal.CommandBuffer, _ hal.Fence, _ uint64) error {
	return nil
}

func (q *mockHALQueue) Present(_ hal.Surface, _ hal.SurfaceTexture) error { return nil }

func (q *mockHALQueue) GetTimestampPeriod() float32 { return 1 }

// newTestBackend returns an initialized backend over fresh mocks.
func newTestBackend() (*Backend, *mockHALDevice, *mockHALQueue) {
	device := &mockHALDevice{}
	queue := &mockHALQueue{}
	b := New(device, queue)
	if err := b.Init(); err != nil {
		panic(err)
	}
	return b, device, queue
}
