package luma

import (
	"github.com/gogpu/luma/backend"
)

// mockBackend is an in-memory backend.Backend for facade tests. Buffers
// are plain byte slices; framebuffers record attachments and validate
// against a configurable result.
type mockBackend struct {
	// failMap forces every buffer Map to fail.
	failMap bool

	// validateErr is returned by every framebuffer Validate; nil means
	// the default missing-attachment rule applies.
	validateErr error

	buffersDestroyed int
}

func (m *mockBackend) Name() string { return "mock" }
func (m *mockBackend) Init() error  { return nil }
func (m *mockBackend) Close()       {}

func (m *mockBackend) CreateBuffer(size uint64) (backend.Buffer, error) {
	return &mockBuffer{store: make([]byte, size), owner: m}, nil
}

func (m *mockBackend) CreateBufferInit(data []byte) (backend.Buffer, error) {
	store := make([]byte, len(data))
	copy(store, data)
	return &mockBuffer{store: store, owner: m}, nil
}

func (m *mockBackend) CreateTexture(desc *backend.TextureDescriptor) (backend.Texture, error) {
	return &mockTexture{width: desc.Width, height: desc.Height}, nil
}

func (m *mockBackend) CreateFramebuffer(desc *backend.FramebufferDescriptor) (backend.Framebuffer, error) {
	return &mockFramebuffer{owner: m, width: desc.Width, height: desc.Height}, nil
}

type mockBuffer struct {
	store []byte
	owner *mockBackend

	mapCount  int
	destroyed bool
}

func (b *mockBuffer) Size() uint64 { return uint64(len(b.store)) }

func (b *mockBuffer) Map(mode backend.MapMode) (backend.MappedRange, error) {
	if b.destroyed {
		return nil, backend.ErrBufferDestroyed
	}
	if b.owner.failMap {
		return nil, backend.ErrMapFailed
	}
	b.mapCount++
	return &mockMapped{buf: b}, nil
}

func (b *mockBuffer) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.owner.buffersDestroyed++
}

type mockMapped struct {
	buf      *mockBuffer
	unmapped bool
}

func (m *mockMapped) Bytes() []byte {
	if m.unmapped {
		return nil
	}
	return m.buf.store
}

func (m *mockMapped) Unmap() error {
	if !m.unmapped {
		m.unmapped = true
		m.buf.mapCount--
	}
	return nil
}

type mockTexture struct {
	width, height uint32
	destroyed     bool
}

func (t *mockTexture) Width() uint32       { return t.width }
func (t *mockTexture) Height() uint32      { return t.height }
func (t *mockTexture) SampleCount() uint32 { return 1 }
func (t *mockTexture) Destroy()            { t.destroyed = true }

type mockFramebuffer struct {
	owner  *mockBackend
	width  uint32
	height uint32

	colors map[int]backend.Texture
	depth  backend.Texture

	destroyed bool
}

func (f *mockFramebuffer) Size() (uint32, uint32) { return f.width, f.height }

func (f *mockFramebuffer) AttachColor(index int, tex backend.Texture) error {
	if f.colors == nil {
		f.colors = make(map[int]backend.Texture)
	}
	f.colors[index] = tex
	return nil
}

func (f *mockFramebuffer) AttachDepth(tex backend.Texture) error {
	f.depth = tex
	return nil
}

func (f *mockFramebuffer) Validate() error {
	if f.owner.validateErr != nil {
		return f.owner.validateErr
	}
	if len(f.colors) == 0 && f.depth == nil {
		return &backend.IncompleteError{Reason: backend.IncompleteMissingAttachment}
	}
	return nil
}

func (f *mockFramebuffer) Destroy() { f.destroyed = true }
