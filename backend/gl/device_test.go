package gl

// mockDevice is a test double for Device with real backing stores, so
// map/unmap round trips actually move data. It tracks bind calls to
// verify the cached/forced bind discipline.
type mockDevice struct {
	nextBuffer      uint32
	nextFramebuffer uint32
	nextTexture     uint32

	// stores holds each buffer's backing bytes.
	stores map[uint32][]byte

	// boundBuffer and boundFramebuffer mirror the device's own binding
	// state, independent of the State cache under test.
	boundBuffer      uint32
	boundFramebuffer uint32

	// mapped is the buffer id currently mapped through ArrayBuffer.
	mapped uint32

	// attachments maps framebuffer id -> attachment point -> texture id.
	attachments map[uint32]map[Enum]uint32

	// failMap forces MapBuffer to return nil.
	failMap bool

	// statusOverride, when non-zero, is returned by
	// CheckFramebufferStatus as-is.
	statusOverride Enum

	bindBufferCalls      int
	bindFramebufferCalls int
	buffersDeleted       int
	framebuffersDeleted  int
	texturesDeleted      int
	unmapCalls           int
}

func newMockDevice() *mockDevice {
	return &mockDevice{
		stores:      make(map[uint32][]byte),
		attachments: make(map[uint32]map[Enum]uint32),
	}
}

func (d *mockDevice) GenBuffer() uint32 {
	d.nextBuffer++
	return d.nextBuffer
}

func (d *mockDevice) DeleteBuffer(id uint32) {
	d.buffersDeleted++
	delete(d.stores, id)
}

func (d *mockDevice) BindBuffer(target Enum, id uint32) {
	d.bindBufferCalls++
	d.boundBuffer = id
}

func (d *mockDevice) BufferData(target Enum, size int, data []byte, usage Enum) {
	store := make([]byte, size)
	copy(store, data)
	d.stores[d.boundBuffer] = store
}

func (d *mockDevice) MapBuffer(target Enum, access Enum) []byte {
	if d.failMap {
		return nil
	}
	store, ok := d.stores[d.boundBuffer]
	if !ok {
		return nil
	}
	d.mapped = d.boundBuffer
	return store
}

func (d *mockDevice) UnmapBuffer(target Enum) bool {
	d.unmapCalls++
	d.mapped = 0
	return true
}

func (d *mockDevice) GenFramebuffer() uint32 {
	d.nextFramebuffer++
	d.attachments[d.nextFramebuffer] = make(map[Enum]uint32)
	return d.nextFramebuffer
}

func (d *mockDevice) DeleteFramebuffer(id uint32) {
	d.framebuffersDeleted++
	delete(d.attachments, id)
}

func (d *mockDevice) BindFramebuffer(target Enum, id uint32) {
	d.bindFramebufferCalls++
	d.boundFramebuffer = id
}

func (d *mockDevice) FramebufferTexture2D(target, attachment, textarget Enum, texture uint32, level int32) {
	points := d.attachments[d.boundFramebuffer]
	if texture == 0 {
		delete(points, attachment)
		return
	}
	points[attachment] = texture
}

func (d *mockDevice) CheckFramebufferStatus(target Enum) Enum {
	if d.statusOverride != 0 {
		return d.statusOverride
	}
	if len(d.attachments[d.boundFramebuffer]) == 0 {
		return FramebufferIncompleteMissingAttachment
	}
	return FramebufferComplete
}

func (d *mockDevice) GenTexture() uint32 {
	d.nextTexture++
	return d.nextTexture
}

func (d *mockDevice) DeleteTexture(id uint32) {
	d.texturesDeleted++
}

// newTestBackend returns an initialized backend over a fresh mock device.
func newTestBackend() (*Backend, *mockDevice) {
	dev := newMockDevice()
	b := New(dev)
	if err := b.Init(); err != nil {
		panic(err)
	}
	return b, dev
}
