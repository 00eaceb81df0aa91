package gl

// Texture is a device texture usable as a framebuffer attachment. Storage
// and pixel-format configuration belong to the texture subsystem; this
// type carries only what the framebuffer contract consumes.
type Texture struct {
	id      uint32
	width   uint32
	height  uint32
	samples uint32

	dev Device

	destroyed bool
}

// ID returns the device object name.
func (t *Texture) ID() uint32 { return t.id }

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.height }

// SampleCount returns the number of samples per pixel.
func (t *Texture) SampleCount() uint32 { return t.samples }

// Destroy deletes the device texture. Idempotent.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.dev.DeleteTexture(t.id)
}
