package wgpu

import (
	"github.com/gogpu/wgpu/hal"
)

// Texture is a device texture usable as a framebuffer attachment.
type Texture struct {
	tex        hal.Texture
	width      uint32
	height     uint32
	samples    uint32
	renderable bool

	device hal.Device

	destroyed bool
}

// HAL returns the underlying device texture.
func (t *Texture) HAL() hal.Texture { return t.tex }

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.height }

// SampleCount returns the number of samples per pixel.
func (t *Texture) SampleCount() uint32 { return t.samples }

// Destroy releases the device texture. Idempotent.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.device.DestroyTexture(t.tex)
}
