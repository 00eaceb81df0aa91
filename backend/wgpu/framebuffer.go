package wgpu

import (
	"github.com/gogpu/luma/backend"
)

// framebufferObj is a host-side attachment set. WebGPU validates render
// targets per pass, so completeness is checked here at validation time
// instead of by the device.
type framebufferObj struct {
	width     uint32
	height    uint32
	mipLevels uint32

	// colors maps attachment index to texture; sparse.
	colors map[int]*Texture
	depth  *Texture

	destroyed bool
}

// Size returns the dimensional size fixed at creation.
func (f *framebufferObj) Size() (uint32, uint32) {
	return f.width, f.height
}

// AttachColor records tex as color attachment index.
func (f *framebufferObj) AttachColor(index int, tex backend.Texture) error {
	t, err := f.attachable(tex)
	if err != nil {
		return err
	}
	if f.colors == nil {
		f.colors = make(map[int]*Texture)
	}
	f.colors[index] = t
	return nil
}

// AttachDepth records tex as the depth attachment, replacing any
// previous one.
func (f *framebufferObj) AttachDepth(tex backend.Texture) error {
	t, err := f.attachable(tex)
	if err != nil {
		return err
	}
	f.depth = t
	return nil
}

// attachable checks that tex is a live texture of this backend.
func (f *framebufferObj) attachable(tex backend.Texture) (*Texture, error) {
	if f.destroyed {
		return nil, backend.ErrFramebufferDestroyed
	}
	t, ok := tex.(*Texture)
	if !ok {
		return nil, &backend.TextureError{Err: backend.ErrForeignTexture}
	}
	if t.destroyed {
		return nil, &backend.TextureError{Err: backend.ErrTextureDestroyed}
	}
	return t, nil
}

// Validate checks the attachment set against what a render pass would
// accept. A framebuffer with no attachments is reported first; then each
// attachment is checked for size, renderability, and a uniform sample
// count.
func (f *framebufferObj) Validate() error {
	if f.destroyed {
		return backend.ErrFramebufferDestroyed
	}
	if len(f.colors) == 0 && f.depth == nil {
		return &backend.IncompleteError{Reason: backend.IncompleteMissingAttachment}
	}

	var samples uint32
	check := func(t *Texture) *backend.IncompleteError {
		if t.width != f.width || t.height != f.height {
			return &backend.IncompleteError{Reason: backend.IncompleteAttachment}
		}
		if !t.renderable {
			return &backend.IncompleteError{Reason: backend.IncompleteUnsupported}
		}
		if samples == 0 {
			samples = t.samples
		} else if t.samples != samples {
			return &backend.IncompleteError{Reason: backend.IncompleteMultisample}
		}
		return nil
	}

	for _, t := range f.colors {
		if err := check(t); err != nil {
			return err
		}
	}
	if f.depth != nil {
		if err := check(f.depth); err != nil {
			return err
		}
	}
	return nil
}

// Destroy releases the attachment associations. Attached textures are
// associated, never owned. Idempotent.
func (f *framebufferObj) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	f.colors = nil
	f.depth = nil
}
