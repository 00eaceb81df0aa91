package gl

import (
	"github.com/gogpu/luma/backend"
)

// framebufferObj is a device framebuffer object plus its attachment
// associations. Attached textures are associated, never owned.
type framebufferObj struct {
	id        uint32
	width     uint32
	height    uint32
	mipLevels uint32

	state *State
	dev   Device

	// colors maps attachment index to texture object name; sparse.
	colors map[int]uint32
	depth  uint32

	destroyed bool
}

// Size returns the dimensional size fixed at creation.
func (f *framebufferObj) Size() (uint32, uint32) {
	return f.width, f.height
}

// AttachColor binds tex as color attachment index.
func (f *framebufferObj) AttachColor(index int, tex backend.Texture) error {
	t, err := f.attachable(tex)
	if err != nil {
		return err
	}
	f.state.BindDrawFramebuffer(f.id, BindCached)
	f.dev.FramebufferTexture2D(Framebuffer, ColorAttachment0+Enum(index), Texture2D, t.id, 0)
	if f.colors == nil {
		f.colors = make(map[int]uint32)
	}
	f.colors[index] = t.id
	return nil
}

// AttachDepth binds tex as the depth attachment, replacing any previous
// one.
func (f *framebufferObj) AttachDepth(tex backend.Texture) error {
	t, err := f.attachable(tex)
	if err != nil {
		return err
	}
	f.state.BindDrawFramebuffer(f.id, BindCached)
	f.dev.FramebufferTexture2D(Framebuffer, DepthAttachment, Texture2D, t.id, 0)
	f.depth = t.id
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

// Validate asks the device for the completeness status of the framebuffer
// and maps it onto the contract's reason taxonomy. When several
// incompleteness conditions hold the device reports whichever it checks
// first.
func (f *framebufferObj) Validate() error {
	if f.destroyed {
		return backend.ErrFramebufferDestroyed
	}
	f.state.BindDrawFramebuffer(f.id, BindCached)
	status := f.dev.CheckFramebufferStatus(Framebuffer)
	if status == FramebufferComplete {
		return nil
	}
	return &backend.IncompleteError{Reason: incompleteReason(status)}
}

// incompleteReason maps a device status code to the contract taxonomy.
// Unknown codes collapse to IncompleteUndefined.
func incompleteReason(status Enum) backend.IncompleteReason {
	switch status {
	case FramebufferIncompleteAttachment:
		return backend.IncompleteAttachment
	case FramebufferIncompleteMissingAttachment:
		return backend.IncompleteMissingAttachment
	case FramebufferIncompleteDrawBuffer:
		return backend.IncompleteDrawBuffer
	case FramebufferIncompleteReadBuffer:
		return backend.IncompleteReadBuffer
	case FramebufferUnsupported:
		return backend.IncompleteUnsupported
	case FramebufferIncompleteMultisample:
		return backend.IncompleteMultisample
	case FramebufferIncompleteLayerTargets:
		return backend.IncompleteLayerTargets
	default:
		return backend.IncompleteUndefined
	}
}

// Destroy unbinds the framebuffer and deletes the device object,
// releasing the attachment associations. Idempotent.
func (f *framebufferObj) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	f.state.UnbindFramebuffer(f.id)
	f.dev.DeleteFramebuffer(f.id)
	f.colors = nil
	f.depth = 0
}
