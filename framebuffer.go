package luma

import (
	"fmt"

	"github.com/gogpu/luma/backend"
)

// FramebufferState tracks a framebuffer through attachment and validation.
type FramebufferState int

const (
	// FramebufferUnattached means no attachment has been made yet.
	FramebufferUnattached FramebufferState = iota
	// FramebufferAttaching means at least one attachment has been made
	// but the framebuffer has not been validated.
	FramebufferAttaching
	// FramebufferComplete means validation succeeded.
	FramebufferComplete
	// FramebufferIncomplete means validation failed.
	FramebufferIncomplete
)

// String returns the string representation of FramebufferState.
func (s FramebufferState) String() string {
	switch s {
	case FramebufferUnattached:
		return "Unattached"
	case FramebufferAttaching:
		return "Attaching"
	case FramebufferComplete:
		return "Complete"
	case FramebufferIncomplete:
		return "Incomplete"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Framebuffer is a device-resident render target set: color textures at
// sparse indices plus an optional depth texture, validated for
// completeness before first use.
//
// Attaching after a successful validation moves the framebuffer back to
// the Attaching state; validate again before use.
//
// Framebuffers are not safe for concurrent use. Serialize all access onto
// the thread that owns the rendering context.
type Framebuffer struct {
	raw   backend.Framebuffer
	state FramebufferState

	destroyed bool
}

// NewFramebuffer allocates a device framebuffer sized to width and height,
// with mipLevels mipmap levels and the given sampler configuration for its
// future attachments. The framebuffer starts in the Unattached state.
func NewFramebuffer(b backend.Backend, width, height, mipLevels uint32, sampler backend.Sampler) (*Framebuffer, error) {
	raw, err := b.CreateFramebuffer(&backend.FramebufferDescriptor{
		Width:     width,
		Height:    height,
		MipLevels: mipLevels,
		Sampler:   sampler,
	})
	if err != nil {
		return nil, err
	}
	Logger().Debug("framebuffer created", "width", width, "height", height, "mipLevels", mipLevels)
	return &Framebuffer{raw: raw}, nil
}

// State returns the current lifecycle state.
func (f *Framebuffer) State() FramebufferState { return f.state }

// Size returns the dimensional size fixed at creation.
func (f *Framebuffer) Size() (width, height uint32) {
	return f.raw.Size()
}

// AttachColor binds tex as color attachment index. A texture-derived
// failure is reported as a *backend.TextureError; attachment-level device
// constraints surface later at validation time.
func (f *Framebuffer) AttachColor(index int, tex backend.Texture) error {
	if f.destroyed {
		return backend.ErrFramebufferDestroyed
	}
	if err := f.raw.AttachColor(index, tex); err != nil {
		return err
	}
	f.state = FramebufferAttaching
	return nil
}

// AttachDepth binds tex as the single depth attachment. A second call
// replaces the previous depth attachment.
func (f *Framebuffer) AttachDepth(tex backend.Texture) error {
	if f.destroyed {
		return backend.ErrFramebufferDestroyed
	}
	if err := f.raw.AttachDepth(tex); err != nil {
		return err
	}
	f.state = FramebufferAttaching
	return nil
}

// Validate finalizes the attachment set. On success the framebuffer moves
// to the Complete state and is ready for use as a render target; on
// failure it moves to Incomplete and the returned *backend.IncompleteError
// carries the device-reported reason. A framebuffer with no attachments at
// all fails with the MissingAttachment reason.
func (f *Framebuffer) Validate() error {
	if f.destroyed {
		return backend.ErrFramebufferDestroyed
	}
	if err := f.raw.Validate(); err != nil {
		f.state = FramebufferIncomplete
		return err
	}
	f.state = FramebufferComplete
	return nil
}

// Destroy releases the device framebuffer object and all attachment
// associations. Attached textures are not destroyed. Destroying twice is
// a no-op.
func (f *Framebuffer) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	f.raw.Destroy()
	Logger().Debug("framebuffer destroyed")
}
