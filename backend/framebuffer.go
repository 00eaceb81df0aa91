package backend

import "fmt"

// IncompleteReason is the device-reported reason a framebuffer failed
// completeness validation. When several conditions hold at once the device
// reports whichever it checks first; no cross-reason priority is defined
// by this contract.
type IncompleteReason int

const (
	// IncompleteUndefined is unspecified driver-level incompleteness.
	IncompleteUndefined IncompleteReason = iota
	// IncompleteAttachment means a color or depth attachment is invalid.
	IncompleteAttachment
	// IncompleteMissingAttachment means the framebuffer has no attachments.
	IncompleteMissingAttachment
	// IncompleteDrawBuffer means a draw buffer references no attachment.
	IncompleteDrawBuffer
	// IncompleteReadBuffer means the read buffer references no attachment.
	IncompleteReadBuffer
	// IncompleteUnsupported means the device rejected the format combination.
	IncompleteUnsupported
	// IncompleteMultisample means attachment sample counts disagree.
	IncompleteMultisample
	// IncompleteLayerTargets means layered attachments disagree.
	IncompleteLayerTargets
)

// String returns the string representation of IncompleteReason.
func (r IncompleteReason) String() string {
	switch r {
	case IncompleteUndefined:
		return "undefined"
	case IncompleteAttachment:
		return "incomplete attachment"
	case IncompleteMissingAttachment:
		return "missing attachment"
	case IncompleteDrawBuffer:
		return "incomplete draw buffer"
	case IncompleteReadBuffer:
		return "incomplete read buffer"
	case IncompleteUnsupported:
		return "unsupported"
	case IncompleteMultisample:
		return "incomplete multisample"
	case IncompleteLayerTargets:
		return "incomplete layer targets"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// IncompleteError reports a framebuffer that failed completeness
// validation.
type IncompleteError struct {
	// Reason is the device-reported incompleteness reason.
	Reason IncompleteReason
}

func (e *IncompleteError) Error() string {
	return "backend: incomplete framebuffer: " + e.Reason.String()
}

// TextureError wraps an error from the texture subsystem encountered while
// attaching a texture to a framebuffer. The inner error is propagated
// unchanged; unwrap to inspect the cause.
type TextureError struct {
	// Err is the propagated texture-subsystem error.
	Err error
}

func (e *TextureError) Error() string {
	return "backend: framebuffer texture error: " + e.Err.Error()
}

func (e *TextureError) Unwrap() error { return e.Err }

// FramebufferDescriptor describes a framebuffer to create.
type FramebufferDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Width is the render target width in pixels.
	Width uint32

	// Height is the render target height in pixels.
	Height uint32

	// MipLevels is the number of mipmap levels (0 means none beyond the
	// base level).
	MipLevels uint32

	// Sampler configures sampling of the framebuffer's attachments when
	// read back as textures.
	Sampler Sampler
}

// Framebuffer is a device-resident render target set.
//
// A framebuffer starts with no attachments. Color textures are attached at
// sparse indices and at most one depth texture may be attached; a second
// depth attachment replaces the first. Completeness is validated before
// first use via Validate.
//
// Attached textures are associated, not owned: destroying the framebuffer
// releases the device framebuffer object and the associations, never the
// textures.
type Framebuffer interface {
	// Size returns the dimensional size fixed at creation.
	Size() (width, height uint32)

	// AttachColor binds tex as color attachment index.
	// Returns a *TextureError if the texture itself is invalid.
	AttachColor(index int, tex Texture) error

	// AttachDepth binds tex as the single depth attachment, replacing
	// any previous depth attachment.
	// Returns a *TextureError if the texture itself is invalid.
	AttachDepth(tex Texture) error

	// Validate checks completeness. Returns nil when the framebuffer is
	// complete, or an *IncompleteError carrying the device-reported
	// reason.
	Validate() error

	// Destroy releases the device framebuffer object and all attachment
	// associations. Idempotent.
	Destroy()
}
