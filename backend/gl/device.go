package gl

// Enum is a GL enumerant.
type Enum uint32

// Targets and usage hints.
const (
	// ArrayBuffer is the generic buffer binding target.
	ArrayBuffer Enum = 0x8892
	// StreamDraw hints a store written once and drawn a few times.
	StreamDraw Enum = 0x88E0
	// Framebuffer is the framebuffer binding target.
	Framebuffer Enum = 0x8D40
	// Texture2D is the two-dimensional texture target.
	Texture2D Enum = 0x0DE1
)

// Map access modes.
const (
	// ReadOnly maps a buffer store for reading.
	ReadOnly Enum = 0x88B8
	// WriteOnly maps a buffer store for writing.
	WriteOnly Enum = 0x88B9
	// ReadWrite maps a buffer store for reading and writing.
	ReadWrite Enum = 0x88BA
)

// Attachment points.
const (
	// ColorAttachment0 is the first color attachment point; attachment
	// index i uses ColorAttachment0 + i.
	ColorAttachment0 Enum = 0x8CE0
	// DepthAttachment is the depth attachment point.
	DepthAttachment Enum = 0x8D00
)

// Framebuffer completeness status codes.
const (
	FramebufferComplete                    Enum = 0x8CD5
	FramebufferIncompleteAttachment        Enum = 0x8CD6
	FramebufferIncompleteMissingAttachment Enum = 0x8CD7
	FramebufferIncompleteDrawBuffer        Enum = 0x8CDB
	FramebufferIncompleteReadBuffer        Enum = 0x8CDC
	FramebufferUnsupported                 Enum = 0x8CDD
	FramebufferIncompleteMultisample       Enum = 0x8D56
	FramebufferIncompleteLayerTargets      Enum = 0x8DA8
	FramebufferUndefined                   Enum = 0x8219
)

// Device is the slice of a GL-style context this backend drives. The
// windowing layer owns the live context and supplies the Device; this
// package never creates or destroys the connection.
//
// All calls assume the context is current on the calling thread. Object
// names are plain uint32 handles, 0 meaning "no object", as in GL.
type Device interface {
	// GenBuffer creates a new buffer object name.
	GenBuffer() uint32

	// DeleteBuffer deletes a buffer object.
	DeleteBuffer(id uint32)

	// BindBuffer binds a buffer object to a target. Binding 0 unbinds.
	BindBuffer(target Enum, id uint32)

	// BufferData allocates the bound buffer's store with size bytes,
	// copying from data when data is non-nil.
	BufferData(target Enum, size int, data []byte, usage Enum)

	// MapBuffer maps the bound buffer's store into host memory.
	// Returns nil when the device refuses the mapping.
	MapBuffer(target Enum, access Enum) []byte

	// UnmapBuffer releases the bound buffer's mapping. Returns false
	// when the store was corrupted while mapped.
	UnmapBuffer(target Enum) bool

	// GenFramebuffer creates a new framebuffer object name.
	GenFramebuffer() uint32

	// DeleteFramebuffer deletes a framebuffer object.
	DeleteFramebuffer(id uint32)

	// BindFramebuffer binds a framebuffer object to a target.
	BindFramebuffer(target Enum, id uint32)

	// FramebufferTexture2D attaches a texture level to an attachment
	// point of the bound framebuffer. Texture name 0 detaches.
	FramebufferTexture2D(target, attachment, textarget Enum, texture uint32, level int32)

	// CheckFramebufferStatus reports the completeness status of the
	// bound framebuffer.
	CheckFramebufferStatus(target Enum) Enum

	// GenTexture creates a new texture object name.
	GenTexture() uint32

	// DeleteTexture deletes a texture object.
	DeleteTexture(id uint32)
}
