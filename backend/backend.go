package backend

import "errors"

// Backend name constants.
const (
	// BackendGL is the name of the desktop GL-style mapped-memory backend.
	BackendGL = "gl"
	// BackendWGPU is the name of the Pure Go WebGPU backend (gogpu/wgpu).
	BackendWGPU = "wgpu"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrNilDevice is returned when a backend is constructed without a
	// live device connection.
	ErrNilDevice = errors.New("backend: device is nil")
)

// Backend is the interface GPU backends implement to host buffers and
// framebuffers. It abstracts the device API, allowing the library to
// support multiple backends (desktop GL, WebGPU via wgpu, etc.).
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
//
// All operations assume exclusive access to the device context for their
// duration. Callers must serialize device access onto the thread that owns
// the rendering context; no internal locking is provided.
type Backend interface {
	// Name returns the backend identifier (e.g., "gl", "wgpu").
	Name() string

	// Init initializes the backend.
	// This should be called before any resource operations.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	// Live resources created by the backend are not tracked; the caller
	// destroys them before closing.
	Close()

	// CreateBuffer allocates a device buffer of the given byte size.
	// The backing store is uninitialized.
	CreateBuffer(size uint64) (Buffer, error)

	// CreateBufferInit allocates a device buffer sized and initialized
	// from data.
	CreateBufferInit(data []byte) (Buffer, error)

	// CreateTexture allocates a device texture usable as a framebuffer
	// attachment. The pixel-format subsystem proper lives outside this
	// package; the descriptor carries only what attachments consume.
	CreateTexture(desc *TextureDescriptor) (Texture, error)

	// CreateFramebuffer allocates a device framebuffer object sized to
	// the descriptor. The framebuffer starts with no attachments.
	CreateFramebuffer(desc *FramebufferDescriptor) (Framebuffer, error)
}
