package gl

// BindMode selects how a bind request consults the binding cache.
type BindMode int

const (
	// BindCached skips the bind call when the cache already shows the
	// target bound.
	BindCached BindMode = iota
	// BindForced always issues the bind call. Used right after creating
	// an object, when the prior global binding state is unknown and
	// must not be trusted.
	BindForced
)

// State is the per-context binding cache. It tracks the currently bound
// object of each resource kind so redundant bind calls can be skipped, and
// so resources can unbind themselves on destruction without dangling bound
// references.
//
// One State is shared by every resource created under a backend. The
// device model is single-threaded, so no locking is done; callers
// serialize all access onto the context thread.
type State struct {
	dev Device

	arrayBuffer     uint32
	drawFramebuffer uint32
}

// NewState creates a binding cache over dev with nothing bound.
func NewState(dev Device) *State {
	return &State{dev: dev}
}

// BindArrayBuffer makes id the bound array buffer.
func (s *State) BindArrayBuffer(id uint32, mode BindMode) {
	if mode == BindForced || s.arrayBuffer != id {
		s.dev.BindBuffer(ArrayBuffer, id)
		s.arrayBuffer = id
	}
}

// UnbindBuffer releases id from the array buffer binding if it is the one
// bound. Called before deleting a buffer so the cache never points at a
// dead object.
func (s *State) UnbindBuffer(id uint32) {
	if s.arrayBuffer == id {
		s.dev.BindBuffer(ArrayBuffer, 0)
		s.arrayBuffer = 0
	}
}

// BindDrawFramebuffer makes id the bound framebuffer.
func (s *State) BindDrawFramebuffer(id uint32, mode BindMode) {
	if mode == BindForced || s.drawFramebuffer != id {
		s.dev.BindFramebuffer(Framebuffer, id)
		s.drawFramebuffer = id
	}
}

// UnbindFramebuffer releases id from the framebuffer binding if it is the
// one bound.
func (s *State) UnbindFramebuffer(id uint32) {
	if s.drawFramebuffer == id {
		s.dev.BindFramebuffer(Framebuffer, 0)
		s.drawFramebuffer = 0
	}
}
