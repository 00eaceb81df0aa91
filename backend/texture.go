package backend

// Filter selects how a sampler filters texels.
type Filter int

const (
	// FilterNearest samples the nearest texel.
	FilterNearest Filter = iota
	// FilterLinear interpolates between neighboring texels.
	FilterLinear
)

// Wrap selects how a sampler treats coordinates outside [0, 1].
type Wrap int

const (
	// WrapClampToEdge clamps coordinates to the edge texel.
	WrapClampToEdge Wrap = iota
	// WrapRepeat tiles the texture.
	WrapRepeat
	// WrapMirroredRepeat tiles the texture, mirroring every other tile.
	WrapMirroredRepeat
)

// Sampler configures how framebuffer attachments are sampled when read
// back as textures. It is consumed opaquely at framebuffer creation;
// interpretation belongs to the texture subsystem.
type Sampler struct {
	// MinFilter is the minification filter.
	MinFilter Filter
	// MagFilter is the magnification filter.
	MagFilter Filter
	// WrapU is the wrap mode along the horizontal axis.
	WrapU Wrap
	// WrapV is the wrap mode along the vertical axis.
	WrapV Wrap
}

// TextureDescriptor describes a texture to create for attachment use.
type TextureDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// SampleCount is the number of samples per pixel (0 means 1).
	SampleCount uint32

	// Renderable marks the texture as usable as a render attachment.
	Renderable bool
}

// Texture is an opaque device texture consumed by framebuffer attachment
// operations. The pixel-format subsystem owns texture semantics; this
// contract carries only what attachments need. Each backend accepts only
// its own texture type and reports ErrForeignTexture otherwise.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() uint32

	// Height returns the texture height in pixels.
	Height() uint32

	// SampleCount returns the number of samples per pixel.
	SampleCount() uint32

	// Destroy releases the device texture. Idempotent.
	Destroy()
}
