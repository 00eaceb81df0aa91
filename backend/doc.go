// Package backend defines the capability contracts a GPU backend must
// satisfy to host luma buffers and framebuffers.
//
// The backend package allows the luma library to target multiple GPU APIs
// through one set of contracts. A concrete backend implements the
// [Backend], [Buffer], [Framebuffer], and [Texture] interfaces against real
// device objects; the typed facade in the root package is the supported way
// to drive them.
//
// # Backend Registration
//
// Backends are registered with a factory and selected at runtime. Backends
// that need a live device connection are registered by the layer that owns
// the connection:
//
//	gl.RegisterDevice(device)
//	b := backend.Get(backend.BackendGL)
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request a
// specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("wgpu")
//
// # Safety Boundary
//
// The [Buffer] mapping contract hands out views into driver-owned memory.
// Using a mapped range after Unmap, or mapping a buffer that already has a
// live mapping, is undefined behavior at the device level. The typed facade
// in the root package enforces these rules with a runtime guard; code that
// talks to this package directly takes on that responsibility itself.
//
// # Available Backends
//
// - "gl": desktop GL-style backend with synchronous mapped memory
// - "wgpu": Pure Go WebGPU backend via gogpu/wgpu HAL
package backend
