// Package wgpu implements the luma backend contracts over a WebGPU-style
// HAL device.
//
// WebGPU has no global binding state and no persistent host mapping for
// arbitrary buffers, so the buffer contract is carried by a staging copy:
// Map reads the device store into host memory, Unmap flushes writes back
// through the queue. Framebuffer completeness is checked host-side at
// validation time since the API validates render targets per pass rather
// than per object.
//
// The windowing layer owns the device and queue and registers them once:
//
//	wgpu.RegisterDevice(device, queue)
//	b := backend.Get(backend.BackendWGPU)
package wgpu
