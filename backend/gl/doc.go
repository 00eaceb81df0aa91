// Package gl implements the luma backend contracts against a desktop
// GL-style device with synchronous mapped memory.
//
// This is the reference backend: buffers live in driver memory and every
// data transfer goes through a bind, map, copy, unmap sequence. A binding
// cache ([State]) shared by all resources under the backend deduplicates
// bind calls; resources bind through the cache ([BindCached]) except right
// after creation, where the prior global state is unknown and the bind is
// forced ([BindForced]).
//
// The windowing layer owns the live context and supplies a [Device]; this
// package never constructs a device connection:
//
//	gl.RegisterDevice(device)
//	b := backend.Get(backend.BackendGL)
package gl
