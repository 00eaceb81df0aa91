// Package luma provides a typed, safe facade over GPU buffer and
// framebuffer resources.
//
// # Overview
//
// luma is a graphics-backend abstraction layer for the GoGPU ecosystem.
// Rendering code allocates, mutates, and destroys GPU-resident buffers and
// render targets through one set of capability contracts (see the backend
// package); a concrete backend implements those contracts against real
// device objects. Two backends ship with the library: a desktop GL-style
// backend built on synchronous mapped memory, and a Pure Go WebGPU backend
// built on gogpu/wgpu.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/luma"
//		"github.com/gogpu/luma/backend"
//		"github.com/gogpu/luma/backend/gl"
//	)
//
//	// The windowing layer owns the device connection and registers it.
//	gl.RegisterDevice(device)
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	// A typed buffer of four floats, device-resident.
//	buf, err := luma.NewBuffer[float32](b, 4)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer buf.Destroy()
//
//	_ = buf.WriteAll([]float32{1, 2, 3, 4})
//	v, ok := buf.At(2) // 3, true
//
// # Resource Safety
//
// Handles to device memory must be created, bound, mapped, mutated, and
// destroyed in a strict order. The facade turns violations of that order
// into caught errors instead of undefined device behavior: element and
// bulk operations are complete map/copy/unmap round trips, mapped views
// are scoped objects that must be closed exactly once, and a runtime guard
// rejects a mutable view while any other view on the same buffer is open.
// Go has no borrow checker, so the guard is the contract.
//
// Per-element access maps and unmaps the buffer on every call and is
// expected to be slow; callers needing many reads or writes should open a
// view once with [Buffer.Slice] or [Buffer.SliceMut].
//
// # Concurrency
//
// The device driver model underneath is single-threaded. All operations on
// buffers and framebuffers created under one backend must be serialized
// onto the thread that owns the rendering context.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Buffer[T], BufferSlice[T], BufferSliceMut[T], Framebuffer
//   - backend: capability contracts, error taxonomy, backend registry
//   - backend/gl: desktop GL-style reference backend (mapped memory)
//   - backend/wgpu: Pure Go WebGPU backend via gogpu/wgpu HAL
package luma
