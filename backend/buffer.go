package backend

import "fmt"

// MapMode selects the access granted by a buffer mapping.
type MapMode int

const (
	// MapRead maps the buffer for reading only. Writes through the
	// mapped range are discarded on unmap.
	MapRead MapMode = iota
	// MapWrite maps the buffer for writing. Reads through the mapped
	// range observe the current contents.
	MapWrite
	// MapReadWrite maps the buffer for reading and writing.
	MapReadWrite
)

// String returns the string representation of MapMode.
func (m MapMode) String() string {
	switch m {
	case MapRead:
		return "Read"
	case MapWrite:
		return "Write"
	case MapReadWrite:
		return "ReadWrite"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Buffer is a device-resident buffer resource.
//
// A Buffer is an opaque handle plus metadata; all byte movement goes
// through the mapping contract. Implementations ensure the resource is the
// currently bound one of its kind before touching device memory, using
// their context's binding cache.
//
// Lifecycle:
//  1. Create via Backend.CreateBuffer or Backend.CreateBufferInit
//  2. Map() to obtain a host-addressable view, Unmap() it when done
//  3. Destroy() exactly once when the buffer is no longer needed
//
// A Buffer must not be used after Destroy. At most one mapping may be live
// at a time; mapping a buffer that already has a live mapping is undefined
// behavior at the device level. The typed facade in the root package
// enforces this with a runtime guard.
type Buffer interface {
	// Size returns the buffer size in bytes.
	Size() uint64

	// Map maps the buffer's backing store into host memory.
	// Returns ErrMapFailed if the device refuses the mapping.
	Map(mode MapMode) (MappedRange, error)

	// Destroy releases the device buffer, unbinding it from the
	// context's binding cache first. Idempotent.
	Destroy()
}

// MappedRange is a scoped host-addressable view over a buffer's backing
// store. The view is valid from Map until Unmap; every Map must be paired
// with exactly one Unmap, on every exit path, or the device-level mapping
// leaks and subsequent operations on the buffer are undefined.
type MappedRange interface {
	// Bytes returns the mapped memory. The slice must not be retained or
	// used after Unmap. Returns nil once unmapped.
	Bytes() []byte

	// Unmap releases the mapping, flushing writes for writable modes.
	// Unmapping twice is a no-op.
	Unmap() error
}
