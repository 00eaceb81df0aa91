package luma

import "unsafe"

// Element is the set of scalar types that can live in a device buffer:
// fixed-size numeric types whose in-memory representation can be viewed as
// raw bytes. Aggregate types are excluded; pack them into scalar streams
// the way the device expects them.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// elemSize returns the byte size of T.
func elemSize[T Element]() uint64 {
	var zero T
	return uint64(unsafe.Sizeof(zero))
}

// elemBytes views values as their raw byte representation. The returned
// slice aliases values and is only valid while values is reachable.
func elemBytes[T Element](values []T) []byte {
	if len(values) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*int(elemSize[T]()))
}

// bytesAsElems reinterprets mapped bytes as a contiguous element slice of
// length n. The returned slice aliases raw; it must not outlive the
// mapping raw came from.
func bytesAsElems[T Element](raw []byte, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
}
