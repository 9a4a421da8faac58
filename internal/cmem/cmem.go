// Package cmem covers the C memory interop the plugin bindings need:
// allocation of regions shared with native code, and C string decoding.
package cmem

import (
	"fmt"
	"unsafe"
)

// Region is a block of memory handed to native code. On Linux it is an
// anonymous mapping, so the base address is page aligned; elsewhere it
// falls back to the Go heap.
type Region struct {
	buf    []byte
	mapped bool
}

// AllocRegion allocates a zeroed region of size bytes.
func AllocRegion(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cmem: invalid region size %d", size)
	}
	return allocRegion(size)
}

// Bytes is the region's backing memory.
func (r *Region) Bytes() []byte {
	return r.buf
}

// Size is the region length in bytes.
func (r *Region) Size() int {
	return len(r.buf)
}

// Ptr is the region base, in the form native calls take it.
func (r *Region) Ptr() unsafe.Pointer {
	return unsafe.Pointer(&r.buf[0])
}

// Close releases the region. The base pointer must no longer be held by
// native code. Closing twice is a no-op.
func (r *Region) Close() error {
	return r.free()
}

// GoString decodes a NUL-terminated C string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*byte)(ptr) != 0; ptr = unsafe.Add(ptr, 1) {
		n++
	}
	return string(unsafe.Slice(p, n))
}
