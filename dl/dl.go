// Package dl loads shared libraries and resolves exported symbols into
// callable Go functions.
//
// It wraps the platform loader, dlopen on Unix-likes and LoadLibrary on
// Windows, and registers resolved addresses through purego so the entry
// points can be called without cgo.
package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Library is an open shared library.
type Library struct {
	handle uintptr
	path   string
}

// Open loads the shared library at path with lazy symbol binding.
func Open(path string) (*Library, error) {
	handle, err := dlopen(path)
	if err != nil {
		return nil, fmt.Errorf("dl: %w", err)
	}
	return &Library{
		handle: handle,
		path:   path,
	}, nil
}

// Path is the path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Lookup resolves the named symbol to its address.
func (l *Library) Lookup(name string) (uintptr, error) {
	addr, err := dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("dl: %w", err)
	}
	return addr, nil
}

// Bind resolves the named symbol and points fptr, which must be a pointer
// to a function variable matching the symbol's native signature, at it.
func (l *Library) Bind(fptr any, name string) error {
	addr, err := l.Lookup(name)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}

// Close releases the library from the process.
func (l *Library) Close() error {
	return dlclose(l.handle)
}

func (l *Library) String() string {
	return fmt.Sprintf("library %s", l.path)
}
