package gs

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInitFailed       = errors.New("gs: plugin initialization failed")
	ErrOpenFailed       = errors.New("gs: plugin refused to open")
	ErrIncompatibleDump = errors.New("gs: incompatible freeze data")
	ErrReleased         = errors.New("gs: plugin already released")
)

// LoadError reports a module that could not be opened by the system
// loader.
type LoadError struct {
	// Path of the module.
	Path string

	// Err is the loader error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("gs: can't load plugin %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SymbolError reports an entry point the module does not export.
type SymbolError struct {
	// Name of the entry point.
	Name string

	// Err is the loader error.
	Err error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("gs: plugin does not export %s: %v", e.Name, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// LibTypeError reports a module that loaded fine but is not a GS plugin.
type LibTypeError struct {
	// Reported is the library type the module claims.
	Reported uint32
}

func (e *LibTypeError) Error() string {
	return fmt.Sprintf("gs: not a GS plugin: module reports library type %#02x, want %#02x", e.Reported, LibTypeGS)
}
