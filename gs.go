// Package gs binds PS2 Graphics Synthesizer plugin modules.
//
// A GS plugin is a native shared library that exports the PS2E plugin
// entry points. Load opens such a module, checks that it really is a GS
// plugin, resolves the complete entry-point table up front and exposes the
// entry points as typed methods on Plugin. After a successful Load every
// method is a direct call into the module; none of them resolves symbols
// or allocates.
//
// Calls into the module are synchronous and are not serialized by the
// binding; callers drive the plugin from one goroutine, as emulator cores
// do.
package gs

import (
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("GS_DEBUG") != ""
}

// LibTypeGS is the library type tag a GS plugin reports.
const LibTypeGS = 0x01

// Renderer selects the plugin's rendering backend (GSdx numbering).
type Renderer int32

// Known renderers.
const (
	RendererDefault Renderer = 0 // backend chosen by the plugin configuration
	RendererD3D     Renderer = 3
	RendererD3DSoft Renderer = 4
	RendererNull    Renderer = 11
	RendererGL      Renderer = 12
	RendererGLSoft  Renderer = 13
)

func (r Renderer) String() string {
	switch r {
	case RendererDefault:
		return "default"
	case RendererD3D:
		return "Direct3D"
	case RendererD3DSoft:
		return "Direct3D software"
	case RendererNull:
		return "null"
	case RendererGL:
		return "OpenGL"
	case RendererGLSoft:
		return "OpenGL software"
	default:
		return "unknown"
	}
}

// Config is the plugin configuration.
type Config struct {
	// Renderer is handed to the plugin when the output window opens.
	Renderer Renderer
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Renderer: RendererDefault,
}
