package gs

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/ps2emu/gs/dl"
	"github.com/ps2emu/gs/internal/cmem"
)

// Library is a loaded module the GS entry points are resolved from.
// dl.Library implements it; tests substitute in-process fakes.
type Library interface {
	// Bind resolves the named symbol and points fptr at it.
	Bind(fptr any, name string) error

	// Close releases the module.
	Close() error
}

// Plugin is a loaded GS plugin with its entry-point table bound.
type Plugin struct {
	lib      Library
	renderer Renderer
	released bool

	getLibType     func() uint32
	getLibName     func() *byte
	gifTransfer    func(mem unsafe.Pointer, size uint32)
	gifTransfer1   func(mem unsafe.Pointer, addr uint32)
	gifTransfer2   func(mem unsafe.Pointer, size uint32)
	gifTransfer3   func(mem unsafe.Pointer, size uint32)
	vsync          func(field int32)
	reset          func()
	readFIFO2      func(mem unsafe.Pointer, size int32)
	setGameCRC     func(crc uint32, options int32)
	freeze         func(mode int32, data unsafe.Pointer) int32
	open           func(win unsafe.Pointer, title string, renderer int32) int32
	close          func()
	shutdown       func()
	configure      func()
	setBaseMem     func(base unsafe.Pointer)
	setSettingsDir func(dir string)
	init           func() int32
	makeSnapshot   func(dir string)
}

// Load opens the GS plugin module at path and binds its entry-point table.
// Loading is all or nothing: on any failure the module is released again
// and no binding is returned. Keep at most one binding per module path;
// loader handle reference counts are not portable.
func Load(path string, config *Config) (*Plugin, error) {
	lib, err := dl.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if debug {
		log.Printf("gs: loaded %s", path)
	}
	return New(lib, config)
}

// New binds the GS entry points exported by lib. The library is closed
// before returning an error, both when the module reports the wrong
// library type and when an entry point is missing.
func New(lib Library, config *Config) (*Plugin, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	p := &Plugin{
		lib:      lib,
		renderer: config.Renderer,
	}

	if err := lib.Bind(&p.getLibType, symGetLibType); err != nil {
		_ = lib.Close()
		return nil, &SymbolError{Name: symGetLibType, Err: err}
	}
	if t := p.getLibType(); t != LibTypeGS {
		_ = lib.Close()
		return nil, &LibTypeError{Reported: t}
	}

	for _, bind := range []struct {
		fptr any
		name string
	}{
		{&p.gifTransfer1, symGIFTransfer1},
		{&p.gifTransfer2, symGIFTransfer2},
		{&p.gifTransfer3, symGIFTransfer3},
		{&p.gifTransfer, symGIFTransfer},
		{&p.reset, symReset},
		{&p.open, symOpen},
		{&p.close, symClose},
		{&p.shutdown, symShutdown},
		{&p.configure, symConfigure},
		{&p.init, symInit},
		{&p.setBaseMem, symSetBaseMem},
		{&p.setSettingsDir, symSetSettingsDir},
		{&p.setGameCRC, symSetGameCRC},
		{&p.freeze, symFreeze},
		{&p.readFIFO2, symReadFIFO2},
		{&p.getLibName, symGetLibName},
		{&p.makeSnapshot, symMakeSnapshot},
		{&p.vsync, symVsync},
	} {
		if err := lib.Bind(bind.fptr, bind.name); err != nil {
			_ = lib.Close()
			return nil, &SymbolError{Name: bind.name, Err: err}
		}
	}

	if debug {
		log.Printf("gs: bound %q", p.LibName())
	}
	return p, nil
}

// Unload releases the plugin module. The binding must not be used
// afterwards; a second call reports ErrReleased without touching the
// module again.
func (p *Plugin) Unload() error {
	if p.released {
		return ErrReleased
	}
	p.released = true
	return p.lib.Close()
}

// LibName is the name the plugin publishes for itself.
func (p *Plugin) LibName() string {
	return cmem.GoString(p.getLibName())
}

func (p *Plugin) String() string {
	return fmt.Sprintf("GS plugin %q", p.LibName())
}
