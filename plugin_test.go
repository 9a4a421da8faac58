package gs

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"unsafe"
)

// fakeLibrary resolves entry points to in-process Go functions.
type fakeLibrary struct {
	syms   map[string]any
	closed int
}

func (l *fakeLibrary) Bind(fptr any, name string) error {
	impl, ok := l.syms[name]
	if !ok {
		return fmt.Errorf("undefined symbol: %s", name)
	}
	reflect.ValueOf(fptr).Elem().Set(reflect.ValueOf(impl))
	return nil
}

func (l *fakeLibrary) Close() error {
	l.closed++
	return nil
}

var testLibName = append([]byte("TestGS 0.1"), 0)

var testEntryPoints = []string{
	symGetLibType,
	symGetLibName,
	symGIFTransfer,
	symGIFTransfer1,
	symGIFTransfer2,
	symGIFTransfer3,
	symVsync,
	symReset,
	symReadFIFO2,
	symSetGameCRC,
	symFreeze,
	symOpen,
	symClose,
	symShutdown,
	symConfigure,
	symSetBaseMem,
	symSetSettingsDir,
	symInit,
	symMakeSnapshot,
}

func testLibrary() *fakeLibrary {
	return &fakeLibrary{syms: map[string]any{
		symGetLibType:     func() uint32 { return LibTypeGS },
		symGetLibName:     func() *byte { return &testLibName[0] },
		symGIFTransfer:    func(mem unsafe.Pointer, size uint32) {},
		symGIFTransfer1:   func(mem unsafe.Pointer, addr uint32) {},
		symGIFTransfer2:   func(mem unsafe.Pointer, size uint32) {},
		symGIFTransfer3:   func(mem unsafe.Pointer, size uint32) {},
		symVsync:          func(field int32) {},
		symReset:          func() {},
		symReadFIFO2:      func(mem unsafe.Pointer, size int32) {},
		symSetGameCRC:     func(crc uint32, options int32) {},
		symFreeze:         func(mode int32, data unsafe.Pointer) int32 { return 0 },
		symOpen:           func(win unsafe.Pointer, title string, renderer int32) int32 { return 0 },
		symClose:          func() {},
		symShutdown:       func() {},
		symConfigure:      func() {},
		symSetBaseMem:     func(base unsafe.Pointer) {},
		symSetSettingsDir: func(dir string) {},
		symInit:           func() int32 { return 0 },
		symMakeSnapshot:   func(dir string) {},
	}}
}

func TestNew(t *testing.T) {
	lib := testLibrary()
	p, err := New(lib, nil)
	if err != nil {
		t.Fatal(err)
	}
	if lib.closed != 0 {
		t.Errorf("expected module to stay loaded, got %d releases", lib.closed)
	}
	if v := p.LibName(); v != "TestGS 0.1" {
		t.Errorf(`expected library name "TestGS 0.1", got %q`, v)
	}
	if v := p.String(); v != `GS plugin "TestGS 0.1"` {
		t.Errorf("unexpected string %q", v)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/libgs-plugin.so", nil)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected a load error, got %v", err)
	}
	if loadErr.Path != "/nonexistent/libgs-plugin.so" {
		t.Errorf("expected the module path in the error, got %q", loadErr.Path)
	}
	if loadErr.Unwrap() == nil {
		t.Error("expected a wrapped loader error")
	}
}

func TestNewMissingSymbol(t *testing.T) {
	for _, sym := range testEntryPoints {
		t.Run(sym, func(it *testing.T) {
			lib := testLibrary()
			delete(lib.syms, sym)

			_, err := New(lib, nil)
			var symErr *SymbolError
			if !errors.As(err, &symErr) {
				it.Fatalf("expected a symbol error, got %v", err)
			}
			if symErr.Name != sym {
				it.Errorf("expected missing entry point %s, got %s", sym, symErr.Name)
			}
			if lib.closed != 1 {
				it.Errorf("expected module released once, got %d releases", lib.closed)
			}
		})
	}
}

func TestNewWrongLibType(t *testing.T) {
	lib := testLibrary()
	lib.syms[symGetLibType] = func() uint32 { return 0x02 }

	_, err := New(lib, nil)
	var typeErr *LibTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected a library type error, got %v", err)
	}
	if typeErr.Reported != 0x02 {
		t.Errorf("expected reported type 0x02, got %#02x", typeErr.Reported)
	}
	if lib.closed != 1 {
		t.Errorf("expected module released once, got %d releases", lib.closed)
	}
}

func TestUnload(t *testing.T) {
	lib := testLibrary()
	p, err := New(lib, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err = p.Unload(); err != nil {
		t.Fatal(err)
	}
	if lib.closed != 1 {
		t.Fatalf("expected module released once, got %d releases", lib.closed)
	}

	if err = p.Unload(); !errors.Is(err, ErrReleased) {
		t.Fatalf("expected ErrReleased, got %v", err)
	}
	if lib.closed != 1 {
		t.Errorf("expected module released once, got %d releases", lib.closed)
	}
}

func TestInit(t *testing.T) {
	lib := testLibrary()
	p, err := New(lib, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = p.Init(); err != nil {
		t.Fatal(err)
	}

	lib.syms[symInit] = func() int32 { return -1 }
	if p, err = New(lib, nil); err != nil {
		t.Fatal(err)
	}
	if err = p.Init(); !errors.Is(err, ErrInitFailed) {
		t.Fatalf("expected ErrInitFailed, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	var got struct {
		win      unsafe.Pointer
		title    string
		renderer int32
		calls    int
	}
	lib := testLibrary()
	lib.syms[symOpen] = func(win unsafe.Pointer, title string, renderer int32) int32 {
		got.win, got.title, got.renderer = win, title, renderer
		got.calls++
		return 0
	}

	p, err := New(lib, &Config{Renderer: RendererGL})
	if err != nil {
		t.Fatal(err)
	}
	if err = p.Open(nil, "probe window"); err != nil {
		t.Fatal(err)
	}
	if got.calls != 1 {
		t.Fatalf("expected 1 open call, got %d", got.calls)
	}
	if got.win != nil {
		t.Errorf("expected nil window handle, got %p", got.win)
	}
	if got.title != "probe window" {
		t.Errorf(`expected title "probe window", got %q`, got.title)
	}
	if got.renderer != int32(RendererGL) {
		t.Errorf("expected renderer %d, got %d", RendererGL, got.renderer)
	}

	lib.syms[symOpen] = func(win unsafe.Pointer, title string, renderer int32) int32 { return -1 }
	if p, err = New(lib, nil); err != nil {
		t.Fatal(err)
	}
	if err = p.Open(nil, "probe window"); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("expected ErrOpenFailed, got %v", err)
	}
}

func TestCallForwarding(t *testing.T) {
	var got struct {
		crc      uint32
		options  int32
		field    int32
		settings string
		snapdir  string
		base     unsafe.Pointer
		resets   int
		closes   int
	}
	lib := testLibrary()
	lib.syms[symSetGameCRC] = func(crc uint32, options int32) {
		got.crc, got.options = crc, options
	}
	lib.syms[symVsync] = func(field int32) { got.field = field }
	lib.syms[symSetSettingsDir] = func(dir string) { got.settings = dir }
	lib.syms[symMakeSnapshot] = func(dir string) { got.snapdir = dir }
	lib.syms[symSetBaseMem] = func(base unsafe.Pointer) { got.base = base }
	lib.syms[symReset] = func() { got.resets++ }
	lib.syms[symClose] = func() { got.closes++ }

	p, err := New(lib, nil)
	if err != nil {
		t.Fatal(err)
	}

	p.SetGameCRC(0xDEADBEEF, 1)
	if got.crc != 0xDEADBEEF || got.options != 1 {
		t.Errorf("expected CRC deadbeef/1, got %08x/%d", got.crc, got.options)
	}

	p.Vsync(1)
	if got.field != 1 {
		t.Errorf("expected field 1, got %d", got.field)
	}

	p.SetSettingsDir("inis")
	if got.settings != "inis" {
		t.Errorf(`expected settings dir "inis", got %q`, got.settings)
	}

	p.MakeSnapshot("snaps")
	if got.snapdir != "snaps" {
		t.Errorf(`expected snapshot dir "snaps", got %q`, got.snapdir)
	}

	block := make([]byte, 16)
	p.SetBaseMem(unsafe.Pointer(&block[0]))
	if got.base != unsafe.Pointer(&block[0]) {
		t.Errorf("expected base %p, got %p", &block[0], got.base)
	}

	p.Reset()
	p.Close()
	if got.resets != 1 || got.closes != 1 {
		t.Errorf("expected 1 reset and 1 close, got %d and %d", got.resets, got.closes)
	}
}
