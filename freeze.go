package gs

import (
	"fmt"
	"runtime"
	"unsafe"
)

// FreezeMode selects what a Freeze call does.
type FreezeMode int32

// Freeze modes.
const (
	FreezeLoad FreezeMode = iota // restore plugin state from the payload
	FreezeSave                   // write plugin state into the payload
	FreezeSize                   // report the payload size FreezeSave needs
)

func (m FreezeMode) String() string {
	switch m {
	case FreezeLoad:
		return "load"
	case FreezeSave:
		return "save"
	case FreezeSize:
		return "size"
	default:
		return fmt.Sprintf("mode(%d)", int32(m))
	}
}

// freezeData is the native freeze argument, passed by address.
type freezeData struct {
	size int32
	data *byte
}

// Freeze drives the plugin's save-state entry point. For FreezeSize buf
// may be nil; the plugin-reported payload size is returned. For FreezeSave
// and FreezeLoad buf carries the payload. A negative status means the
// plugin cannot use the payload, usually because it was written by a
// different plugin or version, and is reported as ErrIncompatibleDump.
func (p *Plugin) Freeze(mode FreezeMode, buf []byte) (int, error) {
	fd := freezeData{size: int32(len(buf))}
	if len(buf) > 0 {
		fd.data = &buf[0]
	}
	status := p.freeze(int32(mode), unsafe.Pointer(&fd))
	runtime.KeepAlive(buf)
	if status < 0 {
		return 0, ErrIncompatibleDump
	}
	return int(fd.size), nil
}

// FreezeSize reports how many payload bytes FreezeSave needs.
func (p *Plugin) FreezeSize() (int, error) {
	return p.Freeze(FreezeSize, nil)
}

// FreezeSave writes the plugin state into buf, sized per FreezeSize.
func (p *Plugin) FreezeSave(buf []byte) error {
	_, err := p.Freeze(FreezeSave, buf)
	return err
}

// FreezeLoad restores plugin state captured by FreezeSave.
func (p *Plugin) FreezeLoad(buf []byte) error {
	_, err := p.Freeze(FreezeLoad, buf)
	return err
}
