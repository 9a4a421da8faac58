// Package regs models the GS privileged register block a host shares
// with its graphics plugin.
//
// The plugin is handed the block's base address through GSsetBaseMem and
// reads the display configuration out of it on every vsync. The host owns
// the memory and programs the registers through Memory. Only the
// privileged space lives here; the general registers travel inside the
// GIF stream, which the bindings treat as opaque.
package regs

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/ps2emu/gs/internal/cmem"
)

// Size is the size of the privileged register block in bytes.
const Size = 0x2000

// Registers (from the GS User's Manual, privileged space).
const (
	PMODE    = 0x0000 // PCRTC mode
	SMODE1   = 0x0010 // sync control, PLL and DAC
	SMODE2   = 0x0020 // sync control, interlace
	SRFSH    = 0x0030 // DRAM refresh
	SYNCH1   = 0x0040 // horizontal sync timing
	SYNCH2   = 0x0050 // horizontal sync timing
	SYNCV    = 0x0060 // vertical sync timing
	DISPFB1  = 0x0070 // display buffer, read circuit 1
	DISPLAY1 = 0x0080 // display position, read circuit 1
	DISPFB2  = 0x0090 // display buffer, read circuit 2
	DISPLAY2 = 0x00A0 // display position, read circuit 2
	EXTBUF   = 0x00B0 // feedback write buffer
	EXTDATA  = 0x00C0 // feedback write setting
	EXTWRITE = 0x00D0 // feedback write control
	BGCOLOR  = 0x00E0 // background color
	CSR      = 0x1000 // status and control
	IMR      = 0x1010 // interrupt mask
	BUSDIR   = 0x1040 // host bus direction
	SIGLBLID = 0x1080 // SIGNAL and LABEL ids
)

// Memory is a host-allocated privileged register block.
type Memory struct {
	region *cmem.Region
}

// New allocates a zeroed register block.
func New() (*Memory, error) {
	region, err := cmem.AllocRegion(Size)
	if err != nil {
		return nil, fmt.Errorf("regs: %w", err)
	}
	return &Memory{region: region}, nil
}

// Ptr is the block base, in the form GSsetBaseMem takes it.
func (m *Memory) Ptr() unsafe.Pointer {
	return m.region.Ptr()
}

// Bytes is the raw register block.
func (m *Memory) Bytes() []byte {
	return m.region.Bytes()
}

// Close releases the block. The plugin must no longer hold the base
// pointer.
func (m *Memory) Close() error {
	return m.region.Close()
}

// Read64 reads the 64-bit register at offset off.
func (m *Memory) Read64(off int) uint64 {
	return binary.LittleEndian.Uint64(m.region.Bytes()[off:])
}

// Write64 writes the 64-bit register at offset off.
func (m *Memory) Write64(off int, v uint64) {
	binary.LittleEndian.PutUint64(m.region.Bytes()[off:], v)
}

// SetPMode programs the PCRTC merge circuit.
func (m *Memory) SetPMode(v PMode) { m.Write64(PMODE, uint64(v)) }

// SetSMode2 programs the interlace mode.
func (m *Memory) SetSMode2(v SMode2) { m.Write64(SMODE2, uint64(v)) }

// SetDispFB1 locates the display buffer of read circuit 1.
func (m *Memory) SetDispFB1(v DispFB) { m.Write64(DISPFB1, uint64(v)) }

// SetDisplay1 positions the output of read circuit 1.
func (m *Memory) SetDisplay1(v Display) { m.Write64(DISPLAY1, uint64(v)) }

// SetDispFB2 locates the display buffer of read circuit 2.
func (m *Memory) SetDispFB2(v DispFB) { m.Write64(DISPFB2, uint64(v)) }

// SetDisplay2 positions the output of read circuit 2.
func (m *Memory) SetDisplay2(v Display) { m.Write64(DISPLAY2, uint64(v)) }

// SetBGColor sets the background color the PCRTC blends against.
func (m *Memory) SetBGColor(v BGColor) { m.Write64(BGCOLOR, uint64(v)) }

// Status reads the CSR register.
func (m *Memory) Status() Status { return Status(m.Read64(CSR)) }

// SetStatus writes the CSR register.
func (m *Memory) SetStatus(v Status) { m.Write64(CSR, uint64(v)) }
