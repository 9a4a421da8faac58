package regs

// Pixel storage formats a display buffer can use (DISPFB PSM field).
const (
	PSMCT32  = 0x00 // RGBA32
	PSMCT24  = 0x01 // RGB24
	PSMCT16  = 0x02 // RGBA16
	PSMCT16S = 0x0A // RGBA16, signed
	PSGPU24  = 0x12 // RGB24, PS1 compatibility
)

// PMode is the PMODE register value.
type PMode uint64

// PMODE bit fields.
const (
	PModeEN1  PMode = 1 << 0 // enable read circuit 1
	PModeEN2  PMode = 1 << 1 // enable read circuit 2
	PModeCRT  PMode = 1 << 2 // CRT output, always set
	PModeMMOD PMode = 1 << 5 // blend alpha from ALP instead of circuit 1
	PModeAMOD PMode = 1 << 6 // write blend alpha to OUT1
	PModeSLBG PMode = 1 << 7 // blend against BGCOLOR instead of circuit 2
)

// WithAlpha sets the fixed blend alpha ALP.
func (p PMode) WithAlpha(alp uint8) PMode {
	return p&^(0xff<<8) | PMode(alp)<<8
}

// Alpha is the fixed blend alpha ALP.
func (p PMode) Alpha() uint8 {
	return uint8(p >> 8)
}

// SMode2 is the SMODE2 register value.
type SMode2 uint64

// SMODE2 bit fields.
const (
	SMode2Interlaced SMode2 = 1 << 0 // interlaced output
	SMode2FieldMode  SMode2 = 1 << 1 // read every line, not every other
)

// DispFB is a DISPFB register value locating a display buffer in local
// memory.
type DispFB uint64

// NewDispFB builds a DISPFB value. fbp is the buffer base in units of
// 2 KiB words, fbw the buffer width in units of 64 pixels, psm one of the
// PSM formats, and dbx, dby the upper-left corner in the buffer.
func NewDispFB(fbp, fbw, psm, dbx, dby int) DispFB {
	// FBP, 9, FBW, 6, PSM, 5, -, 12, DBX, 11, DBY, 11
	return DispFB(fbp&0x1ff) |
		DispFB(fbw&0x3f)<<9 |
		DispFB(psm&0x1f)<<15 |
		DispFB(dbx&0x7ff)<<32 |
		DispFB(dby&0x7ff)<<43
}

// FBP is the buffer base in units of 2 KiB words.
func (d DispFB) FBP() int { return int(d & 0x1ff) }

// FBW is the buffer width in units of 64 pixels.
func (d DispFB) FBW() int { return int(d >> 9 & 0x3f) }

// PSM is the pixel storage format.
func (d DispFB) PSM() int { return int(d >> 15 & 0x1f) }

// DBX is the upper-left X coordinate in the buffer.
func (d DispFB) DBX() int { return int(d >> 32 & 0x7ff) }

// DBY is the upper-left Y coordinate in the buffer.
func (d DispFB) DBY() int { return int(d >> 43 & 0x7ff) }

// Display is a DISPLAY register value positioning a read circuit's output
// on screen.
type Display uint64

// NewDisplay builds a DISPLAY value. dx, dy position the area in VCK
// units, magh, magv are the magnification minus one, and dw, dh are the
// area size in VCK units minus one.
func NewDisplay(dx, dy, magh, magv, dw, dh int) Display {
	// DX, 12, DY, 11, MAGH, 4, MAGV, 2, -, 3, DW, 12, DH, 11
	return Display(dx&0xfff) |
		Display(dy&0x7ff)<<12 |
		Display(magh&0xf)<<23 |
		Display(magv&0x3)<<27 |
		Display(dw&0xfff)<<32 |
		Display(dh&0x7ff)<<44
}

// DX is the display area X position in VCK units.
func (d Display) DX() int { return int(d & 0xfff) }

// DY is the display area Y position in VCK units.
func (d Display) DY() int { return int(d >> 12 & 0x7ff) }

// MagH is the horizontal magnification minus one.
func (d Display) MagH() int { return int(d >> 23 & 0xf) }

// MagV is the vertical magnification minus one.
func (d Display) MagV() int { return int(d >> 27 & 0x3) }

// DW is the display area width in VCK units minus one.
func (d Display) DW() int { return int(d >> 32 & 0xfff) }

// DH is the display area height minus one.
func (d Display) DH() int { return int(d >> 44 & 0x7ff) }

// Width is the displayed width in pixels.
func (d Display) Width() int {
	return (d.DW() + 1) / (d.MagH() + 1)
}

// Height is the displayed height in pixels.
func (d Display) Height() int {
	return (d.DH() + 1) / (d.MagV() + 1)
}

// BGColor is the BGCOLOR register value.
type BGColor uint64

// NewBGColor builds a BGCOLOR value from its RGB components.
func NewBGColor(r, g, b uint8) BGColor {
	// R, 8, G, 8, B, 8
	return BGColor(r) | BGColor(g)<<8 | BGColor(b)<<16
}

// RGB are the background color components.
func (c BGColor) RGB() (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// Status is the CSR register value.
type Status uint64

// CSR bit fields. The interrupt bits clear when 1 is written to them;
// Flush and Reset are write-only controls.
const (
	StatusSignal Status = 1 << 0  // SIGNAL event
	StatusFinish Status = 1 << 1  // FINISH event
	StatusHSync  Status = 1 << 2  // horizontal sync event
	StatusVSync  Status = 1 << 3  // vertical sync event
	StatusEDW    Status = 1 << 4  // rectangular area write termination
	StatusFlush  Status = 1 << 8  // drawing suspend and FIFO flush
	StatusReset  Status = 1 << 9  // GS system reset
	StatusNField Status = 1 << 12 // VSYNC-latched field
	StatusField  Status = 1 << 13 // field currently displayed
)

// FIFO direction values (CSR FIFO field).
const (
	FIFONeither    = 0x0 // neither empty nor almost full
	FIFOEmpty      = 0x1
	FIFOAlmostFull = 0x2
)

// FIFO is the host interface FIFO status.
func (s Status) FIFO() int { return int(s >> 14 & 0x3) }

// Revision is the GS revision number.
func (s Status) Revision() int { return int(s >> 16 & 0xff) }

// ID is the GS id.
func (s Status) ID() int { return int(s >> 24 & 0xff) }
