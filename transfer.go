package gs

import (
	"fmt"
	"unsafe"
)

// path1FIFOSize is the PATH1 transfer window. Plugins using the old PATH1
// entry point consume data from the tail of a 16 KiB ring.
const path1FIFOSize = 0x4000

// TransferPath selects the GIF path a packet is pushed down. The paths
// map to distinct plugin entry points with different length conventions.
type TransferPath uint8

// Transfer paths.
const (
	// Path1Legacy is the old PATH1 entry point with ring addressing: the
	// plugin is given a pointer 0x4000-len(data) bytes before the packet
	// and reads from that offset up to the end of the window.
	Path1Legacy TransferPath = iota

	// Path2 carries data from VIF1 direct transfers.
	Path2

	// Path3 carries data from the EE bus.
	Path3

	// Path1 is the unified PATH1 entry point of current plugins.
	Path1
)

func (t TransferPath) String() string {
	switch t {
	case Path1Legacy:
		return "PATH1 (legacy)"
	case Path2:
		return "PATH2"
	case Path3:
		return "PATH3"
	case Path1:
		return "PATH1"
	default:
		return fmt.Sprintf("PATH(%d)", uint8(t))
	}
}

// GIFTransfer streams one GIF packet to the plugin over the given path.
// The packet is borrowed for the duration of the call; the plugin consumes
// it fully before returning. Empty packets are not forwarded.
//
// On Path1Legacy the old ring addressing is preserved exactly: the
// downstream pointer is moved 0x4000-len(data) bytes back and that
// distance is passed as the length argument. The caller must guarantee
// that the bytes in front of the packet are addressable, as the old ABI
// demands. The other paths count len(data)/16 quadwords.
func (p *Plugin) GIFTransfer(path TransferPath, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	switch path {
	case Path1Legacy:
		if len(data) > path1FIFOSize {
			return fmt.Errorf("gs: PATH1 packet of %#x bytes exceeds the %#x byte window", len(data), path1FIFOSize)
		}
		addr := path1FIFOSize - len(data)
		p.gifTransfer1(unsafe.Add(unsafe.Pointer(&data[0]), -addr), uint32(addr))
	case Path2:
		p.gifTransfer2(unsafe.Pointer(&data[0]), uint32(len(data)/16))
	case Path3:
		p.gifTransfer3(unsafe.Pointer(&data[0]), uint32(len(data)/16))
	case Path1:
		p.gifTransfer(unsafe.Pointer(&data[0]), uint32(len(data)/16))
	default:
		return fmt.Errorf("gs: unknown transfer path %d", uint8(path))
	}
	return nil
}

// ReadFIFO2 drains the plugin's output FIFO into buf. The buffer and its
// byte length are forwarded as is.
func (p *Plugin) ReadFIFO2(buf []byte) {
	if len(buf) == 0 {
		return
	}
	p.readFIFO2(unsafe.Pointer(&buf[0]), int32(len(buf)))
}
