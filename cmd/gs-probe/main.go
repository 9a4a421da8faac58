package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ps2emu/gs"
	"github.com/ps2emu/gs/regs"
	"github.com/ps2emu/gs/state"
)

func main() {
	rendererFlag := flag.String("renderer", "default", "Renderer backend (default, gl, gl-soft, d3d, d3d-soft, null)")
	titleFlag := flag.String("title", "GS probe", "Output window title")
	settingsFlag := flag.String("settings", "", "Plugin settings directory")
	crcFlag := flag.Uint64("crc", 0, "Game CRC")
	framesFlag := flag.Int("frames", 120, "Number of frames to run")
	interlacedFlag := flag.Bool("interlaced", false, "Interlaced video mode")
	dataFlag := flag.String("data", "", "GIF packet file to stream")
	pathFlag := flag.String("path", "3", "Transfer path for -data (1, 1-old, 2, 3)")
	fifoFlag := flag.Int("fifo", 0, "Quadwords to read back from the FIFO")
	snapshotFlag := flag.String("snapshot", "", "Capture a snapshot into this directory")
	saveFlag := flag.String("save", "", "Save plugin state to this file")
	loadFlag := flag.String("load", "", "Load plugin state from this file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <plugin>\n", os.Args[0])
		os.Exit(1)
	}

	var renderer gs.Renderer
	switch *rendererFlag {
	case "", "default":
		renderer = gs.RendererDefault
	case "gl", "opengl":
		renderer = gs.RendererGL
	case "gl-soft":
		renderer = gs.RendererGLSoft
	case "d3d", "direct3d":
		renderer = gs.RendererD3D
	case "d3d-soft":
		renderer = gs.RendererD3DSoft
	case "null", "none":
		renderer = gs.RendererNull
	default:
		fatal(fmt.Errorf("invalid renderer %q specified", *rendererFlag))
	}
	fmt.Printf("using renderer: %s\n", renderer)

	var path gs.TransferPath
	switch *pathFlag {
	case "1":
		path = gs.Path1
	case "1-old", "1-legacy":
		path = gs.Path1Legacy
	case "2":
		path = gs.Path2
	case "3":
		path = gs.Path3
	default:
		fatal(fmt.Errorf("invalid transfer path %q specified", *pathFlag))
	}

	crc, err := gameCRC(*crcFlag)
	if err != nil {
		fatal(err)
	}

	plug, err := gs.Load(flag.Arg(0), &gs.Config{Renderer: renderer})
	if err != nil {
		fatal(err)
	}
	defer plug.Unload()
	fmt.Printf("using plugin: %s\n", plug)

	mem, err := regs.New()
	if err != nil {
		fatal(err)
	}
	defer mem.Close()
	plug.SetBaseMem(mem.Ptr())

	if *settingsFlag != "" {
		plug.SetSettingsDir(*settingsFlag)
	}
	if crc != 0 {
		plug.SetGameCRC(crc, 0)
	}

	if err = plug.Init(); err != nil {
		fatal(err)
	}
	defer plug.Shutdown()

	if err = plug.Open(nil, *titleFlag); err != nil {
		fatal(err)
	}
	defer plug.Close()

	programDisplay(mem, *interlacedFlag)

	if *loadFlag != "" {
		saved, err := state.Load(*loadFlag)
		if err != nil {
			fatal(err)
		}
		if err = plug.FreezeLoad(saved.Payload); err != nil {
			fatal(err)
		}
		fmt.Printf("loaded %d bytes of plugin state for game %08X\n", len(saved.Payload), saved.GameCRC)
	}

	if *dataFlag != "" {
		packet, err := os.ReadFile(*dataFlag)
		if err != nil {
			fatal(err)
		}
		if err = plug.GIFTransfer(path, packet); err != nil {
			fatal(err)
		}
		fmt.Printf("streamed %d bytes over %s\n", len(packet), path)
	}

	var (
		field  int
		ticker = time.NewTicker(time.Second / 60)
	)
	defer ticker.Stop()

	for frame := 0; frame < *framesFlag; frame++ {
		<-ticker.C
		if field == 1 {
			mem.SetStatus(mem.Status() | regs.StatusField)
		} else {
			mem.SetStatus(mem.Status() &^ regs.StatusField)
		}
		plug.Vsync(field)
		if *interlacedFlag {
			field ^= 1
		}
	}
	fmt.Printf("ran %d frames\n", *framesFlag)

	if *fifoFlag > 0 {
		buf := make([]byte, *fifoFlag*16)
		plug.ReadFIFO2(buf)
		fmt.Printf("FIFO read %d quadwords, first: % x\n", *fifoFlag, buf[:16])
	}

	if *snapshotFlag != "" {
		start := time.Now()
		plug.MakeSnapshot(*snapshotFlag)
		plug.Vsync(field)
		time.Sleep(250 * time.Millisecond)

		name, err := newestSnapshot(*snapshotFlag, start)
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: "+err.Error())
		} else {
			desc, err := describeSnapshot(name)
			if err != nil {
				fatal(err)
			}
			fmt.Println("captured " + desc)
		}
	}

	if *saveFlag != "" {
		size, err := plug.FreezeSize()
		if err != nil {
			fatal(err)
		}
		payload := make([]byte, size)
		if err = plug.FreezeSave(payload); err != nil {
			fatal(err)
		}
		if err = state.Save(*saveFlag, &state.File{
			GameCRC: crc,
			Payload: payload,
		}); err != nil {
			fatal(err)
		}
		fmt.Printf("saved %d bytes of plugin state to %s\n", size, *saveFlag)
	}

	fmt.Println("done")
}

// programDisplay sets up a 640x448 frame on read circuit 2, the way the
// EE kernel programs NTSC output.
func programDisplay(mem *regs.Memory, interlaced bool) {
	var smode2 regs.SMode2
	if interlaced {
		smode2 |= regs.SMode2Interlaced | regs.SMode2FieldMode
	}
	mem.SetSMode2(smode2)
	mem.SetDispFB2(regs.NewDispFB(0, 640/64, regs.PSMCT32, 0, 0))

	video := regs.NewDisplay(636, 50, 3, 0, 2559, 447)
	mem.SetDisplay2(video)
	mem.SetPMode((regs.PModeEN2 | regs.PModeCRT | regs.PModeMMOD).WithAlpha(0xff))
	mem.SetBGColor(regs.NewBGColor(0, 0, 0x40))

	fmt.Printf("using video mode: %dx%d", video.Width(), video.DH()+1)
	if interlaced {
		fmt.Printf(" interlaced")
	}
	fmt.Println()
}

// gameCRC narrows the CRC flag to the 32 bits GSsetGameCRC takes.
func gameCRC(v uint64) (uint32, error) {
	if v > 0xffffffff {
		return 0, fmt.Errorf("invalid game CRC %#x specified", v)
	}
	return uint32(v), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
