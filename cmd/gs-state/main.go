package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ps2emu/gs/state"
)

func main() {
	extractFlag := flag.String("extract", "", "Write the raw payload to this file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <statefile>\n", os.Args[0])
		os.Exit(1)
	}

	path := flag.Arg(0)
	info, err := os.Stat(path)
	if err != nil {
		fatal(err)
	}

	f, err := state.Load(path)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("state file: %s\n", path)
	fmt.Printf("game CRC:   %08X\n", f.GameCRC)
	fmt.Printf("payload:    %d bytes (%d on disk)\n", len(f.Payload), info.Size())

	if *extractFlag != "" {
		if err = os.WriteFile(*extractFlag, f.Payload, 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("payload extracted to %s\n", *extractFlag)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
