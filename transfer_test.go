package gs

import (
	"testing"
	"unsafe"
)

type transferRecord struct {
	mem  unsafe.Pointer
	size uint32
}

func TestGIFTransferLegacyRing(t *testing.T) {
	backing := make([]byte, 0x4000)
	for i := range backing {
		backing[i] = byte(i)
	}

	var got []transferRecord
	lib := testLibrary()
	lib.syms[symGIFTransfer1] = func(mem unsafe.Pointer, addr uint32) {
		got = append(got, transferRecord{mem, addr})
	}
	p, err := New(lib, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Packets are suffixes of a window-sized backing array, so the
	// rewound pointer always lands on the start of the array.
	testCases := []struct {
		name string
		data []byte
		addr uint32
	}{
		{"quarter", backing[0x1000:], 0x1000},
		{"full-window", backing, 0},
		{"one-quadword", backing[0x4000-16:], 0x4000 - 16},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			got = got[:0]
			if err := p.GIFTransfer(Path1Legacy, test.data); err != nil {
				it.Fatal(err)
			}
			if len(got) != 1 {
				it.Fatalf("expected 1 transfer, got %d", len(got))
			}
			if want := unsafe.Pointer(&backing[0]); got[0].mem != want {
				it.Errorf("expected rewound pointer %p, got %p", want, got[0].mem)
			}
			if got[0].size != test.addr {
				it.Errorf("expected address %#x, got %#x", test.addr, got[0].size)
			}
		})
	}

	t.Run("oversized", func(it *testing.T) {
		got = got[:0]
		if err := p.GIFTransfer(Path1Legacy, make([]byte, 0x4000+16)); err == nil {
			it.Fatal("expected an error for a packet exceeding the window")
		}
		if len(got) != 0 {
			it.Errorf("expected no transfer, got %d", len(got))
		}
	})
}

func TestGIFTransferQuadwords(t *testing.T) {
	got := make(map[TransferPath][]transferRecord)
	lib := testLibrary()
	lib.syms[symGIFTransfer] = func(mem unsafe.Pointer, size uint32) {
		got[Path1] = append(got[Path1], transferRecord{mem, size})
	}
	lib.syms[symGIFTransfer2] = func(mem unsafe.Pointer, size uint32) {
		got[Path2] = append(got[Path2], transferRecord{mem, size})
	}
	lib.syms[symGIFTransfer3] = func(mem unsafe.Pointer, size uint32) {
		got[Path3] = append(got[Path3], transferRecord{mem, size})
	}
	p, err := New(lib, nil)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		path TransferPath
		len  int
		size uint32
	}{
		{Path1, 160, 10},
		{Path2, 16, 1},
		{Path2, 160, 10},
		{Path3, 24, 1},
		{Path3, 4096, 256},
	}
	for _, test := range testCases {
		data := make([]byte, test.len)
		delete(got, test.path)
		if err := p.GIFTransfer(test.path, data); err != nil {
			t.Fatal(err)
		}
		records := got[test.path]
		if len(records) != 1 {
			t.Fatalf("%s: expected 1 transfer, got %d", test.path, len(records))
		}
		if records[0].mem != unsafe.Pointer(&data[0]) {
			t.Errorf("%s: expected pointer %p, got %p", test.path, &data[0], records[0].mem)
		}
		if records[0].size != test.size {
			t.Errorf("%s: expected %d quadwords for %d bytes, got %d", test.path, test.size, test.len, records[0].size)
		}
	}
}

func TestGIFTransferEmpty(t *testing.T) {
	lib := testLibrary()
	for _, sym := range []string{symGIFTransfer, symGIFTransfer1, symGIFTransfer2, symGIFTransfer3} {
		lib.syms[sym] = func(mem unsafe.Pointer, size uint32) {
			t.Errorf("unexpected transfer of %d", size)
		}
	}
	p, err := New(lib, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, path := range []TransferPath{Path1Legacy, Path2, Path3, Path1} {
		if err := p.GIFTransfer(path, nil); err != nil {
			t.Errorf("%s: %v", path, err)
		}
		if err := p.GIFTransfer(path, []byte{}); err != nil {
			t.Errorf("%s: %v", path, err)
		}
	}
}

func TestReadFIFO2(t *testing.T) {
	lib := testLibrary()
	lib.syms[symReadFIFO2] = func(mem unsafe.Pointer, size int32) {
		out := unsafe.Slice((*byte)(mem), size)
		for i := range out {
			out[i] = byte(i)
		}
	}
	p, err := New(lib, nil)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 64)
	p.ReadFIFO2(buf)
	for i := range buf {
		if buf[i] != byte(i) {
			t.Fatalf("expected byte %#x at %d, got %#x", byte(i), i, buf[i])
		}
	}

	lib.syms[symReadFIFO2] = func(mem unsafe.Pointer, size int32) {
		t.Errorf("unexpected FIFO read of %d", size)
	}
	if p, err = New(lib, nil); err != nil {
		t.Fatal(err)
	}
	p.ReadFIFO2(nil)
}
