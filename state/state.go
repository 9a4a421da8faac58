// Package state stores GS freeze payloads as files.
//
// The payload itself is produced and consumed by the plugin and stays
// opaque; the file adds a small header naming the game it belongs to and
// compresses the body.
package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Errors
var (
	ErrFormat  = errors.New("state: not a GS state file")
	ErrVersion = errors.New("state: unsupported state file version")
)

var magic = [4]byte{'G', 'S', 'F', 'Z'}

const version = 1

// headerSize is magic, version, game CRC and payload size, 4 bytes each.
const headerSize = 16

// maxExpansion is the highest ratio deflate decompresses at; a file
// cannot declare a payload larger than its remaining bytes times this.
const maxExpansion = 1032

// File is a stored freeze payload.
type File struct {
	// GameCRC identifies the title the payload belongs to.
	GameCRC uint32

	// Payload is the plugin's freeze blob.
	Payload []byte
}

// Save writes f to path. The file is staged next to its destination and
// renamed into place, so an interrupted save never leaves a torn file
// behind.
func Save(path string, f *File) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".gsstate-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	var header [headerSize]byte
	copy(header[0:4], magic[:])
	binary.LittleEndian.PutUint32(header[4:8], version)
	binary.LittleEndian.PutUint32(header[8:12], f.GameCRC)
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(f.Payload)))
	if _, err = tmp.Write(header[:]); err != nil {
		return err
	}

	zw := gzip.NewWriter(tmp)
	if _, err = zw.Write(f.Payload); err != nil {
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}

	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads a state file written by Save.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var header [headerSize]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrFormat
		}
		return nil, err
	}
	if [4]byte(header[0:4]) != magic {
		return nil, ErrFormat
	}
	if v := binary.LittleEndian.Uint32(header[4:8]); v != version {
		return nil, fmt.Errorf("%w %d", ErrVersion, v)
	}

	size := binary.LittleEndian.Uint32(header[12:16])
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if int64(size) > (info.Size()-headerSize)*maxExpansion {
		return nil, fmt.Errorf("state: declared payload size %d exceeds the file", size)
	}

	out := &File{
		GameCRC: binary.LittleEndian.Uint32(header[8:12]),
		Payload: make([]byte, size),
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("state: corrupt payload: %w", err)
	}
	defer zr.Close()

	if _, err := io.ReadFull(zr, out.Payload); err != nil {
		return nil, fmt.Errorf("state: truncated payload: %w", err)
	}
	var trailer [1]byte
	n, err := zr.Read(trailer[:])
	if n != 0 {
		return nil, fmt.Errorf("state: payload exceeds declared size %d", len(out.Payload))
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("state: corrupt payload: %w", err)
	}
	return out, nil
}
