package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Formats GS plugins write captures in.
var snapshotExts = map[string]bool{
	".bmp": true,
	".png": true,
	".jpg": true,
}

// newestSnapshot finds the capture most recently written to dir.
func newestSnapshot(dir string, since time.Time) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var (
		newest  string
		modTime time.Time
	)
	for _, entry := range entries {
		if entry.IsDir() || !snapshotExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(since) {
			continue
		}
		if newest == "" || info.ModTime().After(modTime) {
			newest, modTime = entry.Name(), info.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no capture appeared in %s", dir)
	}
	return filepath.Join(dir, newest), nil
}

// describeSnapshot decodes just enough of a capture to report it.
func describeSnapshot(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	config, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", fmt.Errorf("can't decode capture %s: %w", path, err)
	}
	return fmt.Sprintf("%s: %dx%d %s", filepath.Base(path), config.Width, config.Height, format), nil
}
