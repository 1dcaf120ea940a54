package rom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Image is a raw program ready to be placed in memory at Start.
type Image struct {
	Data  []uint8
	Start uint16
}

// NewImageFromFile reads a program file. A .prg file carries its load
// address in the first two bytes, little endian, the way C64 program
// files do. Any other file is treated as a bare binary loaded at
// defaultStart.
func NewImageFromFile(path string, defaultStart uint16) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("couldn't read the file: %s", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".prg") {
		if len(data) < 2 {
			return Image{}, fmt.Errorf("file %s is too short for a prg header", path)
		}
		start := uint16(data[0]) | uint16(data[1])<<8
		return Image{Data: data[2:], Start: start}, nil
	}

	return Image{Data: data, Start: defaultStart}, nil
}
