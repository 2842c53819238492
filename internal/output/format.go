// Package output writes synthesized fields to the file formats noisegen
// supports.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for unknown formats and for formats that
// cannot hold a field of the given dimensionality.
var ErrUnsupportedFormat = errors.New("output: unsupported format")

// Format is an output file format.
type Format int

const (
	// Text writes one "index... value" line per sample.
	Text Format = iota
	// Raw writes little-endian float32 samples.
	Raw
	// PNG writes a 16-bit grayscale image (2D only).
	PNG
	// WAV writes mono 16-bit PCM (1D only).
	WAV
	// BOB writes a brick of bytes (3D only).
	BOB
	// BOS writes a brick of little-endian uint16 shorts (3D only).
	BOS
)

var formatNames = map[Format]string{
	Text: "text",
	Raw:  "raw",
	PNG:  "png",
	WAV:  "wav",
	BOB:  "bob",
	BOS:  "bos",
}

// Formats lists every format.
func Formats() []Format {
	return []Format{Text, Raw, PNG, WAV, BOB, BOS}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Dims reports the dimensionalities the format can hold.
func (f Format) Dims() []int {
	switch f {
	case PNG:
		return []int{2}
	case WAV:
		return []int{1}
	case BOB, BOS:
		return []int{3}
	default:
		return []int{1, 2, 3}
	}
}

// Supports reports whether the format can hold a field with dims axes.
func (f Format) Supports(dims int) bool {
	for _, d := range f.Dims() {
		if d == dims {
			return true
		}
	}
	return false
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "txt" {
		return Text, nil
	}
	for f, fn := range formatNames {
		if fn == n {
			return f, nil
		}
	}
	return Text, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath picks the format from the file extension. Any extension
// starting with "t" is text; unknown or missing extensions fall back to
// text.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch {
	case strings.HasPrefix(ext, "t"):
		return Text
	case strings.HasPrefix(ext, "raw"):
		return Raw
	case strings.HasPrefix(ext, "png"):
		return PNG
	case strings.HasPrefix(ext, "wav"):
		return WAV
	case strings.HasPrefix(ext, "bob"):
		return BOB
	case strings.HasPrefix(ext, "bos"):
		return BOS
	default:
		return Text
	}
}
