package output

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/signal"
)

// DefaultSampleRate is the WAV sample rate used when none is configured.
const DefaultSampleRate = 44100

// Options tune the format writers.
type Options struct {
	// PNGBlur is the sigma of a Gaussian blur applied to PNG images.
	// Zero disables it.
	PNGBlur float32
	// SampleRate of WAV output; <= 0 selects DefaultSampleRate.
	SampleRate int
	// Logger receives the auto-range of scaled formats. Nil discards.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Write encodes data (row-major over ext) to w in format f.
func Write(w io.Writer, f Format, data []float64, ext core.Extents, opts Options) error {
	if err := ext.Validate(); err != nil {
		return err
	}
	if len(data) != ext.Total() {
		return fmt.Errorf("output: field has %d samples, extents %v need %d", len(data), ext, ext.Total())
	}
	if !f.Supports(ext.Dims()) {
		return fmt.Errorf("%w: %s cannot hold %d-dimensional data", ErrUnsupportedFormat, f, ext.Dims())
	}

	switch f {
	case Text:
		return writeText(w, data, ext)
	case Raw:
		return writeRaw(w, data)
	case PNG:
		return writePNG(w, data, ext, opts)
	case WAV:
		return writeWAV(w, data, opts)
	case BOB, BOS:
		return writeBrick(w, f, data, ext, opts)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// autoRange spans the data range and logs it.
func autoRange(data []float64, opts Options) signal.Normalizer {
	n := signal.NewNormalizer(data)
	opts.logger().Debug("output range", "min", n.Min, "max", n.Max)
	return n
}

// writeText prints the per-axis index followed by the value, six
// significant digits.
func writeText(w io.Writer, data []float64, ext core.Extents) error {
	bw := bufio.NewWriter(w)
	strides := ext.Strides()
	line := make([]byte, 0, 64)
	for i, v := range data {
		line = line[:0]
		for a := range ext {
			line = strconv.AppendInt(line, int64((i/strides[a])%ext[a]), 10)
			line = append(line, ' ')
		}
		line = strconv.AppendFloat(line, v, 'g', 6, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRaw(w io.Writer, data []float64) error {
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
	}
	_, err := w.Write(buf)
	return err
}

func writeWAVHeader(dst []byte, dataSize uint32, sampleRate, channels int) {
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], 36+dataSize)
	copy(dst[8:12], "WAVE")
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16)
	binary.LittleEndian.PutUint16(dst[20:22], 1)
	binary.LittleEndian.PutUint16(dst[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(sampleRate*channels*2))
	binary.LittleEndian.PutUint16(dst[32:34], uint16(channels*2))
	binary.LittleEndian.PutUint16(dst[34:36], 16)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// writeWAV maps the data range onto [-32767, 32767].
func writeWAV(w io.Writer, data []float64, opts Options) error {
	rate := opts.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	norm := autoRange(data, opts)

	buf := make([]byte, 44+2*len(data))
	writeWAVHeader(buf, uint32(2*len(data)), rate, 1)
	for i, v := range data {
		s := int16(math.Round((2*norm.Unit(v) - 1) * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[44+2*i:], uint16(s))
	}
	_, err := w.Write(buf)
	return err
}

// writeBrick writes three little-endian uint32 extents followed by the
// auto-ranged samples as bytes (BOB) or uint16 (BOS).
func writeBrick(w io.Writer, f Format, data []float64, ext core.Extents, opts Options) error {
	norm := autoRange(data, opts)

	header := make([]byte, 12)
	for a := 0; a < 3; a++ {
		binary.LittleEndian.PutUint32(header[4*a:], uint32(ext[a]))
	}
	if _, err := w.Write(header); err != nil {
		return err
	}

	var body []byte
	if f == BOB {
		body = make([]byte, len(data))
		for i, v := range data {
			body[i] = byte(norm.Quantize(v, math.MaxUint8))
		}
	} else {
		body = make([]byte, 2*len(data))
		for i, v := range data {
			binary.LittleEndian.PutUint16(body[2*i:], uint16(norm.Quantize(v, math.MaxUint16)))
		}
	}
	_, err := w.Write(body)
	return err
}
