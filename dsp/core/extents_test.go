package core

import (
	"errors"
	"testing"
)

func TestExtentsValidate(t *testing.T) {
	tests := []struct {
		name    string
		ext     Extents
		wantErr error
	}{
		{name: "1d", ext: Extents{100}},
		{name: "2d", ext: Extents{512, 256}},
		{name: "3d", ext: Extents{64, 64, 64}},
		{name: "empty", ext: Extents{}, wantErr: ErrUnsupportedDims},
		{name: "4d", ext: Extents{2, 2, 2, 2}, wantErr: ErrUnsupportedDims},
		{name: "zero", ext: Extents{16, 0}, wantErr: ErrInvalidExtents},
		{name: "negative", ext: Extents{-4}, wantErr: ErrInvalidExtents},
		{name: "overflow", ext: Extents{1 << 16, 1 << 16}, wantErr: ErrTooManySamples},
		{name: "limit", ext: Extents{MaxSamples}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ext.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewExtentsCopies(t *testing.T) {
	src := []int{4, 8}
	ext, err := NewExtents(src...)
	if err != nil {
		t.Fatalf("NewExtents() error = %v", err)
	}
	src[0] = 99
	if ext[0] != 4 {
		t.Fatalf("extents alias caller slice: %v", ext)
	}
}

func TestSpectrumExtents(t *testing.T) {
	tests := []struct {
		ext  Extents
		want Extents
		len  int
	}{
		{ext: Extents{8}, want: Extents{5}, len: 5},
		{ext: Extents{7}, want: Extents{4}, len: 4},
		{ext: Extents{4, 6}, want: Extents{4, 4}, len: 16},
		{ext: Extents{2, 3, 5}, want: Extents{2, 3, 3}, len: 18},
	}

	for _, tt := range tests {
		got := tt.ext.SpectrumExtents()
		if !got.Equal(tt.want) {
			t.Fatalf("SpectrumExtents(%v) = %v, want %v", tt.ext, got, tt.want)
		}
		if tt.ext.SpectrumLen() != tt.len {
			t.Fatalf("SpectrumLen(%v) = %d, want %d", tt.ext, tt.ext.SpectrumLen(), tt.len)
		}
	}
}

func TestStridesAndTotal(t *testing.T) {
	ext := Extents{2, 3, 4}
	strides := ext.Strides()
	if strides[0] != 12 || strides[1] != 4 || strides[2] != 1 {
		t.Fatalf("unexpected strides: %v", strides)
	}
	if ext.Total() != 24 {
		t.Fatalf("Total() = %d, want 24", ext.Total())
	}
	if ext.String() != "2x3x4" {
		t.Fatalf("String() = %q", ext.String())
	}
	if (Extents{}).Total() != 0 {
		t.Fatal("empty extents must have zero total")
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct{ k, n, want int }{
		{0, 8, 0},
		{3, 8, 3},
		{4, 8, 4},
		{5, 8, 3},
		{7, 8, 1},
		{2, 5, 2},
		{3, 5, 2},
		{4, 5, 1},
		{1, 5, 1},
	}
	for _, tt := range tests {
		if got := WrapIndex(tt.k, tt.n); got != tt.want {
			t.Fatalf("WrapIndex(%d, %d) = %d, want %d", tt.k, tt.n, got, tt.want)
		}
	}
}
