// This file is part of Continuum.
//
// Continuum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Continuum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Continuum.  If not, see <https://www.gnu.org/licenses/>.

// Package screen provides the bit-packed monochrome frame buffer the blit
// routines draw into, together with the address computations of the original
// machine's FIND_WADDRESS macro.
//
// The screen is the original machine's: 512 pixels across, 342 rows down,
// one bit per pixel, most significant bit leftmost, 64 bytes per row. The
// top 24 rows are the status bar; the 318 rows below it are the view area
// the game world is drawn into. A set bit is a black pixel.
package screen

import "image"

// Dimensions of the original machine's frame buffer.
const (
	Width      = 512
	Height     = 342
	RowBytes   = 64
	SBarHeight = 24
	ViewHeight = Height - SBarHeight
)

// Background patterns for the alternating gray of the playfield. Adjacent
// rows use alternating patterns so the dither lines up diagonally.
const (
	Background1 = uint32(0x55555555)
	Background2 = uint32(0xaaaaaaaa)
)

// Clipping masks for 16-bit wide figures at the screen edges. A figure
// rotated into position within a 32-bit window straddles two words; at the
// left edge only the right word is visible, at the right edge only the left.
const (
	LeftClip   = uint32(0x0000ffff)
	RightClip  = uint32(0xffff0000)
	CenterClip = uint32(0xffffffff)
)

// Offset computes the linear byte offset of pixel (x, y) in a bit-packed
// buffer with the given row stride. The x coordinate is truncated to its
// containing byte.
func Offset(rowBytes, x, y int) int {
	return y*rowBytes + x>>3
}

// OffsetSBar is Offset with the status bar height folded in, for routines
// that address the view area. This is the FIND_WADDRESS computation.
func OffsetSBar(rowBytes, x, y int) int {
	return (y+SBarHeight)*rowBytes + x>>3
}

// ByteOffset computes the offset of pixel (x, y) in a byte-per-column
// addressing scheme, used by the digit renderer which works in whole bytes.
func ByteOffset(rowBytes, x, y int) int {
	return y*rowBytes + x
}

// Buffer is an indexable byte buffer with a width, height and row stride.
// The zero value is not usable; create one with New or NewSize.
type Buffer struct {
	bits     []byte
	width    int
	height   int
	rowBytes int
}

// New creates a Buffer with the original machine's screen dimensions.
func New() *Buffer {
	return NewSize(Width, Height)
}

// NewSize creates a Buffer of arbitrary dimensions. Width is rounded up to
// a whole number of bytes. Small buffers are useful as sprite scratch
// memory and in tests.
func NewSize(width, height int) *Buffer {
	rb := (width + 7) >> 3
	return &Buffer{
		bits:     make([]byte, rb*height),
		width:    width,
		height:   height,
		rowBytes: rb,
	}
}

// Bits returns the underlying byte slice. Instructions operating on the
// buffer take this slice directly; multi-byte semantics are enforced by the
// instruction, not by the buffer.
func (b *Buffer) Bits() []byte {
	return b.bits
}

// Width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height of the buffer in rows.
func (b *Buffer) Height() int {
	return b.height
}

// RowBytes is the buffer's row stride.
func (b *Buffer) RowBytes() int {
	return b.rowBytes
}

// Offset of pixel (x, y) in this buffer.
func (b *Buffer) Offset(x, y int) int {
	return Offset(b.rowBytes, x, y)
}

// Pixel returns true if the pixel at (x, y) is set (black). Out-of-range
// coordinates read as white, consistent with the write-side edge tolerance.
func (b *Buffer) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	return b.bits[b.Offset(x, y)]&(0x80>>(x&7)) != 0
}

// Clear sets every pixel to white.
func (b *Buffer) Clear() {
	for i := range b.bits {
		b.bits[i] = 0
	}
}

// ToImage renders the buffer as a grayscale image. Black pixels (set bits)
// become black; everything else white.
func (b *Buffer) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Pixel(x, y) {
				img.Pix[y*img.Stride+x] = 0x00
			} else {
				img.Pix[y*img.Stride+x] = 0xff
			}
		}
	}
	return img
}
