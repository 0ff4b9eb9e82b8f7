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

package graphics

import (
	"github.com/sam-mfb/continuum-sub007/hardware/mc68000"
	"github.com/sam-mfb/continuum-sub007/hardware/screen"
)

// Wall line rasterization. The original drew each wall direction with its
// own unrolled loop; the common machinery is one pixel-pair per row with
// the pair rotated one position per step, carrying across the 32-bit
// window boundary via the rotate's Carry flag.

// lineStart prepares the context and aligned start mask for a line whose
// top-left pixel is at view coordinates (x, y). The mask is two bits wide:
// walls are two pixels thick.
func lineStart(buf *screen.Buffer, x, y, length int) (*mc68000.Context, uint32, int) {
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D3: uint32(length)},
	})
	d0 := ctx.LsrL(0xc0000000, x&15)
	off := screen.OffsetSBar(buf.RowBytes(), x&^15, y)
	return ctx, d0, off
}

// windowClip masks the 32-bit window at base bx against the right screen
// edge, where the window's low word belongs to the next row. The left edge
// needs no mask: a window hanging off the left only ever carries zero bits
// in its high word.
func windowClip(bx int) uint32 {
	if bx >= screen.Width-16 {
		return screen.RightClip
	}
	return screen.CenterClip
}

// DrawSouthLine draws a vertical wall of the given length downward from
// view coordinates (x, y).
func DrawSouthLine(buf *screen.Buffer, x, y, length int) {
	if x < 0 || x >= screen.Width {
		return
	}
	ctx, d0, off := lineStart(buf, x, y, length)
	rb := buf.RowBytes()

	// at the last window of the row the low word belongs to the next row
	clip := screen.CenterClip
	if x&^15 >= screen.Width-16 {
		clip = screen.RightClip
	}

	for ctx.Dbra(mc68000.D3) {
		if y >= 0 && y < screen.ViewHeight {
			ctx.OrL(buf.Bits(), off, d0&clip)
		}
		off += rb
		y++
	}
}

// DrawEastLine draws a horizontal wall of the given length rightward from
// view coordinates (x, y). The running bit pair walks right one pixel per
// step; when it rotates out of the window the Carry flag signals the
// advance to the next word.
func DrawEastLine(buf *screen.Buffer, x, y, length int) {
	if y < 0 || y >= screen.ViewHeight {
		return
	}
	ctx, d0, off := lineStart(buf, x, y, length)
	bx := x &^ 15

	for ctx.Dbra(mc68000.D3) {
		if x >= 0 && x < screen.Width {
			ctx.OrL(buf.Bits(), off, d0&windowClip(bx))
		}
		d0 = ctx.RorL(d0, 1)
		if ctx.SR.Carry {
			// the leading bit wrapped around the window: slide the
			// window right one word and swing the mask back into it
			d0 = ctx.RolL(d0, 16)
			off += 2
			bx += 16
		}
		x++
	}
}

// DrawNELine draws a northeast diagonal wall: up one row, right one pixel
// per step, starting from the bottom-left end at view coordinates (x, y).
func DrawNELine(buf *screen.Buffer, x, y, length int) {
	ctx, d0, off := lineStart(buf, x, y, length)
	rb := buf.RowBytes()
	bx := x &^ 15

	for ctx.Dbra(mc68000.D3) {
		if x >= 0 && x < screen.Width && y >= 0 && y < screen.ViewHeight {
			ctx.OrL(buf.Bits(), off, d0&windowClip(bx))
		}
		d0 = ctx.RorL(d0, 1)
		if ctx.SR.Carry {
			d0 = ctx.RolL(d0, 16)
			off += 2
			bx += 16
		}
		off -= rb
		x++
		y--
	}
}

// DrawSELine draws a southeast diagonal wall: down one row, right one
// pixel per step, from the top-left end at view coordinates (x, y).
func DrawSELine(buf *screen.Buffer, x, y, length int) {
	ctx, d0, off := lineStart(buf, x, y, length)
	rb := buf.RowBytes()
	bx := x &^ 15

	for ctx.Dbra(mc68000.D3) {
		if x >= 0 && x < screen.Width && y >= 0 && y < screen.ViewHeight {
			ctx.OrL(buf.Bits(), off, d0&windowClip(bx))
		}
		d0 = ctx.RorL(d0, 1)
		if ctx.SR.Carry {
			d0 = ctx.RolL(d0, 16)
			off += 2
			bx += 16
		}
		off += rb
		x++
		y++
	}
}
