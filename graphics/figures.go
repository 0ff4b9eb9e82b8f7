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

// A figure is a column of 32-bit rows (ship, bunker, explosion shard). At an
// arbitrary x the rows straddle a 48-bit window: a long write at the
// word-aligned offset and a word write for the spill. The spill write is
// skipped when the shift is zero or when its word is past the right screen
// edge. The long is masked at the screen edges so a partial figure cannot
// bleed into the neighbouring row.

// figureClip performs the shared vertical clipping for 32-bit figures.
// Returns the adjusted y, def and height. ok is false if nothing visible.
func figureClip(x, y int, def []uint32, height int) (int, []uint32, int, bool) {
	if y < 0 {
		height += y
		if height <= 0 {
			return 0, nil, 0, false
		}
		def = def[-y:]
		y = 0
	} else if y+height > screen.ViewHeight {
		if y >= screen.ViewHeight {
			return 0, nil, 0, false
		}
		height = screen.ViewHeight - y
	}
	if x <= -32 || x >= screen.Width {
		return 0, nil, 0, false
	}
	return y, def, height, true
}

// figureMasks computes the horizontal clipping for a figure at x. The
// aligned long is either whole, halved at a screen edge, or skipped
// entirely (x in (-32,-16], where only the spill word shows). The spill
// word is never partial: the base offset is word-aligned, so it is whole
// or wholly offscreen.
func figureMasks(x int) (clip uint32, spill bool) {
	b := x &^ 15
	s := x & 15

	clip = screen.CenterClip
	if b < 0 {
		if b <= -32 {
			clip = 0
		} else {
			clip = screen.LeftClip
		}
	} else if b >= screen.Width-16 {
		clip = screen.RightClip
	}

	spill = s > 0 && b+32 < screen.Width
	return clip, spill
}

// DrawFigure ORs a figure onto the view at (x, y). Set bits paint black.
func DrawFigure(buf *screen.Buffer, x, y int, def []uint32, height int) {
	y, def, height, ok := figureClip(x, y, def, height)
	if !ok {
		return
	}

	rb := buf.RowBytes()
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D3: uint32(height)},
		Address: map[mc68000.Register]uint32{
			mc68000.A0: uint32(screen.OffsetSBar(rb, x&^15, y)),
		},
	})
	s := x & 15
	clip, spill := figureMasks(x)

	i := 0
	for ctx.Dbra(mc68000.D3) {
		off := int(int32(ctx.Reg.A[0]))
		d0 := ctx.LsrL(def[i], s)
		ctx.OrL(buf.Bits(), off, d0&clip)
		if spill {
			d1 := ctx.LslL(def[i], 32-s)
			ctx.OrW(buf.Bits(), off+4, uint16(d1>>16))
		}
		ctx.Reg.A[0] += uint32(rb)
		i++
	}
}

// EraseFigure clears every pixel under the figure's set bits.
func EraseFigure(buf *screen.Buffer, x, y int, def []uint32, height int) {
	y, def, height, ok := figureClip(x, y, def, height)
	if !ok {
		return
	}

	rb := buf.RowBytes()
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D3: uint32(height)},
		Address: map[mc68000.Register]uint32{
			mc68000.A0: uint32(screen.OffsetSBar(rb, x&^15, y)),
		},
	})
	s := x & 15
	clip, spill := figureMasks(x)

	i := 0
	for ctx.Dbra(mc68000.D3) {
		off := int(int32(ctx.Reg.A[0]))
		d0 := ctx.LsrL(def[i], s)
		ctx.AndL(buf.Bits(), off, ^(d0 & clip))
		if spill {
			d1 := ctx.LslL(def[i], 32-s)
			ctx.AndW(buf.Bits(), off+4, ^uint16(d1>>16))
		}
		ctx.Reg.A[0] += uint32(rb)
		i++
	}
}

// FullFigure draws a figure with a background mask: the mask's set bits are
// cleared first, then the figure's set bits are painted. This is the
// draw-over-anything blit used for the ship.
func FullFigure(buf *screen.Buffer, x, y int, def []uint32, mask []uint32, height int) {
	EraseFigure(buf, x, y, mask, height)
	DrawFigure(buf, x, y, def, height)
}

// GrayFigure draws a figure in the alternating background gray rather than
// solid black, used for distant or shielded objects. Rows alternate between
// the two background patterns so the dither stays aligned with the
// playfield.
func GrayFigure(buf *screen.Buffer, x, y int, def []uint32, height int) {
	y, def, height, ok := figureClip(x, y, def, height)
	if !ok {
		return
	}

	rb := buf.RowBytes()
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D3: uint32(height)},
		Address: map[mc68000.Register]uint32{
			mc68000.A0: uint32(screen.OffsetSBar(rb, x&^15, y)),
		},
	})
	s := x & 15
	clip, spill := figureMasks(x)

	i := 0
	for ctx.Dbra(mc68000.D3) {
		gray := screen.Background1
		if (x+y+i)&1 == 1 {
			gray = screen.Background2
		}

		off := int(int32(ctx.Reg.A[0]))
		d0 := ctx.LsrL(def[i]&gray, s)
		ctx.OrL(buf.Bits(), off, d0&clip)
		if spill {
			d1 := ctx.LslL(def[i]&gray, 32-s)
			ctx.OrW(buf.Bits(), off+4, uint16(d1>>16))
		}
		ctx.Reg.A[0] += uint32(rb)
		i++
	}
}

// ShiftFigure draws a figure whose rows are first rotated right by n bits,
// used for the pre-rotated sprite variants stored at one alignment.
func ShiftFigure(buf *screen.Buffer, x, y int, def []uint32, height int, n int) {
	y, def, height, ok := figureClip(x, y, def, height)
	if !ok {
		return
	}

	rb := buf.RowBytes()
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D3: uint32(height)},
		Address: map[mc68000.Register]uint32{
			mc68000.A0: uint32(screen.OffsetSBar(rb, x&^15, y)),
		},
	})
	s := x & 15
	clip, spill := figureMasks(x)

	i := 0
	for ctx.Dbra(mc68000.D3) {
		row := ctx.RorL(def[i], n)

		off := int(int32(ctx.Reg.A[0]))
		d0 := ctx.LsrL(row, s)
		ctx.OrL(buf.Bits(), off, d0&clip)
		if spill {
			d1 := ctx.LslL(row, 32-s)
			ctx.OrW(buf.Bits(), off+4, uint16(d1>>16))
		}
		ctx.Reg.A[0] += uint32(rb)
		i++
	}
}
