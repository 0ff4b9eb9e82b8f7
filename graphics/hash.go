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

// hashFigure is the 6-row crosshatch drawn at wall junctions.
var hashFigure = [...]uint16{0x8000, 0x6000, 0x1800, 0x0600, 0x0180, 0x0040}

// HashHeight is the height of the junction crosshatch in rows.
const HashHeight = len(hashFigure)

// DrawHash draws a hash mark at view coordinates (x, y), clipped against
// the view edges.
func DrawHash(buf *screen.Buffer, x, y int) {
	data := hashFigure[:]
	height := HashHeight

	// vertical clipping
	if y < 0 {
		if y <= -HashHeight {
			return
		}
		height += y
		data = data[-y:]
		y = 0
	} else if y >= screen.ViewHeight-HashHeight {
		height = screen.ViewHeight - y
	}

	// horizontal clipping
	clip := screen.CenterClip
	if x < 0 {
		clip = screen.LeftClip
	} else if x >= screen.Width-9 {
		clip = screen.RightClip
	}

	if height-1 < 0 {
		return
	}

	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D3: uint32(height - 1)},
		Address: map[mc68000.Register]uint32{
			mc68000.A0: uint32(screen.OffsetSBar(buf.RowBytes(), x&^15, y)),
		},
	})
	shift := 16 - x&15

	i := 0
	for ok := true; ok; ok = ctx.Dbra(mc68000.D3) {
		d0 := ctx.RolL(uint32(data[i]), shift)
		ctx.OrL(buf.Bits(), int(int32(ctx.Reg.A[0])), d0&clip)
		ctx.Reg.A[0] += uint32(buf.RowBytes())
		i++
	}
}

// drawHashQuick is the unclipped fast path used when the hash is fully
// inside the view. It reproduces the original's cascade of logical shifts,
// building each row of the crosshatch from the one before, instead of
// reading the figure from memory.
func drawHashQuick(buf *screen.Buffer, x, y int) {
	rb := buf.RowBytes()
	ctx := mc68000.NewContext(mc68000.Config{
		Address: map[mc68000.Register]uint32{
			mc68000.A0: uint32(screen.OffsetSBar(rb, x&^15, y)),
		},
	})
	bits := buf.Bits()
	off := int(ctx.Reg.A[0])

	d0 := ctx.LsrL(0x80000000, x&15)
	ctx.OrL(bits, off, d0)

	d1 := ctx.LsrL(d0, 1)
	d0 |= d1
	d0 = ctx.LsrL(d0, 1)
	ctx.OrL(bits, off+rb, d0)

	d0 = ctx.LsrL(d0, 2)
	ctx.OrL(bits, off+rb*2, d0)

	d0 = ctx.LsrL(d0, 2)
	ctx.OrL(bits, off+rb*3, d0)

	d0 = ctx.LsrL(d0, 2)
	ctx.OrL(bits, off+rb*4, d0)

	d1 = ctx.LsrL(d0, 2)
	d0 = ctx.LsrL(d0, 1)
	d0 &= d1
	ctx.OrL(bits, off+rb*5, d0)
}
