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

// WhiteWallPiece draws a white shadow piece at view coordinates (x, y). The
// piece is a column of 16-bit patterns, one per row; a zero bit paints
// white, a one bit leaves the screen alone, so the piece is ANDed in. The
// piece is clipped against the view edges.
func WhiteWallPiece(buf *screen.Buffer, x, y int, def []uint16, height int) {
	// vertical clipping
	if y < 0 {
		height += y
		if height <= 0 {
			return
		}
		def = def[-y:]
		y = 0
	} else if y+height > screen.ViewHeight {
		if y >= screen.ViewHeight {
			return
		}
		height = screen.ViewHeight - y
	}

	// horizontal clipping. AND draws want 1s over the protected word
	clip := ^screen.CenterClip
	if x < 0 {
		if x <= -16 {
			return
		}
		clip = ^screen.LeftClip
	} else if x >= screen.Width-16 {
		if x >= screen.Width {
			return
		}
		clip = ^screen.RightClip
	}

	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D3: uint32(height)},
		Address: map[mc68000.Register]uint32{
			mc68000.A0: uint32(screen.OffsetSBar(buf.RowBytes(), x&^15, y)),
		},
	})
	shift := 16 - x&15

	i := 0
	for ctx.Dbra(mc68000.D3) {
		// pattern word over a skirt of 1s, rotated into pixel position
		d0 := ctx.RolL(0xffff0000|uint32(def[i]), shift)
		ctx.AndL(buf.Bits(), int(int32(ctx.Reg.A[0])), d0|clip)
		ctx.Reg.A[0] += uint32(buf.RowBytes())
		i++
	}
}

// EorWallPiece draws a junction white piece by XORing the pattern onto the
// screen, producing the crosshatch effect at wall intersections. A one bit
// inverts the pixel.
func EorWallPiece(buf *screen.Buffer, x, y int, def []uint16, height int) {
	if y < 0 {
		height += y
		if height <= 0 {
			return
		}
		def = def[-y:]
		y = 0
	} else if y+height > screen.ViewHeight {
		if y >= screen.ViewHeight {
			return
		}
		height = screen.ViewHeight - y
	}

	// XOR draws want 0s over the protected word
	clip := screen.CenterClip
	if x < 0 {
		if x <= -16 {
			return
		}
		clip = screen.LeftClip
	} else if x >= screen.Width-16 {
		if x >= screen.Width {
			return
		}
		clip = screen.RightClip
	}

	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D3: uint32(height)},
		Address: map[mc68000.Register]uint32{
			mc68000.A0: uint32(screen.OffsetSBar(buf.RowBytes(), x&^15, y)),
		},
	})
	shift := 16 - x&15

	i := 0
	for ctx.Dbra(mc68000.D3) {
		d0 := ctx.RolL(uint32(def[i]), shift)
		ctx.EorL(buf.Bits(), int(int32(ctx.Reg.A[0])), d0&clip)
		ctx.Reg.A[0] += uint32(buf.RowBytes())
		i++
	}
}
