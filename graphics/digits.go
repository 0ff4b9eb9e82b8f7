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

// DigitHeight is the height of a status bar digit in rows. Digits are one
// byte (8 pixels) wide and drawn at byte granularity, so a digit x position
// is a byte column, not a pixel column.
const DigitHeight = 9

// digitFont is the status bar numeral font, one byte per row.
var digitFont = [10][DigitHeight]uint8{
	{0x3c, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3c, 0x00}, // 0
	{0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3c, 0x00}, // 1
	{0x3c, 0x66, 0x06, 0x0c, 0x18, 0x30, 0x60, 0x7e, 0x00}, // 2
	{0x3c, 0x66, 0x06, 0x1c, 0x06, 0x06, 0x66, 0x3c, 0x00}, // 3
	{0x0c, 0x1c, 0x3c, 0x6c, 0x7e, 0x0c, 0x0c, 0x0c, 0x00}, // 4
	{0x7e, 0x60, 0x60, 0x7c, 0x06, 0x06, 0x66, 0x3c, 0x00}, // 5
	{0x3c, 0x66, 0x60, 0x7c, 0x66, 0x66, 0x66, 0x3c, 0x00}, // 6
	{0x7e, 0x06, 0x0c, 0x0c, 0x18, 0x18, 0x30, 0x30, 0x00}, // 7
	{0x3c, 0x66, 0x66, 0x3c, 0x66, 0x66, 0x66, 0x3c, 0x00}, // 8
	{0x3c, 0x66, 0x66, 0x66, 0x3e, 0x06, 0x66, 0x3c, 0x00}, // 9
}

// DrawDigit draws a single digit at byte column bx, row y of the status
// bar. The byte under the digit is replaced, not merged; status bar cells
// are redrawn wholesale every frame.
func DrawDigit(buf *screen.Buffer, bx, y int, digit int) {
	if digit < 0 || digit > 9 {
		return
	}

	rb := buf.RowBytes()
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D2: uint32(DigitHeight)},
		Address: map[mc68000.Register]uint32{
			mc68000.A0: uint32(screen.ByteOffset(rb, bx, y)),
		},
	})

	i := 0
	for ctx.Dbra(mc68000.D2) {
		off := int(int32(ctx.Reg.A[0]))
		ctx.AndB(buf.Bits(), off, 0x00)
		ctx.OrB(buf.Bits(), off, digitFont[digit][i])
		ctx.Reg.A[0] += uint32(rb)
		i++
	}
}

// DrawNumber draws a non-negative number right-aligned at byte column bx,
// one digit per byte column, using width columns. Leading positions are
// zero-filled, the way the original status bar renders scores.
func DrawNumber(buf *screen.Buffer, bx, y int, value, width int) {
	if value < 0 {
		value = 0
	}
	for i := 0; i < width; i++ {
		DrawDigit(buf, bx+width-1-i, y, value%10)
		value /= 10
	}
}
