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
	"testing"

	"github.com/sam-mfb/continuum-sub007/hardware/screen"
	"github.com/sam-mfb/continuum-sub007/test"
)

// a 4x4 diamond in the top-left corner of each 32-bit row
var diamondDef = []uint32{
	0x60000000, // .XX.
	0xf0000000, // XXXX
	0xf0000000, // XXXX
	0x60000000, // .XX.
}

func TestDiamondBlit(t *testing.T) {
	buf := screen.New()

	const x, y = 13, 7
	FullFigure(buf, x, y, diamondDef, diamondDef, 4)

	for py := y - 2; py < y+6; py++ {
		for px := x - 2; px < x+6; px++ {
			dx, dy := px-x, py-y
			inside := dx >= 0 && dx < 4 && dy >= 0 && dy < 4 &&
				diamondDef[dy]&(1<<(31-uint(dx))) != 0
			if buf.Pixel(px, py+screen.SBarHeight) != inside {
				t.Errorf("pixel (%d,%d): expected %v", px, py, inside)
			}
		}
	}
}

func TestDrawFigureSpillsAcrossWords(t *testing.T) {
	buf := screen.New()

	// x=30 straddles the boundary between the first and second words
	DrawFigure(buf, 30, 0, []uint32{0xffffffff}, 1)

	row := screen.SBarHeight
	test.Equate(t, buf.Pixel(29, row), false)
	for px := 30; px < 62; px++ {
		if !buf.Pixel(px, row) {
			t.Errorf("pixel %d not set", px)
		}
	}
	test.Equate(t, buf.Pixel(62, row), false)
}

func TestEraseFigure(t *testing.T) {
	buf := screen.New()

	DrawFigure(buf, 40, 10, []uint32{0xffffffff, 0xffffffff}, 2)
	EraseFigure(buf, 40, 10, []uint32{0x00ff0000, 0x00ff0000}, 2)

	row := 10 + screen.SBarHeight
	test.Equate(t, buf.Pixel(47, row), true)
	test.Equate(t, buf.Pixel(48, row), false)
	test.Equate(t, buf.Pixel(55, row+1), false)
	test.Equate(t, buf.Pixel(56, row+1), true)
}

func TestFigureClipTop(t *testing.T) {
	buf := screen.New()

	// two rows above the view: only the last row lands, on view row 0
	DrawFigure(buf, 10, -2, []uint32{0x80000000, 0x40000000, 0x20000000}, 3)

	test.Equate(t, buf.Pixel(10, screen.SBarHeight), false)
	test.Equate(t, buf.Pixel(12, screen.SBarHeight), true)
}

func TestFigureOffscreen(t *testing.T) {
	buf := screen.New()

	DrawFigure(buf, 10, screen.ViewHeight, []uint32{0xffffffff}, 1)
	DrawFigure(buf, -32, 10, []uint32{0xffffffff}, 1)
	DrawFigure(buf, 10, -1, []uint32{0xffffffff}, 1)

	for _, b := range buf.Bits() {
		if b != 0 {
			t.Fatalf("offscreen draw touched the buffer")
		}
	}
}

func TestFigureClipLeft(t *testing.T) {
	buf := screen.New()

	// figure columns 8..31 visible at pixels 0..23. nothing may reach
	// the right end of the row above
	DrawFigure(buf, -8, 10, []uint32{0xffffffff}, 1)

	row := 10 + screen.SBarHeight
	for px := 0; px < 24; px++ {
		if !buf.Pixel(px, row) {
			t.Errorf("pixel %d not set", px)
		}
	}
	test.Equate(t, buf.Pixel(24, row), false)
	for px := screen.Width - 16; px < screen.Width; px++ {
		if buf.Pixel(px, row-1) {
			t.Errorf("pixel %d leaked onto the row above", px)
		}
	}
}

func TestFigureClipFarLeft(t *testing.T) {
	buf := screen.New()

	// the aligned long is wholly offscreen: only the spill word shows
	DrawFigure(buf, -20, 10, []uint32{0xffffffff}, 1)

	row := 10 + screen.SBarHeight
	for px := 0; px < 12; px++ {
		if !buf.Pixel(px, row) {
			t.Errorf("pixel %d not set", px)
		}
	}
	test.Equate(t, buf.Pixel(12, row), false)
	for px := screen.Width - 16; px < screen.Width; px++ {
		if buf.Pixel(px, row-1) {
			t.Errorf("pixel %d leaked onto the row above", px)
		}
	}
}

func TestFigureClipRight(t *testing.T) {
	buf := screen.New()

	// figure columns 0..11 visible at pixels 500..511. nothing may wrap
	// to the left end of the row below
	DrawFigure(buf, 500, 10, []uint32{0xffffffff}, 1)

	row := 10 + screen.SBarHeight
	test.Equate(t, buf.Pixel(499, row), false)
	for px := 500; px < screen.Width; px++ {
		if !buf.Pixel(px, row) {
			t.Errorf("pixel %d not set", px)
		}
	}
	for px := 0; px < 20; px++ {
		if buf.Pixel(px, row+1) {
			t.Errorf("pixel %d leaked onto the row below", px)
		}
	}
}

func TestEraseFigureClipRight(t *testing.T) {
	buf := screen.New()

	DrawFigure(buf, 480, 10, []uint32{0xffffffff}, 1)
	DrawFigure(buf, 0, 11, []uint32{0xffffffff}, 1)
	EraseFigure(buf, 500, 10, []uint32{0xffffffff}, 1)

	row := 10 + screen.SBarHeight
	test.Equate(t, buf.Pixel(499, row), true)
	test.Equate(t, buf.Pixel(500, row), false)
	test.Equate(t, buf.Pixel(511, row), false)

	// the row below keeps its pixels
	test.Equate(t, buf.Pixel(0, row+1), true)
	test.Equate(t, buf.Pixel(19, row+1), true)
}

func TestShiftFigure(t *testing.T) {
	a := screen.New()
	b := screen.New()

	DrawFigure(a, 16, 5, []uint32{0x0000ffff}, 1)
	ShiftFigure(b, 16, 5, []uint32{0x0000ffff}, 1, 32)

	for i := range a.Bits() {
		if a.Bits()[i] != b.Bits()[i] {
			t.Fatalf("full rotation changed the figure")
		}
	}
}
