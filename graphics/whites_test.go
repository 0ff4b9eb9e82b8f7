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

// fill the view area with black
func blackView(buf *screen.Buffer) {
	bits := buf.Bits()
	for y := screen.SBarHeight; y < buf.Height(); y++ {
		for b := 0; b < buf.RowBytes(); b++ {
			bits[y*buf.RowBytes()+b] = 0xff
		}
	}
}

func TestWhiteWallPiece(t *testing.T) {
	buf := screen.New()
	blackView(buf)

	// an all-zero pattern paints a full 16-pixel white row
	WhiteWallPiece(buf, 3, 10, []uint16{0x0000}, 1)

	row := 10 + screen.SBarHeight
	test.Equate(t, buf.Pixel(2, row), true)
	for x := 3; x < 19; x++ {
		if buf.Pixel(x, row) {
			t.Errorf("pixel %d not cleared", x)
		}
	}
	test.Equate(t, buf.Pixel(19, row), true)

	// neighboring rows untouched
	test.Equate(t, buf.Pixel(10, row-1), true)
	test.Equate(t, buf.Pixel(10, row+1), true)
}

func TestWhiteWallPieceLeftClip(t *testing.T) {
	buf := screen.New()
	blackView(buf)

	WhiteWallPiece(buf, -5, 10, []uint16{0x0000}, 1)

	row := 10 + screen.SBarHeight
	for x := 0; x < 11; x++ {
		if buf.Pixel(x, row) {
			t.Errorf("pixel %d not cleared", x)
		}
	}
	test.Equate(t, buf.Pixel(11, row), true)
}

func TestWhiteWallPieceOffscreen(t *testing.T) {
	buf := screen.New()
	blackView(buf)
	before := make([]byte, len(buf.Bits()))
	copy(before, buf.Bits())

	WhiteWallPiece(buf, -16, 10, []uint16{0x0000}, 1)
	WhiteWallPiece(buf, screen.Width, 10, []uint16{0x0000}, 1)
	WhiteWallPiece(buf, 10, screen.ViewHeight, []uint16{0x0000}, 1)

	for i := range before {
		if before[i] != buf.Bits()[i] {
			t.Fatalf("offscreen piece touched the buffer")
		}
	}
}

func TestEorWallPiece(t *testing.T) {
	buf := screen.New()

	EorWallPiece(buf, 3, 10, []uint16{0xffff}, 1)

	row := 10 + screen.SBarHeight
	test.Equate(t, buf.Pixel(2, row), false)
	for x := 3; x < 19; x++ {
		if !buf.Pixel(x, row) {
			t.Errorf("pixel %d not inverted", x)
		}
	}
	test.Equate(t, buf.Pixel(19, row), false)

	// a second pass restores the original screen
	EorWallPiece(buf, 3, 10, []uint16{0xffff}, 1)
	for _, b := range buf.Bits() {
		if b != 0 {
			t.Fatalf("double invert did not cancel")
		}
	}
}
