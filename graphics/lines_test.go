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

func TestDrawSouthLine(t *testing.T) {
	buf := screen.New()
	DrawSouthLine(buf, 20, 10, 5)

	for y := 10; y < 15; y++ {
		row := y + screen.SBarHeight
		test.Equate(t, buf.Pixel(20, row), true)
		test.Equate(t, buf.Pixel(21, row), true)
		test.Equate(t, buf.Pixel(19, row), false)
		test.Equate(t, buf.Pixel(22, row), false)
	}
	test.Equate(t, buf.Pixel(20, 9+screen.SBarHeight), false)
	test.Equate(t, buf.Pixel(20, 15+screen.SBarHeight), false)
}

func TestDrawEastLineAcrossWords(t *testing.T) {
	buf := screen.New()

	// the running pair crosses the word boundary at pixel 16
	DrawEastLine(buf, 12, 5, 10)

	row := 5 + screen.SBarHeight
	test.Equate(t, buf.Pixel(11, row), false)
	for x := 12; x <= 22; x++ {
		if !buf.Pixel(x, row) {
			t.Errorf("pixel %d not set", x)
		}
	}
	test.Equate(t, buf.Pixel(23, row), false)
}

func TestDrawSouthLineRightEdge(t *testing.T) {
	buf := screen.New()

	// at x=511 only the leading pixel of the pair is on screen; the
	// trailing pixel must not wrap to column 0 of the next row
	DrawSouthLine(buf, 511, 10, 3)

	for y := 10; y < 13; y++ {
		row := y + screen.SBarHeight
		test.Equate(t, buf.Pixel(511, row), true)
		test.Equate(t, buf.Pixel(0, row+1), false)
	}
}

func TestDrawEastLineRightEdge(t *testing.T) {
	buf := screen.New()

	// the requested length runs past the screen edge
	DrawEastLine(buf, 504, 5, 12)

	row := 5 + screen.SBarHeight
	for x := 504; x < screen.Width; x++ {
		if !buf.Pixel(x, row) {
			t.Errorf("pixel %d not set", x)
		}
	}
	for x := 0; x < 8; x++ {
		if buf.Pixel(x, row+1) {
			t.Errorf("pixel %d leaked onto the row below", x)
		}
	}
}

func TestDrawSELine(t *testing.T) {
	buf := screen.New()
	DrawSELine(buf, 10, 10, 8)

	for i := 0; i < 8; i++ {
		row := 10 + i + screen.SBarHeight
		test.Equate(t, buf.Pixel(10+i, row), true)
		test.Equate(t, buf.Pixel(11+i, row), true)
	}
}

func TestDrawNELine(t *testing.T) {
	buf := screen.New()
	DrawNELine(buf, 10, 40, 8)

	for i := 0; i < 8; i++ {
		row := 40 - i + screen.SBarHeight
		test.Equate(t, buf.Pixel(10+i, row), true)
		test.Equate(t, buf.Pixel(11+i, row), true)
	}
}
