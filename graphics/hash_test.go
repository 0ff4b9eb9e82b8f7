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
	"bytes"
	"testing"

	"github.com/sam-mfb/continuum-sub007/hardware/screen"
	"github.com/sam-mfb/continuum-sub007/test"
)

func TestHashShape(t *testing.T) {
	buf := screen.New()
	DrawHash(buf, 100, 50)

	for i, want := range hashFigure {
		row := 50 + i + screen.SBarHeight
		var got uint16
		for b := 0; b < 16; b++ {
			if buf.Pixel(100+b, row) {
				got |= 1 << (15 - uint(b))
			}
		}
		test.Equate(t, got, int(want))
	}
}

// the shift-cascade fast path must render exactly the same pixels as the
// general clipped routine
func TestHashQuickMatchesClipped(t *testing.T) {
	for _, x := range []int{0, 1, 7, 15, 16, 100, 250, screen.Width - 10} {
		a := screen.New()
		b := screen.New()

		DrawHash(a, x, 50)
		drawHashQuick(b, x, 50)

		if !bytes.Equal(a.Bits(), b.Bits()) {
			t.Errorf("x=%d: fast path differs from clipped path", x)
		}
	}
}

func TestHashClipped(t *testing.T) {
	buf := screen.New()

	// partially above the view: only the lower rows land
	DrawHash(buf, 100, -2)
	test.Equate(t, buf.Pixel(103, screen.SBarHeight), true)

	// entirely above: nothing drawn
	buf.Clear()
	DrawHash(buf, 100, -HashHeight)
	for _, v := range buf.Bits() {
		if v != 0 {
			t.Fatalf("fully clipped hash touched the buffer")
		}
	}
}
