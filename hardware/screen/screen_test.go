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

package screen_test

import (
	"testing"

	"github.com/sam-mfb/continuum-sub007/hardware/screen"
	"github.com/sam-mfb/continuum-sub007/test"
)

func TestOffsets(t *testing.T) {
	test.Equate(t, screen.Offset(screen.RowBytes, 0, 0), 0)
	test.Equate(t, screen.Offset(screen.RowBytes, 7, 0), 0)
	test.Equate(t, screen.Offset(screen.RowBytes, 8, 0), 1)
	test.Equate(t, screen.Offset(screen.RowBytes, 511, 0), 63)
	test.Equate(t, screen.Offset(screen.RowBytes, 0, 1), 64)
	test.Equate(t, screen.Offset(screen.RowBytes, 16, 10), 642)

	test.Equate(t, screen.OffsetSBar(screen.RowBytes, 0, 0), screen.SBarHeight*screen.RowBytes)
	test.Equate(t, screen.OffsetSBar(screen.RowBytes, 32, 2), (screen.SBarHeight+2)*screen.RowBytes+4)

	test.Equate(t, screen.ByteOffset(screen.RowBytes, 3, 2), 131)
}

func TestBufferPixels(t *testing.T) {
	b := screen.NewSize(16, 4)

	test.Equate(t, b.RowBytes(), 2)
	test.Equate(t, len(b.Bits()), 8)

	b.Bits()[0] = 0x80
	test.Equate(t, b.Pixel(0, 0), true)
	test.Equate(t, b.Pixel(1, 0), false)

	b.Bits()[3] = 0x01
	test.Equate(t, b.Pixel(15, 1), true)

	// out of range reads as white
	test.Equate(t, b.Pixel(-1, 0), false)
	test.Equate(t, b.Pixel(16, 0), false)
	test.Equate(t, b.Pixel(0, 4), false)

	b.Clear()
	test.Equate(t, b.Pixel(0, 0), false)
}

func TestBufferWidthRounding(t *testing.T) {
	b := screen.NewSize(9, 1)
	test.Equate(t, b.RowBytes(), 2)
	test.Equate(t, b.Width(), 9)
	test.Equate(t, b.Height(), 1)
}

func TestToImage(t *testing.T) {
	b := screen.NewSize(8, 2)
	b.Bits()[0] = 0xff

	img := b.ToImage()
	test.Equate(t, img.Pix[0], 0x00)
	test.Equate(t, img.Pix[img.Stride], 0xff)
}
