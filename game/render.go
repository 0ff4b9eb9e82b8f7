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

package game

import (
	"encoding/binary"

	"github.com/sam-mfb/continuum-sub007/graphics"
	"github.com/sam-mfb/continuum-sub007/hardware/screen"
)

// shipFigure is the ship pointing up, 16x16 in the high word of each row.
var shipFigure = []uint32{
	0x01800000,
	0x01800000,
	0x03c00000,
	0x03c00000,
	0x06600000,
	0x06600000,
	0x0c300000,
	0x0c300000,
	0x18180000,
	0x1bd80000,
	0x3ffc0000,
	0x300c0000,
	0x60060000,
	0x40020000,
	0x00000000,
	0x00000000,
}

// shipMask covers the figure plus a one pixel margin, for the erase pass.
var shipMask = []uint32{
	0x03c00000,
	0x03c00000,
	0x07e00000,
	0x07e00000,
	0x0ff00000,
	0x0ff00000,
	0x1e780000,
	0x1e780000,
	0x3c3c0000,
	0x3ffc0000,
	0x7ffe0000,
	0x7ffe0000,
	0xf00f0000,
	0xe0070000,
	0xe0070000,
	0x00000000,
}

// fuelFigure is a fuel cell, 16x10.
var fuelFigure = []uint32{
	0x3ffc0000,
	0x7ffe0000,
	0x60060000,
	0x6db60000,
	0x6db60000,
	0x6db60000,
	0x6db60000,
	0x60060000,
	0x7ffe0000,
	0x3ffc0000,
}

const fuelHeight = 10

// bunkerFigure is a gun emplacement, 16x12. The four Rot quadrants share
// one upward-facing figure; the barrel dot distinguishes them well enough
// at this scale.
var bunkerFigure = []uint32{
	0x01800000,
	0x03c00000,
	0x03c00000,
	0x07e00000,
	0x0ff00000,
	0x1ff80000,
	0x3ffc0000,
	0x3ffc0000,
	0x7ffe0000,
	0x7ffe0000,
	0xffff0000,
	0xffff0000,
}

const bunkerHeight = 12

// craterFigure is the rubble left where a bunker stood, 16x6. Drawn gray
// so it reads as debris rather than a solid object.
var craterFigure = []uint32{
	0x0c300000,
	0x1ff80000,
	0x3bdc0000,
	0x7ffe0000,
	0xeff70000,
	0xffff0000,
}

// craterMask clears the ground under the rubble. Without it the gray
// figure lands exactly on the checkerboard and vanishes.
var craterMask = []uint32{
	0x1ff80000,
	0x3ffc0000,
	0x7ffe0000,
	0xffff0000,
	0xffff0000,
	0xffff0000,
}

const craterHeight = 6

// render draws the complete frame: gray background, craters, walls,
// bunkers, fuel cells, ship and status bar.
func (g *Game) render() {
	vx, vy := g.viewport()

	g.background()
	g.craters(vx, vy)
	g.walls.Render(g.buf, vx, vy)
	g.bunkers(vx, vy)
	g.fuelCells(vx, vy)

	sx, sy := g.ShipPosition()
	graphics.FullFigure(g.buf, sx-vx-8, sy-vy-8, shipFigure, shipMask, len(shipFigure))

	// heading marker: the nose dot shows the ship's rotation without a
	// full set of pre-rotated figures
	nx := sx + 10*sin(g.rot)/128
	ny := sy - 10*cos(g.rot)/128
	graphics.DrawFigure(g.buf, nx-vx-1, ny-vy-1, noseDot, len(noseDot))

	g.statusBar()
}

// background fills the view with the alternating gray pattern. The two
// patterns swap on odd rows to make the checkerboard.
func (g *Game) background() {
	bits := g.buf.Bits()
	rb := g.buf.RowBytes()

	for y := 0; y < screen.ViewHeight; y++ {
		back := screen.Background1
		if y&1 == 1 {
			back = screen.Background2
		}
		row := (y + screen.SBarHeight) * rb
		for b := 0; b < rb; b += 4 {
			binary.BigEndian.PutUint32(bits[row+b:], back)
		}
	}
}

func (g *Game) fuelCells(vx, vy int) {
	for _, f := range g.Planet.Fuels {
		graphics.DrawFigure(g.buf, f.X-vx-8, f.Y-vy-5, fuelFigure, fuelHeight)
		if g.Planet.Wrap {
			graphics.DrawFigure(g.buf, f.X-vx+g.Planet.WorldWidth-8, f.Y-vy-5, fuelFigure, fuelHeight)
		}
	}
}

// bunkers are anchored by their base: the stored Y is the ground row the
// figure sits on.
func (g *Game) bunkers(vx, vy int) {
	for _, b := range g.Planet.Bunkers {
		graphics.DrawFigure(g.buf, b.X-vx-8, b.Y-vy-bunkerHeight, bunkerFigure, bunkerHeight)
		if g.Planet.Wrap {
			graphics.DrawFigure(g.buf, b.X-vx+g.Planet.WorldWidth-8, b.Y-vy-bunkerHeight, bunkerFigure, bunkerHeight)
		}
	}
}

func (g *Game) craters(vx, vy int) {
	for _, c := range g.Planet.Craters {
		g.crater(c.X-vx-8, c.Y-vy-craterHeight)
		if g.Planet.Wrap {
			g.crater(c.X-vx+g.Planet.WorldWidth-8, c.Y-vy-craterHeight)
		}
	}
}

func (g *Game) crater(x, y int) {
	graphics.EraseFigure(g.buf, x, y, craterMask, craterHeight)
	graphics.GrayFigure(g.buf, x, y, craterFigure, craterHeight)
}

// statusBar redraws the white bar at the top of the screen: frame counter
// on the left, fuel gauge on the right.
func (g *Game) statusBar() {
	bits := g.buf.Bits()
	rb := g.buf.RowBytes()

	for y := 0; y < screen.SBarHeight; y++ {
		for b := 0; b < rb; b++ {
			bits[y*rb+b] = 0x00
		}
	}

	// bottom border row
	for b := 0; b < rb; b++ {
		bits[(screen.SBarHeight-1)*rb+b] = 0xff
	}

	graphics.DrawNumber(g.buf, 2, 8, g.frameNum%1000000, 6)
	graphics.DrawNumber(g.buf, rb-6, 8, g.fuel, 4)
}

// noseDot marks the ship's heading.
var noseDot = []uint32{
	0xc0000000,
	0xc0000000,
}
