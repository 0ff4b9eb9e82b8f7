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

func TestNewLineEndpoints(t *testing.T) {
	ln := NewLine(100, 100, 20, DirSE, LineNormal)
	test.Equate(t, ln.EndX, 120)
	test.Equate(t, ln.EndY, 120)

	ln = NewLine(100, 100, 20, DirNNE, LineNormal)
	test.Equate(t, ln.EndX, 110)
	test.Equate(t, ln.EndY, 80)

	ln = NewLine(100, 100, 20, DirE, LineNormal)
	test.Equate(t, ln.EndX, 120)
	test.Equate(t, ln.EndY, 100)
}

func TestWallKinds(t *testing.T) {
	lines := []*Line{
		NewLine(50, 50, 20, DirS, LineNormal),
		NewLine(150, 50, 20, DirS, LineBounce),
		NewLine(250, 50, 20, DirE, LineNormal),
		NewLine(350, 50, 20, DirE, LineGhost),
	}
	w := NewWalls(lines, 1000)

	test.Equate(t, len(w.ByKind[LineNormal]), 2)
	test.Equate(t, len(w.ByKind[LineBounce]), 1)
	test.Equate(t, len(w.ByKind[LineGhost]), 1)
	test.Equate(t, len(w.ByKind[LineExplode]), 0)
}

func TestJunctionDetection(t *testing.T) {
	// two walls meeting at a corner share one junction
	lines := []*Line{
		NewLine(100, 100, 20, DirS, LineNormal),
		NewLine(100, 120, 30, DirE, LineNormal),
	}
	w := NewWalls(lines, 1000)

	total := len(w.Junctions)
	for i := range w.Whites {
		if w.Whites[i].HasJunction {
			total++
		}
	}
	test.Equate(t, total, 3)

	// junctions near an existing one are folded into it
	lines = []*Line{
		NewLine(100, 100, 20, DirS, LineNormal),
		NewLine(102, 122, 30, DirE, LineNormal),
	}
	w = NewWalls(lines, 1000)
	total = len(w.Junctions)
	for i := range w.Whites {
		if w.Whites[i].HasJunction {
			total++
		}
	}
	test.Equate(t, total, 3)
}

func TestWhiteHashMerge(t *testing.T) {
	// the corner white is isolated and full height so the junction
	// crosshatch is baked into it
	lines := []*Line{
		NewLine(100, 100, 40, DirS, LineNormal),
		NewLine(100, 140, 40, DirE, LineNormal),
	}
	w := NewWalls(lines, 1000)

	corner := false
	for i := range w.Whites {
		if w.Whites[i].X == 100 && w.Whites[i].Y == 140 {
			corner = w.Whites[i].HasJunction
		}
	}
	test.Equate(t, corner, true)

	// the baked junction no longer appears in the live list
	for _, j := range w.Junctions {
		if j.X == 100 && j.Y == 140 {
			t.Errorf("merged junction still live")
		}
	}
}

func TestWhiteMergeOverlap(t *testing.T) {
	// two walls ending at the same point leave a single white there
	lines := []*Line{
		NewLine(100, 100, 40, DirS, LineNormal),
		NewLine(100, 140, 40, DirE, LineNormal),
	}
	w := NewWalls(lines, 1000)

	count := 0
	for i := range w.Whites {
		if w.Whites[i].X == 100 && w.Whites[i].Y == 140 {
			count++
		}
	}
	test.Equate(t, count, 1)
}

func TestRenderVisible(t *testing.T) {
	lines := []*Line{
		NewLine(100, 100, 40, DirS, LineNormal),
		NewLine(100, 140, 40, DirE, LineNormal),
	}
	w := NewWalls(lines, 1000)

	buf := screen.New()
	w.Render(buf, 50, 50)

	// the vertical wall lands at view x=50
	test.Equate(t, buf.Pixel(50, 60+screen.SBarHeight), true)

	// a distant viewport sees nothing
	buf.Clear()
	w.Render(buf, 600, 600)
	for _, b := range buf.Bits() {
		if b != 0 {
			t.Fatalf("distant viewport drew pixels")
		}
	}
}

func TestRenderWorldWrap(t *testing.T) {
	// a wall near the world's left edge is visible from a viewport at
	// the right edge via the wraparound pass
	lines := []*Line{
		NewLine(30, 100, 40, DirS, LineNormal),
	}
	w := NewWalls(lines, 600)

	buf := screen.New()
	w.Render(buf, 580, 90)

	// view x = 30 - 580 + 600 = 50
	test.Equate(t, buf.Pixel(50, 20+screen.SBarHeight), true)
}
