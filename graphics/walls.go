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
	"sort"

	"github.com/sam-mfb/continuum-sub007/hardware/mc68000"
	"github.com/sam-mfb/continuum-sub007/hardware/screen"
)

// LineKind is the gameplay behaviour of a wall.
type LineKind int

// Wall kinds.
const (
	LineNormal LineKind = iota
	LineBounce
	LineGhost
	LineExplode
	NumLineKinds
)

// LineDir is the compass direction of a wall, from its start point. Walls
// only exist in the eight half-quadrant directions of the original editor.
type LineDir int

// Wall directions.
const (
	DirNone LineDir = iota
	DirS
	DirSSE
	DirSE
	DirESE
	DirE
	DirENE
	DirNE
	DirNNE
)

// Line is a single wall.
type Line struct {
	StartX, StartY int
	EndX, EndY     int
	Length         int
	Kind           LineKind
	Dir            LineDir

	// h1 and h2 delimit the black section of the wall, adjusted by
	// junction processing so that patches replace the default drawing
	H1, H2 int
}

// NewLine creates a wall of the given direction and length, computing the
// end point the way the original editor did: the half-quadrant directions
// step two-to-one.
func NewLine(x, y, length int, dir LineDir, kind LineKind) *Line {
	ln := &Line{StartX: x, StartY: y, Length: length, Kind: kind, Dir: dir}

	dx, dy := 0, 0
	switch dir {
	case DirS:
		dy = length
	case DirSSE:
		dx, dy = length/2, length
	case DirSE:
		dx, dy = length, length
	case DirESE:
		dx, dy = length, length/2
	case DirE:
		dx = length
	case DirENE:
		dx, dy = length, -length/2
	case DirNE:
		dx, dy = length, -length
	case DirNNE:
		dx, dy = length/2, -length
	}
	ln.EndX = x + dx
	ln.EndY = y + dy
	return ln
}

// Junction is a point where two walls come within three pixels of each
// other. Junctions need special white patches to look correct.
type Junction struct {
	X, Y int
}

// White is a single white shadow piece awaiting drawing.
type White struct {
	X, Y        int
	Height      int
	HasJunction bool
	Data        []uint16
}

// The white piece bit patterns. Each is the 6-row white underside for a
// wall endpoint; the patterns create the 3D shadow beneath walls.
var (
	genericTop = []uint16{0xffff, 0x3fff, 0x0fff, 0x03ff, 0x00ff, 0x007f}
	nneBot     = []uint16{0x800f, 0xc01f, 0xf01f, 0xfc3f, 0xff3f, 0xffff}
	neBot      = []uint16{0x8001, 0xc003, 0xf007, 0xfc0f, 0xff1f, 0xffff}
	eneLeft    = []uint16{0x8000, 0xc000, 0xf000, 0xfc01, 0xff07, 0xffdf}
	eLeft      = []uint16{0xffff, 0xffff, 0xf000, 0xfc00, 0xff00, 0xff80}
	eseRight   = []uint16{0xffff, 0x3fff, 0x8fff, 0xe3ff, 0xf8ff, 0xfe7f}
	seTop      = []uint16{0xffff, 0xffff, 0xefff, 0xf3ff, 0xf8ff, 0xfc3f}
	seBot      = []uint16{0x87ff, 0xc3ff, 0xf1ff, 0xfcff, 0xff7f, 0xffff}
	sseTop     = []uint16{0xffff, 0xbfff, 0xcfff, 0xc3ff, 0xe0ff, 0xe03f}
	sseBot     = []uint16{0x80ff, 0xc07f, 0xf07f, 0xfc3f, 0xff3f, 0xffff}
	sBot       = []uint16{0x803f, 0xc03f, 0xf03f, 0xfc3f, 0xff3f, 0xffff}
)

// Glitch patches: special bit patterns fixing artifacts at specific wall
// endpoints.
var (
	neGlitch   = []uint16{0xefff, 0xcfff, 0x8fff, 0x0fff}
	eneGlitch1 = []uint16{0x07ff, 0x1fff, 0x7fff}
	eneGlitch2 = []uint16{0xff3f, 0xfc3f, 0xf03f, 0xc03f, 0x003f}
	eseGlitch  = []uint16{0x3fff, 0xcfff, 0xf3ff, 0xfdff}
)

// Junction patch patterns for intersecting walls.
var (
	nePatch = []uint16{0xe000, 0xc001, 0x8003, 0x0007}
)

// whitePicts maps each wall direction to its start and end white piece
// patterns; nil means no piece at that endpoint.
var whitePicts = [9][2][]uint16{
	DirNone: {nil, nil},
	DirS:    {genericTop, sBot},
	DirSSE:  {sseTop, sseBot},
	DirSE:   {seTop, seBot},
	DirESE:  {nil, eseRight},
	DirE:    {eLeft, genericTop},
	DirENE:  {eneLeft, genericTop},
	DirNE:   {neBot, genericTop},
	DirNNE:  {nneBot, genericTop},
}

// Default h1/h2 values for each direction. h1 is the start of the black
// section, h2 the end offset relative to the wall length.
var (
	simpleH1 = [9]int{0, 6, 6, 6, 12, 16, 0, 1, 0}
	simpleH2 = [9]int{0, 0, 0, 0, -1, 0, -11, -5, -5}
)

// Walls holds all wall bookkeeping for one planet: the walls themselves
// organized by kind, the junctions between them, and the white pieces
// computed once per level and drawn every frame.
type Walls struct {
	Lines []*Line

	// walls organized by kind; the gameplay code processes each kind
	// separately
	ByKind [NumLineKinds][]*Line

	// NNE walls need white-only treatment during the render pass
	WhiteOnly []*Line

	Junctions []Junction
	Whites    []White

	worldWidth int
}

// NewWalls prepares walls for rendering: organizes them by kind, finds all
// junctions, and computes the white pieces and junction patches.
func NewWalls(lines []*Line, worldWidth int) *Walls {
	w := &Walls{
		Lines:      lines,
		worldWidth: worldWidth,
	}

	for kind := LineNormal; kind < NumLineKinds; kind++ {
		for _, ln := range lines {
			if ln.Kind == kind {
				w.ByKind[kind] = append(w.ByKind[kind], ln)
			}
		}
	}

	for _, ln := range lines {
		if ln.Dir == DirNNE {
			w.WhiteOnly = append(w.WhiteOnly, ln)
		}
	}

	w.findJunctions()
	w.initWhites()

	return w
}

// findJunctions locates all points where wall endpoints come within three
// pixels of each other. The junction list is sorted by x for the render
// pass.
func (w *Walls) findJunctions() {
	for _, ln := range w.Lines {
		for i := 0; i < 2; i++ {
			x, y := ln.StartX, ln.StartY
			if i == 1 {
				x, y = ln.EndX, ln.EndY
			}

			found := false
			for _, j := range w.Junctions {
				if j.X <= x+3 && j.X >= x-3 && j.Y <= y+3 && j.Y >= y-3 {
					found = true
					break
				}
			}
			if !found {
				w.Junctions = append(w.Junctions, Junction{X: x, Y: y})
			}
		}
	}

	sort.SliceStable(w.Junctions, func(a, b int) bool {
		return w.Junctions[a].X < w.Junctions[b].X
	})
}

func (w *Walls) addWhite(x, y, ht int, data []uint16) {
	w.Whites = append(w.Whites, White{X: x, Y: y, Height: ht, Data: data})
}

// replaceWhite replaces the white piece at the target location, if one of
// greater height exists there, with a new piece at (x, y).
func (w *Walls) replaceWhite(targetX, targetY, x, y, ht int, data []uint16) {
	for i := range w.Whites {
		wh := &w.Whites[i]
		if wh.Y == targetY && wh.X == targetX && wh.Height < ht {
			wh.X = x
			wh.Y = y
			wh.Height = ht
			wh.Data = data
			return
		}
	}
}

// initWhites computes every white piece for the level: the standard
// endpoint pieces, the junction patches, a sort for the render pass, the
// merge of overlapping pieces and finally the crosshatch at junctions.
func (w *Walls) initWhites() {
	w.Whites = w.Whites[:0]

	w.normWhites()
	w.closeWhites()

	sort.SliceStable(w.Whites, func(a, b int) bool {
		if w.Whites[a].X != w.Whites[b].X {
			return w.Whites[a].X < w.Whites[b].X
		}
		return w.Whites[a].Y < w.Whites[b].Y
	})

	// merge overlapping whites. when two 6-row whites land on the same
	// position their patterns combine by AND: white where both are white
	merged := w.Whites[:0]
	for i := 0; i < len(w.Whites); i++ {
		wh := w.Whites[i]
		for i+1 < len(w.Whites) &&
			wh.X == w.Whites[i+1].X && wh.Y == w.Whites[i+1].Y &&
			wh.Height == 6 && w.Whites[i+1].Height == 6 {
			data := make([]uint16, 6)
			for k := 0; k < 6; k++ {
				data[k] = wh.Data[k] & w.Whites[i+1].Data[k]
			}
			wh.Data = data
			i++
		}
		merged = append(merged, wh)
	}
	w.Whites = merged

	w.whiteHashMerge()
}

// normWhites creates the standard white pieces for all wall endpoints,
// plus the glitch-fix pieces for the problematic directions.
func (w *Walls) normWhites() {
	for _, ln := range w.Lines {
		for i := 0; i < 2; i++ {
			if pict := whitePicts[ln.Dir][i]; pict != nil {
				x, y := ln.StartX, ln.StartY
				if i == 1 {
					x, y = ln.EndX, ln.EndY
				}
				w.addWhite(x, y, 6, pict)
			}
		}

		switch ln.Dir {
		case DirNE:
			w.addWhite(ln.EndX-4, ln.EndY+2, 4, neGlitch)
		case DirENE:
			w.addWhite(ln.StartX+16, ln.StartY, 3, eneGlitch1)
			w.addWhite(ln.EndX-10, ln.EndY+1, 5, eneGlitch2)
		case DirESE:
			w.addWhite(ln.EndX-7, ln.EndY-2, 4, eseGlitch)
		}
	}
}

// nPatch is the generic junction patch: a column of 0x003f rows.
var nPatch = func() []uint16 {
	p := make([]uint16, 22)
	for i := range p {
		p[i] = 0x003f
	}
	return p
}()

// closeWhites finds all pairs of walls whose endpoints come close together
// and computes the patches needed at each.
func (w *Walls) closeWhites() {
	for _, ln := range w.Lines {
		ln.H1 = simpleH1[ln.Dir]
		ln.H2 = ln.Length + simpleH2[ln.Dir]
	}

	for _, ln := range w.Lines {
		for i := 0; i < 2; i++ {
			x1, y1 := ln.StartX, ln.StartY
			if i == 1 {
				x1, y1 = ln.EndX, ln.EndY
			}

			for _, ln2 := range w.Lines {
				for j := 0; j < 2; j++ {
					x2, y2 := ln2.StartX, ln2.StartY
					if j == 1 {
						x2, y2 = ln2.EndX, ln2.EndY
					}
					// endpoints within a 6x6 box centered on the other
					x2 -= 3
					y2 -= 3
					if x1 > x2 && y1 > y2 && x1 < x2+6 && y1 < y2+6 {
						w.oneClose(ln, ln2, i, j)
					}
				}
			}
		}
	}
}

// oneClose computes the patches for a single pair of close endpoints. The
// direction pairs needing patches, and the patch sizes, were determined
// empirically by the original author; only the combinations that occur in
// shipped galaxies are handled.
func (w *Walls) oneClose(ln, ln2 *Line, n, m int) {
	// convert wall direction to a compass direction 0-15, reversed when
	// the endpoint under consideration is the wall's end
	dir1 := 9 - int(ln.Dir)
	if n == 1 {
		dir1 = (dir1 + 8) & 15
	}
	dir2 := 9 - int(ln2.Dir)
	if m == 1 {
		dir2 = (dir2 + 8) & 15
	}

	if dir1 == dir2 {
		return
	}

	switch dir1 {
	case 0: // south end
		var i int
		switch dir2 {
		case 15, 1:
			i = 21
		case 2:
			i = 10
		case 3, 14:
			i = 6
		default:
			return
		}
		j := ln.H2
		if ln.Length-i > j {
			return
		}
		if j < ln.Length {
			w.replaceWhite(ln.StartX, ln.StartY+j, ln.EndX, ln.EndY-i, i, nPatch)
		} else {
			w.addWhite(ln.EndX, ln.EndY-i, i, nPatch)
		}
		ln.H2 = ln.Length - i

	case 2: // southeast end
		var i int
		switch dir2 {
		case 0:
			i = 3
		case 1:
			i = 6
		case 3:
			i = 4
		case 14:
			i = 1
		case 15:
			i = 2
		default:
			return
		}
		for j := 0; j < 4*i; j += 4 {
			if ln.H1 < 5+j {
				w.addWhite(ln.StartX+3+j, ln.StartY-4-j, 4, nePatch)
			}
		}
		if j := 5 + 4*(i-1); ln.H1 < j {
			ln.H1 = j
		}
	}
}

// whiteHashMerge bakes the junction crosshatch into whites that sit
// exactly on a junction, removing the junction from the live list: a baked
// white no longer needs a hash drawn over it each frame.
func (w *Walls) whiteHashMerge() {
	ctx := mc68000.NewContext(mc68000.Config{})

	remaining := w.Junctions[:0]
	for _, j := range w.Junctions {
		wh := w.findHashableWhite(j)
		if wh == nil {
			remaining = append(remaining, j)
			continue
		}

		// background pattern for this position, alternating with parity
		back := screen.Background1 & 0xffff
		if (wh.X+wh.Y)&1 == 1 {
			back = screen.Background2 & 0xffff
		}

		// overlay the crosshatch: background gray shows through where
		// the white was cut away, the hash bits themselves invert
		data := make([]uint16, 6)
		for i := 0; i < 6; i++ {
			data[i] = uint16(back&uint32(^wh.Data[i]|hashFigure[i])) ^ hashFigure[i]
			back = ctx.RolW(back, 1)
		}
		wh.Data = data
		wh.HasJunction = true
	}
	w.Junctions = remaining
}

// findHashableWhite returns the full-height white sitting exactly on the
// junction, provided it is clear of other whites and the world edges.
func (w *Walls) findHashableWhite(j Junction) *White {
	for i := range w.Whites {
		wh := &w.Whites[i]
		if wh.X != j.X || wh.Y != j.Y {
			continue
		}
		if wh.Height != 6 || wh.X <= 8 || wh.X >= w.worldWidth-8 {
			return nil
		}
		if !w.noCloseWhite(i) {
			return nil
		}
		return wh
	}
	return nil
}

// noCloseWhite checks that no other white piece is within three pixels of
// white i. The whites slice is sorted by x so the scan stops early.
func (w *Walls) noCloseWhite(i int) bool {
	w1 := &w.Whites[i]
	for k := i - 1; k >= 0 && w.Whites[k].X > w1.X-3; k-- {
		if w.Whites[k].Y < w1.Y+3 && w.Whites[k].Y > w1.Y-3 {
			return false
		}
	}
	for k := i + 1; k < len(w.Whites) && w.Whites[k].X < w1.X+3; k++ {
		if w.Whites[k].Y < w1.Y+3 && w.Whites[k].Y > w1.Y-3 {
			return false
		}
	}
	return true
}

// Render draws the visible walls, white pieces and junction hashes for a
// viewport whose top-left corner is at world coordinates (screenX,
// screenY). Two passes handle the world's horizontal wrap.
func (w *Walls) Render(buf *screen.Buffer, screenX, screenY int) {
	for pass := 0; pass < 2; pass++ {
		ox := screenX - pass*w.worldWidth

		w.renderLines(buf, ox, screenY)
		w.renderWhites(buf, ox, screenY)
		w.renderHashes(buf, ox, screenY)

		if w.worldWidth == 0 {
			break
		}
	}
}

func (w *Walls) renderLines(buf *screen.Buffer, ox, oy int) {
	for _, ln := range w.Lines {
		x := ln.StartX - ox
		y := ln.StartY - oy
		if x+ln.Length < -16 || x-ln.Length > screen.Width {
			continue
		}

		switch ln.Dir {
		case DirS:
			DrawSouthLine(buf, x, y, ln.Length)
		case DirE:
			DrawEastLine(buf, x, y, ln.Length)
		case DirNE:
			DrawNELine(buf, x, y, ln.Length)
		case DirSE:
			DrawSELine(buf, x, y, ln.Length)
		case DirSSE, DirESE:
			DrawSELine(buf, x, y, ln.Length)
		case DirENE, DirNNE:
			DrawNELine(buf, x, y, ln.Length)
		}
	}
}

func (w *Walls) renderWhites(buf *screen.Buffer, ox, oy int) {
	top := oy
	bot := oy + screen.ViewHeight
	left := ox - 15
	right := ox + screen.Width

	for i := range w.Whites {
		wh := &w.Whites[i]
		if wh.X <= left || wh.X >= right {
			continue
		}
		if wh.Y > bot || wh.Y-top <= -wh.Height {
			continue
		}

		x := wh.X - ox
		y := wh.Y - top
		if wh.HasJunction {
			EorWallPiece(buf, x, y, wh.Data, wh.Height)
		} else {
			WhiteWallPiece(buf, x, y, wh.Data, wh.Height)
		}
	}
}

func (w *Walls) renderHashes(buf *screen.Buffer, ox, oy int) {
	top := oy - 5
	bot := oy + screen.ViewHeight
	left := ox - 8
	right := ox + screen.Width

	for _, j := range w.Junctions {
		if j.X <= left || j.X >= right {
			continue
		}
		if j.Y < top || j.Y >= bot {
			continue
		}

		x := j.X - ox
		y := j.Y - oy

		// the unclipped fast path wherever the whole hash is visible
		if y >= 0 && y < screen.ViewHeight-5 && x >= 0 && x < screen.Width-9 {
			drawHashQuick(buf, x, y)
		} else {
			DrawHash(buf, x, y)
		}
	}
}
