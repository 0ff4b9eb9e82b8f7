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

// Package game runs the simulation: a scrolling viewport over a planet,
// with the ship steered by per-frame input. Everything is integer
// arithmetic driven through the mc68000 context, so a given planet and
// input sequence always produces the same sequence of frames. The recorder
// and regression packages rely on that.
package game

import (
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/graphics"
	"github.com/sam-mfb/continuum-sub007/hardware/screen"
	"github.com/sam-mfb/continuum-sub007/sound"
)

// Input is the set of controls pressed during one frame.
type Input uint8

// Input bits.
const (
	Thrust Input = 1 << iota
	Left
	Right
	Shield
	Fire
)

const (
	numRotations = 32

	// fixed point shift for ship position and velocity
	speedShift = 5

	// velocity gained per frame of thrust, fixed point
	thrustAccel = 12

	maxFuel = 9999
)

// sine quarter table for ship thrust, scaled to 128. full circle recovered
// by symmetry
var sinTable = [9]int{0, 25, 49, 71, 90, 106, 117, 125, 128}

// Game is one planet being played.
type Game struct {
	Planet *galaxy.Planet

	walls *graphics.Walls
	buf   *screen.Buffer
	synth *sound.Synth

	// ship state. position is fixed point world coordinates
	shipX, shipY int
	velX, velY   int
	rot          int

	fuel     int
	frameNum int
}

// NewGame starts a game on the given planet.
func NewGame(p *galaxy.Planet) *Game {
	worldWidth := 0
	if p.Wrap {
		worldWidth = p.WorldWidth
	}

	return &Game{
		Planet: p,
		walls:  graphics.NewWalls(p.Lines, worldWidth),
		buf:    screen.New(),
		synth:  sound.NewSynth(),
		shipX:  p.ShipX << speedShift,
		shipY:  p.ShipY << speedShift,
		fuel:   maxFuel,
	}
}

// Screen returns the game's screen buffer. The contents are valid after
// each Frame call.
func (g *Game) Screen() *screen.Buffer {
	return g.buf
}

// FrameNum returns the number of frames simulated so far.
func (g *Game) FrameNum() int {
	return g.frameNum
}

// Fuel returns the ship's remaining fuel.
func (g *Game) Fuel() int {
	return g.fuel
}

// ShipPosition returns the ship's world coordinates.
func (g *Game) ShipPosition() (int, int) {
	return g.shipX >> speedShift, g.shipY >> speedShift
}

// sin returns sine of a ship rotation step, scaled to 128. rotation 0
// points up, increasing clockwise.
func sin(rot int) int {
	rot &= numRotations - 1
	switch {
	case rot <= 8:
		return sinTable[rot]
	case rot <= 16:
		return sinTable[16-rot]
	case rot <= 24:
		return -sinTable[rot-16]
	default:
		return -sinTable[32-rot]
	}
}

func cos(rot int) int {
	return sin(rot + 8)
}

// Frame advances the simulation by one frame and renders it.
func (g *Game) Frame(in Input) {
	g.update(in)
	g.render()
	g.frameNum++
}

func (g *Game) update(in Input) {
	if in&Left != 0 {
		g.rot = (g.rot - 1) & (numRotations - 1)
	}
	if in&Right != 0 {
		g.rot = (g.rot + 1) & (numRotations - 1)
	}

	if in&Thrust != 0 && g.fuel > 0 {
		// rotation 0 points up the screen, which is negative y
		g.velX += thrustAccel * sin(g.rot) / 128
		g.velY -= thrustAccel * cos(g.rot) / 128
		g.fuel--
		g.synth.Start(sound.ThrusterSound)
	} else {
		g.synth.Stop(sound.ThrusterSound)
	}

	if in&Shield != 0 && g.fuel > 0 {
		g.fuel--
		g.synth.Start(sound.ShieldSound)
	} else {
		g.synth.Stop(sound.ShieldSound)
	}

	if in&Fire != 0 {
		g.synth.Start(sound.FireSound)
	}

	if g.frameNum%bunkerFirePeriod == 0 && g.bunkerInRange() {
		g.synth.Start(sound.BunkerSound)
	}

	g.shipX += g.velX
	g.shipY += g.velY

	// gentle drag keeps velocity bounded
	g.velX -= g.velX / 64
	g.velY -= g.velY / 64

	w := g.Planet.WorldWidth << speedShift
	h := g.Planet.WorldHeight << speedShift
	if g.Planet.Wrap {
		for g.shipX < 0 {
			g.shipX += w
		}
		for g.shipX >= w {
			g.shipX -= w
		}
	} else {
		if g.shipX < 0 {
			g.shipX = 0
			g.velX = 0
		}
		if g.shipX >= w {
			g.shipX = w - 1
			g.velX = 0
		}
	}
	if g.shipY < 0 {
		g.shipY = 0
		g.velY = 0
	}
	if g.shipY >= h {
		g.shipY = h - 1
		g.velY = 0
	}
}

// bunkers take a shot at the ship when it strays into range
const (
	bunkerFirePeriod = 40
	bunkerRange      = 200
)

func (g *Game) bunkerInRange() bool {
	sx, sy := g.ShipPosition()
	for _, b := range g.Planet.Bunkers {
		dx := b.X - sx
		if g.Planet.Wrap {
			if dx > g.Planet.WorldWidth/2 {
				dx -= g.Planet.WorldWidth
			}
			if dx < -g.Planet.WorldWidth/2 {
				dx += g.Planet.WorldWidth
			}
		}
		dy := b.Y - sy
		if dx*dx+dy*dy <= bunkerRange*bunkerRange {
			return true
		}
	}
	return false
}

// Sound returns the next frame of audio.
func (g *Game) Sound() sound.Frame {
	return g.synth.Frame()
}

// viewport returns the world coordinates of the view's top-left corner,
// centered on the ship and clamped (or wrapped) against the world edges.
func (g *Game) viewport() (int, int) {
	sx, sy := g.ShipPosition()

	x := sx - screen.Width/2
	y := sy - screen.ViewHeight/2

	if g.Planet.Wrap {
		for x < 0 {
			x += g.Planet.WorldWidth
		}
	} else {
		if x < 0 {
			x = 0
		}
		if x > g.Planet.WorldWidth-screen.Width {
			x = g.Planet.WorldWidth - screen.Width
		}
	}

	if y < 0 {
		y = 0
	}
	if y > g.Planet.WorldHeight-screen.ViewHeight {
		y = g.Planet.WorldHeight - screen.ViewHeight
	}

	return x, y
}
