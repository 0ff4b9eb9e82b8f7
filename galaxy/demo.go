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

package galaxy

import (
	"crypto/sha1"
	"fmt"

	"github.com/sam-mfb/continuum-sub007/graphics"
)

// DemoName is the pseudo-filename of the built-in galaxy.
const DemoName = "demo"

// Demo returns the built-in single-planet galaxy used by the demo mode and
// the test suite. The galaxy is constructed rather than parsed so it is
// always available; its hash fingerprints the encoded form.
func Demo() *Galaxy {
	p := &Planet{
		WorldWidth:  1024,
		WorldHeight: 760,
		Wrap:        true,
		ShipX:       300,
		ShipY:       200,
		Lines: []*graphics.Line{
			graphics.NewLine(200, 150, 60, graphics.DirE, graphics.LineNormal),
			graphics.NewLine(260, 150, 40, graphics.DirSE, graphics.LineNormal),
			graphics.NewLine(300, 190, 80, graphics.DirS, graphics.LineNormal),
			graphics.NewLine(200, 150, 50, graphics.DirS, graphics.LineBounce),
			graphics.NewLine(440, 300, 100, graphics.DirE, graphics.LineNormal),
			graphics.NewLine(540, 250, 50, graphics.DirS, graphics.LineGhost),
			graphics.NewLine(600, 400, 60, graphics.DirNE, graphics.LineNormal),
		},
		Bunkers: []Bunker{
			{X: 350, Y: 220, Rot: 0, Kind: 0},
			{X: 500, Y: 310, Rot: 4, Kind: 1},
		},
		Fuels: []Fuel{
			{X: 250, Y: 260},
			{X: 620, Y: 350},
		},
	}

	g := &Galaxy{
		Name:    DemoName,
		Planets: []*Planet{p},
	}
	g.hash = fmt.Sprintf("%x", sha1.Sum(Encode(g)))

	return g
}
