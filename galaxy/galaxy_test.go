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

package galaxy_test

import (
	"testing"

	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/graphics"
	"github.com/sam-mfb/continuum-sub007/test"
)

func TestDecodeDemo(t *testing.T) {
	g := galaxy.Demo()
	data := galaxy.Encode(g)

	d, err := galaxy.Decode("demo", data)
	if !test.ExpectedSuccess(t, err) {
		return
	}

	test.Equate(t, len(d.Planets), len(g.Planets))
	p := d.Planets[0]
	q := g.Planets[0]
	test.Equate(t, p.WorldWidth, q.WorldWidth)
	test.Equate(t, p.WorldHeight, q.WorldHeight)
	test.Equate(t, p.Wrap, q.Wrap)
	test.Equate(t, p.ShipX, q.ShipX)
	test.Equate(t, len(p.Lines), len(q.Lines))
	test.Equate(t, len(p.Bunkers), len(q.Bunkers))
	test.Equate(t, len(p.Fuels), len(q.Fuels))

	// wall endpoints are recomputed on decode
	test.Equate(t, p.Lines[1].EndX, q.Lines[1].EndX)
	test.Equate(t, p.Lines[1].EndY, q.Lines[1].EndY)
	test.Equate(t, p.Lines[1].Dir == graphics.DirSE, true)
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := galaxy.Decode("bad", []byte("XXXXxxxxxxxxxxxx"))
	test.ExpectedFailure(t, err)
}

func TestDecodeTruncated(t *testing.T) {
	data := galaxy.Encode(galaxy.Demo())
	_, err := galaxy.Decode("short", data[:len(data)-3])
	test.ExpectedFailure(t, err)
}

func TestDemoHashStable(t *testing.T) {
	test.Equate(t, galaxy.Demo().Hash(), galaxy.Demo().Hash())
}

func TestLoadDemoName(t *testing.T) {
	g, err := galaxy.Load(galaxy.DemoName)
	if !test.ExpectedSuccess(t, err) {
		return
	}
	test.Equate(t, g.Name, galaxy.DemoName)
}
