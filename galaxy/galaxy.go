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

// Package galaxy loads galaxy files: the big-endian planet descriptions
// the gameplay runs on. A galaxy is a sequence of planets; each planet is
// a world size, a starting ship position and lists of walls, bunkers, fuel
// cells and craters.
package galaxy

import (
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/graphics"
	"github.com/sam-mfb/continuum-sub007/logger"
)

var magic = [4]byte{'C', 'T', 'N', 'M'}

const fileVersion = 1

// sentinel word ending each object list
const endOfList = 10000

// Bunker is a gun emplacement.
type Bunker struct {
	X, Y int
	Rot  int
	Kind int
}

// Fuel is a fuel cell.
type Fuel struct {
	X, Y int
}

// Crater marks where a bunker was destroyed in a previous life.
type Crater struct {
	X, Y int
}

// Planet is one level of a galaxy.
type Planet struct {
	WorldWidth  int
	WorldHeight int
	Wrap        bool
	ShipX       int
	ShipY       int

	Lines   []*graphics.Line
	Bunkers []Bunker
	Fuels   []Fuel
	Craters []Crater
}

// Galaxy is a named sequence of planets.
type Galaxy struct {
	Name    string
	Planets []*Planet
	hash    string
}

// Hash returns the fingerprint of the file the galaxy was loaded from.
// Recorded transcripts store it so playback can detect a changed file.
func (g *Galaxy) Hash() string {
	return g.hash
}

// Load reads a galaxy from disk. The name "demo" loads the built-in demo
// galaxy instead of a file.
func Load(filename string) (*Galaxy, error) {
	if filename == DemoName {
		return Demo(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("galaxy: %v", err)
	}

	// the name is the path as given, so transcripts recorded against the
	// galaxy can find the file again
	g, err := Decode(filename, data)
	if err != nil {
		return nil, err
	}

	logger.Logf("galaxy", "loaded %s (%d planets)", filepath.Base(filename), len(g.Planets))

	return g, nil
}

// Decode parses galaxy data.
func Decode(name string, data []byte) (*Galaxy, error) {
	r := bytes.NewReader(data)

	var hdr struct {
		Magic   [4]byte
		Version uint16
		Planets uint16
	}
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, curated.Errorf("galaxy: %v", err)
	}
	if hdr.Magic != magic {
		return nil, curated.Errorf("galaxy: %v", "not a galaxy file")
	}
	if hdr.Version != fileVersion {
		return nil, curated.Errorf("galaxy: %v",
			fmt.Sprintf("unsupported file version [%d]", hdr.Version))
	}

	g := &Galaxy{
		Name: name,
		hash: fmt.Sprintf("%x", sha1.Sum(data)),
	}

	for i := 0; i < int(hdr.Planets); i++ {
		p, err := decodePlanet(r)
		if err != nil {
			return nil, curated.Errorf("galaxy: %v",
				fmt.Sprintf("planet %d: %v", i, err))
		}
		g.Planets = append(g.Planets, p)
	}

	return g, nil
}

func decodePlanet(r io.Reader) (*Planet, error) {
	var fixed struct {
		WorldWidth  uint16
		WorldHeight uint16
		Wrap        uint16
		ShipX       uint16
		ShipY       uint16
	}
	if err := binary.Read(r, binary.BigEndian, &fixed); err != nil {
		return nil, err
	}

	p := &Planet{
		WorldWidth:  int(fixed.WorldWidth),
		WorldHeight: int(fixed.WorldHeight),
		Wrap:        fixed.Wrap != 0,
		ShipX:       int(fixed.ShipX),
		ShipY:       int(fixed.ShipY),
	}

	for {
		var line struct {
			StartX uint16
			StartY uint16
			Length uint16
			Dir    uint8
			Kind   uint8
		}
		if err := binary.Read(r, binary.BigEndian, &line.StartX); err != nil {
			return nil, err
		}
		if line.StartX == endOfList {
			break
		}
		if err := binary.Read(r, binary.BigEndian, &line.StartY); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &line.Length); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &line.Dir); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &line.Kind); err != nil {
			return nil, err
		}
		if line.Dir == 0 || line.Dir > uint8(graphics.DirNNE) {
			return nil, fmt.Errorf("illegal wall direction [%d]", line.Dir)
		}
		if line.Kind >= uint8(graphics.NumLineKinds) {
			return nil, fmt.Errorf("illegal wall kind [%d]", line.Kind)
		}
		p.Lines = append(p.Lines, graphics.NewLine(
			int(line.StartX), int(line.StartY), int(line.Length),
			graphics.LineDir(line.Dir), graphics.LineKind(line.Kind),
		))
	}

	for {
		var v [4]uint16
		if err := binary.Read(r, binary.BigEndian, &v[0]); err != nil {
			return nil, err
		}
		if v[0] == endOfList {
			break
		}
		if err := binary.Read(r, binary.BigEndian, v[1:]); err != nil {
			return nil, err
		}
		p.Bunkers = append(p.Bunkers, Bunker{
			X: int(v[0]), Y: int(v[1]), Rot: int(v[2]), Kind: int(v[3]),
		})
	}

	for {
		var v [2]uint16
		if err := binary.Read(r, binary.BigEndian, &v[0]); err != nil {
			return nil, err
		}
		if v[0] == endOfList {
			break
		}
		if err := binary.Read(r, binary.BigEndian, &v[1]); err != nil {
			return nil, err
		}
		p.Fuels = append(p.Fuels, Fuel{X: int(v[0]), Y: int(v[1])})
	}

	for {
		var v [2]uint16
		if err := binary.Read(r, binary.BigEndian, &v[0]); err != nil {
			return nil, err
		}
		if v[0] == endOfList {
			break
		}
		if err := binary.Read(r, binary.BigEndian, &v[1]); err != nil {
			return nil, err
		}
		p.Craters = append(p.Craters, Crater{X: int(v[0]), Y: int(v[1])})
	}

	return p, nil
}

// Encode serializes a galaxy into the file format. The level editor and
// the test suite use it; the game itself only reads.
func Encode(g *Galaxy) []byte {
	w := &bytes.Buffer{}

	_ = binary.Write(w, binary.BigEndian, magic)
	_ = binary.Write(w, binary.BigEndian, uint16(fileVersion))
	_ = binary.Write(w, binary.BigEndian, uint16(len(g.Planets)))

	for _, p := range g.Planets {
		wrap := uint16(0)
		if p.Wrap {
			wrap = 1
		}
		_ = binary.Write(w, binary.BigEndian, uint16(p.WorldWidth))
		_ = binary.Write(w, binary.BigEndian, uint16(p.WorldHeight))
		_ = binary.Write(w, binary.BigEndian, wrap)
		_ = binary.Write(w, binary.BigEndian, uint16(p.ShipX))
		_ = binary.Write(w, binary.BigEndian, uint16(p.ShipY))

		for _, ln := range p.Lines {
			_ = binary.Write(w, binary.BigEndian, uint16(ln.StartX))
			_ = binary.Write(w, binary.BigEndian, uint16(ln.StartY))
			_ = binary.Write(w, binary.BigEndian, uint16(ln.Length))
			_ = binary.Write(w, binary.BigEndian, uint8(ln.Dir))
			_ = binary.Write(w, binary.BigEndian, uint8(ln.Kind))
		}
		_ = binary.Write(w, binary.BigEndian, uint16(endOfList))

		for _, b := range p.Bunkers {
			_ = binary.Write(w, binary.BigEndian, uint16(b.X))
			_ = binary.Write(w, binary.BigEndian, uint16(b.Y))
			_ = binary.Write(w, binary.BigEndian, uint16(b.Rot))
			_ = binary.Write(w, binary.BigEndian, uint16(b.Kind))
		}
		_ = binary.Write(w, binary.BigEndian, uint16(endOfList))

		for _, fl := range p.Fuels {
			_ = binary.Write(w, binary.BigEndian, uint16(fl.X))
			_ = binary.Write(w, binary.BigEndian, uint16(fl.Y))
		}
		_ = binary.Write(w, binary.BigEndian, uint16(endOfList))

		for _, c := range p.Craters {
			_ = binary.Write(w, binary.BigEndian, uint16(c.X))
			_ = binary.Write(w, binary.BigEndian, uint16(c.Y))
		}
		_ = binary.Write(w, binary.BigEndian, uint16(endOfList))
	}

	return w.Bytes()
}
