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

package regression

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/database"
	"github.com/sam-mfb/continuum-sub007/digest"
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/game"
)

const frameEntryID = "frame"

const (
	frameFieldGalaxy int = iota
	frameFieldPlanet
	frameFieldNumFrames
	frameFieldDigest
	numFrameFields
)

// FrameRegression runs a planet with no input for a number of frames and
// fingerprints the video output.
type FrameRegression struct {
	GalaxyFile string
	Planet     int
	NumFrames  int

	digest string
}

func deserialiseFrameEntry(fields []string) (database.Entry, error) {
	reg := &FrameRegression{}

	if len(fields) != numFrameFields {
		return nil, curated.Errorf("frame: %v", "wrong number of fields in database entry")
	}

	reg.GalaxyFile = fields[frameFieldGalaxy]
	reg.digest = fields[frameFieldDigest]

	var err error

	reg.Planet, err = strconv.Atoi(fields[frameFieldPlanet])
	if err != nil {
		return nil, curated.Errorf("frame: invalid planet field [%s]", fields[frameFieldPlanet])
	}

	reg.NumFrames, err = strconv.Atoi(fields[frameFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf("frame: invalid numFrames field [%s]", fields[frameFieldNumFrames])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg *FrameRegression) ID() string {
	return frameEntryID
}

// String implements the database.Entry interface.
func (reg *FrameRegression) String() string {
	return fmt.Sprintf("[%s] %s planet=%d frames=%d", reg.ID(), reg.GalaxyFile, reg.Planet, reg.NumFrames)
}

// Serialise implements the database.Entry interface.
func (reg *FrameRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.GalaxyFile,
		strconv.Itoa(reg.Planet),
		strconv.Itoa(reg.NumFrames),
		reg.digest,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *FrameRegression) CleanUp() error {
	return nil
}

func (reg *FrameRegression) regress(newRegression bool, output io.Writer) (bool, error) {
	g, err := galaxy.Load(reg.GalaxyFile)
	if err != nil {
		return false, err
	}
	if reg.Planet < 0 || reg.Planet >= len(g.Planets) {
		return false, curated.Errorf("frame: no planet %d in galaxy", reg.Planet)
	}

	gm := game.NewGame(g.Planets[reg.Planet])
	vid := digest.NewVideo()

	for i := 0; i < reg.NumFrames; i++ {
		gm.Frame(0)
		vid.NewFrame(gm.Screen())
	}

	if newRegression {
		reg.digest = vid.Hash()
		return true, nil
	}

	return vid.Hash() == reg.digest, nil
}
