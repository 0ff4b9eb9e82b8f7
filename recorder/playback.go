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

package recorder

import (
	"os"
	"strconv"
	"strings"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/digest"
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/game"
)

type playbackEntry struct {
	input game.Input
	frame int
	hash  string

	// the line in the transcript the entry appears on
	line int
}

// Playback replays a transcript and verifies the emulation against it.
type Playback struct {
	GalaxyName string
	GalaxyHash string
	Planet     int

	sequence []playbackEntry
}

// NewPlayback reads and parses a transcript.
func NewPlayback(transcript string) (*Playback, error) {
	buffer, err := os.ReadFile(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	lines := strings.Split(string(buffer), "\n")
	if len(lines) < numHeaderLines {
		return nil, curated.Errorf("playback: %v", "transcript too short")
	}

	plb := &Playback{
		GalaxyName: lines[lineGalaxyName],
		GalaxyHash: lines[lineGalaxyHash],
	}

	plb.Planet, err = strconv.Atoi(lines[linePlanet])
	if err != nil {
		return nil, curated.Errorf("playback: invalid planet index at line %d", linePlanet+1)
	}

	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		ent := playbackEntry{line: i + 1}

		in, err := strconv.Atoi(toks[fieldInput])
		if err != nil {
			return nil, curated.Errorf("playback: invalid input field at line %d", i+1)
		}
		ent.input = game.Input(in)

		ent.frame, err = strconv.Atoi(toks[fieldFrame])
		if err != nil {
			return nil, curated.Errorf("playback: invalid frame field at line %d", i+1)
		}

		ent.hash = toks[fieldHash]

		plb.sequence = append(plb.sequence, ent)
	}

	return plb, nil
}

// EndFrame returns the frame number of the last entry in the transcript.
func (plb *Playback) EndFrame() int {
	if len(plb.sequence) == 0 {
		return 0
	}
	return plb.sequence[len(plb.sequence)-1].frame
}

// Verify replays the transcript into a fresh game and checks the video
// digest at every recorded frame. The galaxy must be the one the
// transcript was recorded with.
func (plb *Playback) Verify(g *galaxy.Galaxy) error {
	if g.Hash() != plb.GalaxyHash {
		return curated.Errorf("playback: %v", "galaxy file has changed since the transcript was recorded")
	}
	if plb.Planet < 0 || plb.Planet >= len(g.Planets) {
		return curated.Errorf("playback: no planet %d in galaxy", plb.Planet)
	}

	gm := game.NewGame(g.Planets[plb.Planet])
	vid := digest.NewVideo()

	for _, ent := range plb.sequence {
		// run the game up to the entry's frame. frames between entries
		// carry no input
		for gm.FrameNum() < ent.frame {
			gm.Frame(0)
			vid.NewFrame(gm.Screen())
		}

		gm.Frame(ent.input)
		vid.NewFrame(gm.Screen())

		if vid.Hash() != ent.hash {
			return curated.Errorf("playback: digest mismatch at line %d (frame %d)", ent.line, ent.frame)
		}
	}

	return nil
}
