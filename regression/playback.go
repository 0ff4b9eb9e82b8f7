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

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/database"
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/recorder"
)

const playbackEntryID = "playback"

const (
	playbackFieldScript int = iota
	numPlaybackFields
)

// PlaybackRegression verifies a recorded transcript frame by frame. The
// transcript carries its own expected digests, so nothing beyond the
// script path needs storing.
type PlaybackRegression struct {
	Script string
}

func deserialisePlaybackEntry(fields []string) (database.Entry, error) {
	if len(fields) != numPlaybackFields {
		return nil, curated.Errorf("playback: %v", "wrong number of fields in database entry")
	}
	return &PlaybackRegression{Script: fields[playbackFieldScript]}, nil
}

// ID implements the database.Entry interface.
func (reg *PlaybackRegression) ID() string {
	return playbackEntryID
}

// String implements the database.Entry interface.
func (reg *PlaybackRegression) String() string {
	return fmt.Sprintf("[%s] %s", reg.ID(), reg.Script)
}

// Serialise implements the database.Entry interface.
func (reg *PlaybackRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{reg.Script}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *PlaybackRegression) CleanUp() error {
	return nil
}

func (reg *PlaybackRegression) regress(newRegression bool, output io.Writer) (bool, error) {
	plb, err := recorder.NewPlayback(reg.Script)
	if err != nil {
		return false, err
	}

	g, err := galaxy.Load(plb.GalaxyName)
	if err != nil {
		return false, err
	}

	if err := plb.Verify(g); err != nil {
		return false, err
	}

	return true, nil
}
