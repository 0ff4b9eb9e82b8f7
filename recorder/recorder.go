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

// Package recorder writes a transcript of a play session: the input for
// every frame together with a running video digest. The companion Playback
// type replays a transcript into a fresh game and verifies that the
// digests still match, proving the emulation has not drifted since the
// recording was made.
package recorder

import (
	"fmt"
	"io"
	"os"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/digest"
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/game"
)

// Recorder transcribes frame input to a file.
type Recorder struct {
	output *os.File
}

// NewRecorder creates a transcript file and writes the header.
func NewRecorder(transcript string, g *galaxy.Galaxy, planet int) (*Recorder, error) {
	if planet < 0 || planet >= len(g.Planets) {
		return nil, curated.Errorf("recorder: no planet %d in galaxy", planet)
	}

	f, err := os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	rec := &Recorder{output: f}

	hdr := fmt.Sprintf("%s\n%s\n%d\n", g.Name, g.Hash(), planet)
	if _, err := io.WriteString(f, hdr); err != nil {
		f.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	return rec, nil
}

// RecordFrame writes one frame's input and the video digest after that
// frame was rendered. frame is the index of the frame the input was
// applied to, the value of the game's FrameNum before the frame ran.
func (rec *Recorder) RecordFrame(in game.Input, frame int, vid *digest.Video) error {
	line := fmt.Sprintf("%d%s%d%s%s\n", in, fieldSep, frame, fieldSep, vid.Hash())
	if _, err := io.WriteString(rec.output, line); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

// End closes the transcript.
func (rec *Recorder) End() error {
	if err := rec.output.Close(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}
