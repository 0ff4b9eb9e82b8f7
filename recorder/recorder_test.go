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

package recorder_test

import (
	"path/filepath"
	"testing"

	"github.com/sam-mfb/continuum-sub007/digest"
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/game"
	"github.com/sam-mfb/continuum-sub007/recorder"
	"github.com/sam-mfb/continuum-sub007/test"
)

func record(t *testing.T, transcript string, inputs []game.Input) {
	t.Helper()

	g := galaxy.Demo()
	rec, err := recorder.NewRecorder(transcript, g, 0)
	if !test.ExpectedSuccess(t, err) {
		t.FailNow()
	}

	gm := game.NewGame(g.Planets[0])
	vid := digest.NewVideo()

	for _, in := range inputs {
		frame := gm.FrameNum()
		gm.Frame(in)
		vid.NewFrame(gm.Screen())
		test.ExpectedSuccess(t, rec.RecordFrame(in, frame, vid))
	}

	test.ExpectedSuccess(t, rec.End())
}

func TestRecordPlayback(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")

	inputs := []game.Input{
		0, game.Thrust, game.Thrust | game.Left, game.Left, 0,
		game.Fire, 0, game.Right, game.Thrust, 0,
	}
	record(t, transcript, inputs)

	plb, err := recorder.NewPlayback(transcript)
	if !test.ExpectedSuccess(t, err) {
		return
	}

	test.Equate(t, plb.GalaxyName, galaxy.DemoName)
	test.Equate(t, plb.Planet, 0)
	test.Equate(t, plb.EndFrame(), len(inputs)-1)

	test.ExpectedSuccess(t, plb.Verify(galaxy.Demo()))
}

func TestPlaybackWrongGalaxy(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	record(t, transcript, []game.Input{0, game.Thrust})

	plb, err := recorder.NewPlayback(transcript)
	if !test.ExpectedSuccess(t, err) {
		return
	}

	g := galaxy.Demo()
	g.Planets[0].ShipX++
	wrong, err := galaxy.Decode("altered", galaxy.Encode(g))
	if !test.ExpectedSuccess(t, err) {
		return
	}

	test.ExpectedFailure(t, plb.Verify(wrong))
}

func TestPlaybackMissingFile(t *testing.T) {
	_, err := recorder.NewPlayback(filepath.Join(t.TempDir(), "no-such-file"))
	test.ExpectedFailure(t, err)
}
