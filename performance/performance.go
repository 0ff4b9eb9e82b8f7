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

// Package performance measures how fast the emulation runs on the host.
// The game is run headlessly, uncapped, for a fixed period of time and
// the number of completed frames compared against the nominal frame
// rate. CPU and memory profiles can be written for later study with the
// pprof tool.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/game"
)

// the frame rate the game runs at when capped.
const nominalFPS = 20.0

// Check the performance of the emulation using the supplied galaxy.
//
// The game runs for the specified duration, parsed with
// time.ParseDuration. Sound frames are synthesised alongside video so
// the measurement reflects a whole emulated frame.
func Check(output io.Writer, profile bool, g *galaxy.Galaxy, planet int, duration string) error {
	if planet < 0 || planet >= len(g.Planets) {
		return curated.Errorf("performance: no planet %d in galaxy", planet)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	gm := game.NewGame(g.Planets[planet])

	runner := func() error {
		done := make(chan bool)
		time.AfterFunc(dur, func() {
			done <- true
		})

		for {
			select {
			case <-done:
				return nil
			default:
			}
			gm.Frame(0)
			_ = gm.Sound()
		}
	}

	if profile {
		if err := ProfileCPU("performance.cpu.profile", runner); err != nil {
			return err
		}
		if err := ProfileMem("performance.mem.profile"); err != nil {
			return err
		}
	} else {
		if err := runner(); err != nil {
			return err
		}
	}

	numFrames := gm.FrameNum()
	fps := float64(numFrames) / dur.Seconds()
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1fx nominal\n",
		fps, numFrames, dur.Seconds(), fps/nominalFPS)

	return nil
}
