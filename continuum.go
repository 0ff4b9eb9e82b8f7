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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/sam-mfb/continuum-sub007/debugger"
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/game"
	"github.com/sam-mfb/continuum-sub007/gui/sdlplay"
	"github.com/sam-mfb/continuum-sub007/logger"
	"github.com/sam-mfb/continuum-sub007/modalflag"
	"github.com/sam-mfb/continuum-sub007/performance"
	"github.com/sam-mfb/continuum-sub007/recorder"
	"github.com/sam-mfb/continuum-sub007/regression"
	"github.com/sam-mfb/continuum-sub007/statsview"
	"github.com/sam-mfb/continuum-sub007/version"
	"github.com/sam-mfb/continuum-sub007/wavwriter"
)

// SDL requires that window creation and event handling happen on the main
// thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "PERFORMANCE", "REGRESS", "WAV", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough
	case "PLAY":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	case "REGRESS":
		err = regress(md)
	case "WAV":
		err = wavCapture(md)
	case "VERSION":
		vrs, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vrs, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// loadGalaxy interprets the single optional file argument of the play,
// debug and wav modes. No argument means the built-in demo galaxy.
func loadGalaxy(md *modalflag.Modes) (*galaxy.Galaxy, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return galaxy.Load(galaxy.DemoName)
	case 1:
		return galaxy.Load(md.GetArg(0))
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	planet := md.AddInt("planet", 0, "planet to play")
	scale := md.AddFloat64("scale", 2.0, "window scaling")
	record := md.AddString("record", "", "record input to a transcript file")
	stats := md.AddBool("stats", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	g, err := loadGalaxy(md)
	if err != nil {
		return err
	}

	err = sdlplay.Play(g, *planet, float32(*scale), *record)
	if err != nil {
		return err
	}

	if *record != "" {
		fmt.Println("! recording completed")
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	planet := md.AddInt("planet", 0, "planet to debug")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	g, err := loadGalaxy(md)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(g, *planet)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	planet := md.AddInt("planet", 0, "planet to run")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	stats := md.AddBool("stats", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	g, err := loadGalaxy(md)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, *profile, g, *planet, *duration)
}

func wavCapture(md *modalflag.Modes) error {
	md.NewMode()

	planet := md.AddInt("planet", 0, "planet to run")
	frames := md.AddInt("frames", 300, "number of frames to capture")
	out := md.AddString("out", "continuum.wav", "wav file to write")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames < 1 {
		return fmt.Errorf("frame count must be positive")
	}

	g, err := loadGalaxy(md)
	if err != nil {
		return err
	}

	if *planet < 0 || *planet >= len(g.Planets) {
		return fmt.Errorf("no planet %d in galaxy", *planet)
	}

	gm := game.NewGame(g.Planets[*planet])
	aw := wavwriter.New(*out)

	// thrust throughout so there is something to hear
	for i := 0; i < *frames; i++ {
		gm.Frame(game.Thrust)
		aw.Queue(gm.Sound())
	}

	if err := aw.End(); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frames written to %s\n", *frames, *out)

	return nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		dbFile := md.AddString("db", regression.DefaultDBFile, "regression database to use")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		keys, err := parseKeys(md.RemainingArgs())
		if err != nil {
			return err
		}

		succeed, fail, err := regression.RegressRun(md.Output, *dbFile, keys...)
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "regression tests: %d succeed, %d fail\n", succeed, fail)
		if fail > 0 {
			os.Exit(30)
		}

	case "LIST":
		md.NewMode()

		dbFile := md.AddString("db", regression.DefaultDBFile, "regression database to use")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output, *dbFile)

	case "DELETE":
		md.NewMode()

		dbFile := md.AddString("db", regression.DefaultDBFile, "regression database to use")
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			key, err := strconv.Atoi(md.GetArg(0))
			if err != nil {
				return fmt.Errorf("invalid database key [%s]", md.GetArg(0))
			}

			if !*answerYes && !confirm(os.Stdin, md.Output, key) {
				return nil
			}

			return regression.RegressDelete(md.Output, *dbFile, key)
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	dbFile := md.AddString("db", regression.DefaultDBFile, "regression database to use")
	mode := md.AddString("mode", "", "type of regression entry")
	planet := md.AddInt("planet", 0, "planet to run [non-playback]")
	numFrames := md.AddInt("frames", 10, "number of frames to run [non-playback]")

	md.AdditionalHelp(
		`The regression test to be added can be the path to a galaxy file or a previously
recorded transcript. For transcripts, the flags marked [non-playback] do not make
sense and will be ignored.

Available modes are FRAME and PLAYBACK. If no mode is explicitly given then FRAME
will be used for galaxy files and PLAYBACK will be used for transcripts.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("galaxy or transcript file required for %s mode", md)
	case 1:
		var reg regression.Regressor

		if *mode == "" {
			if recorder.IsPlaybackFile(md.GetArg(0)) {
				*mode = "PLAYBACK"
			} else {
				*mode = "FRAME"
			}
		}

		switch strings.ToUpper(*mode) {
		case "FRAME":
			reg = &regression.FrameRegression{
				GalaxyFile: md.GetArg(0),
				Planet:     *planet,
				NumFrames:  *numFrames,
			}
		case "PLAYBACK":
			reg = &regression.PlaybackRegression{
				Script: md.GetArg(0),
			}
		default:
			return fmt.Errorf("unknown regression mode [%s]", *mode)
		}

		err := regression.RegressAdd(md.Output, *dbFile, reg)
		if err != nil {
			return fmt.Errorf("error adding regression test: %v", err)
		}
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	return nil
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid database key [%s]", a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func confirm(input io.Reader, output io.Writer, key int) bool {
	fmt.Fprintf(output, "delete test #%03d? (y/N): ", key)
	scanner := bufio.NewScanner(input)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
