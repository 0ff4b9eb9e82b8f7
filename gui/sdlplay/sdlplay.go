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

// Package sdlplay is the playable SDL front end. It owns the SDL window
// and the main service loop: keyboard input goes to the game, the game's
// bit-packed screen buffer is expanded into a streaming texture, and sound
// frames go to the audio device.
package sdlplay

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/digest"
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/game"
	"github.com/sam-mfb/continuum-sub007/hardware/screen"
	"github.com/sam-mfb/continuum-sub007/logger"
	"github.com/sam-mfb/continuum-sub007/recorder"
	"github.com/sam-mfb/continuum-sub007/sound/otoplayer"
)

// frame period. the original ran the main loop off the vertical blank at a
// practical rate of about 20fps
const framePeriod = 50 * time.Millisecond

// SdlPlay is the playable SDL window.
//
// MUST ONLY be used from the main thread.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// RGBA expansion of the game's bit-packed screen
	pixels []byte

	gm    *game.Game
	input game.Input

	audio *otoplayer.Player

	rec *recorder.Recorder
	vid *digest.Video

	quit bool
}

// Play runs a planet in an SDL window until the player quits. If
// transcript is not empty the session is recorded to it.
func Play(g *galaxy.Galaxy, planet int, scale float32, transcript string) error {
	if planet < 0 || planet >= len(g.Planets) {
		return curated.Errorf("sdlplay: no planet %d in galaxy", planet)
	}
	if scale <= 0 {
		scale = 2.0
	}

	scr := &SdlPlay{
		gm:     game.NewGame(g.Planets[planet]),
		pixels: make([]byte, screen.Width*screen.Height*4),
	}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer sdl.Quit()

	var err error

	scr.window, err = sdl.CreateWindow("Continuum",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(screen.Width)*scale), int32(float32(screen.Height)*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer scr.window.Destroy()

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer scr.renderer.Destroy()

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, screen.Width, screen.Height)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer scr.texture.Destroy()

	// sound is not essential. a machine with no audio device still plays
	scr.audio, err = otoplayer.NewPlayer()
	if err != nil {
		logger.Logf("sdlplay", "no audio: %v", err)
		scr.audio = nil
	} else {
		defer scr.audio.Close()
	}

	if transcript != "" {
		scr.rec, err = recorder.NewRecorder(transcript, g, planet)
		if err != nil {
			return err
		}
		defer scr.rec.End()
		scr.vid = digest.NewVideo()
	}

	logger.Logf("sdlplay", "playing %s planet %d", g.Name, planet)

	tick := time.NewTicker(framePeriod)
	defer tick.Stop()

	for !scr.quit {
		scr.service()

		frame := scr.gm.FrameNum()
		scr.gm.Frame(scr.input)

		if scr.rec != nil {
			scr.vid.NewFrame(scr.gm.Screen())
			if err := scr.rec.RecordFrame(scr.input, frame, scr.vid); err != nil {
				return err
			}
		}

		if scr.audio != nil {
			scr.audio.Queue(scr.gm.Sound())
		}

		if err := scr.present(); err != nil {
			return err
		}

		<-tick.C
	}

	return nil
}

// service polls SDL events and maintains the input state.
func (scr *SdlPlay) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			var bit game.Input
			switch ev.Keysym.Sym {
			case sdl.K_z:
				bit = game.Left
			case sdl.K_x:
				bit = game.Right
			case sdl.K_PERIOD:
				bit = game.Thrust
			case sdl.K_SLASH:
				bit = game.Shield
			case sdl.K_SPACE:
				bit = game.Fire
			case sdl.K_ESCAPE:
				if ev.Type == sdl.KEYDOWN {
					scr.quit = true
				}
				continue
			default:
				continue
			}

			if ev.Type == sdl.KEYDOWN {
				scr.input |= bit
			} else if ev.Type == sdl.KEYUP {
				scr.input &^= bit
			}
		}
	}
}

// present expands the bit-packed screen into the streaming texture and
// flips it to the window.
func (scr *SdlPlay) present() error {
	bits := scr.gm.Screen().Bits()

	// monochrome expansion. a set bit is a black pixel
	i := 0
	for _, b := range bits {
		for m := byte(0x80); m != 0; m >>= 1 {
			var v byte
			if b&m == 0 {
				v = 0xff
			}
			scr.pixels[i] = v
			scr.pixels[i+1] = v
			scr.pixels[i+2] = v
			scr.pixels[i+3] = 0xff
			i += 4
		}
	}

	if err := scr.texture.Update(nil, scr.pixels, screen.Width*4); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	return nil
}
