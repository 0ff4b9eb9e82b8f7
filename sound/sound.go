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

// Package sound generates the game's audio one frame at a time. A frame is
// the Mac-era unit of 370 8-bit samples, one frame per video frame at
// roughly 22.2kHz. The generators run through the mc68000 context the same
// way the blit routines do, so the output is deterministic and digestible.
package sound

import (
	"github.com/sam-mfb/continuum-sub007/hardware/mc68000"
)

// SampleRate is the output rate in samples per second.
const SampleRate = 22254

// FrameLen is the number of samples per video frame.
const FrameLen = 370

// Frame is one video frame's worth of unsigned 8-bit samples. Silence is
// the midpoint 0x80.
type Frame [FrameLen]uint8

// Silence is the resting sample value.
const Silence = 0x80

// Kind identifies a sound effect.
type Kind int

// The sound effects. Higher values take priority over lower when both are
// requested in the same frame.
const (
	NoSound Kind = iota
	ThrusterSound
	ShieldSound
	BunkerSound
	FireSound
	ExplosionSound
)

func (k Kind) String() string {
	switch k {
	case NoSound:
		return "silence"
	case ThrusterSound:
		return "thruster"
	case ShieldSound:
		return "shield"
	case BunkerSound:
		return "bunker"
	case FireSound:
		return "fire"
	case ExplosionSound:
		return "explosion"
	}
	return "unknown"
}

// Synth generates sound frames. One Synth carries the phase state of the
// currently playing effect between frames; effects are monophonic with the
// highest priority request winning.
type Synth struct {
	ctx *mc68000.Context

	current Kind

	// noise shift register for the thruster and explosion effects
	seed uint32

	// oscillator state for the tonal effects
	phase  int
	period int

	// remaining amplitude for decaying effects
	amp int
}

// NewSynth creates a silent Synth.
func NewSynth() *Synth {
	return &Synth{
		ctx:  mc68000.NewContext(mc68000.Config{}),
		seed: 0x1234fedc,
	}
}

// Start requests a sound effect. A lower priority effect never interrupts
// a higher priority one; restarting the current effect resets its state.
func (s *Synth) Start(k Kind) {
	if k < s.current && s.current != NoSound {
		return
	}
	s.current = k
	s.phase = 0

	switch k {
	case ShieldSound:
		s.period = 60
	case BunkerSound:
		s.period = 30
		s.amp = 40
	case FireSound:
		s.period = 20
		s.amp = 48
	case ExplosionSound:
		s.amp = 64
	}
}

// Stop silences a continuous effect. Decaying effects run to completion on
// their own; stopping a different effect than the current one is a no-op.
func (s *Synth) Stop(k Kind) {
	if s.current == k {
		s.current = NoSound
	}
}

// Playing returns the currently sounding effect.
func (s *Synth) Playing() Kind {
	return s.current
}

// Frame generates the next frame of audio.
func (s *Synth) Frame() Frame {
	var f Frame

	switch s.current {
	case ThrusterSound:
		s.noiseFrame(&f, 24, 4)
	case ExplosionSound:
		s.noiseFrame(&f, s.amp, 2)
		s.amp -= 4
		if s.amp <= 0 {
			s.current = NoSound
		}
	case ShieldSound:
		s.toneFrame(&f, 32)
	case BunkerSound:
		s.toneFrame(&f, s.amp)
		s.period += 2
		s.amp -= 8
		if s.amp <= 0 {
			s.current = NoSound
		}
	case FireSound:
		s.toneFrame(&f, s.amp)
		// descending pitch sweep
		s.period += 3
		s.amp -= 3
		if s.amp <= 0 {
			s.current = NoSound
		}
	default:
		for i := range f {
			f[i] = Silence
		}
	}

	return f
}

// noiseFrame fills a frame with shift register noise. Each sample holds
// for hold ticks; the register advances by a rotate with the wrapped bit
// folded back through an xor tap.
func (s *Synth) noiseFrame(f *Frame, amp, hold int) {
	ctx := s.ctx
	seed := s.seed
	level := noiseLevel(seed, amp)

	i := 0
	ctx.Reg.SetWord(mc68000.D7, FrameLen)
	for ctx.Dbra(mc68000.D7) {
		if i%hold == 0 {
			seed = ctx.RorL(seed, 1)
			if ctx.SR.Carry {
				seed ^= 0x87654321
			}
			level = noiseLevel(seed, amp)
		}
		f[i] = level
		i++
	}
	s.seed = seed
}

func noiseLevel(seed uint32, amp int) uint8 {
	v := int(int8(uint8(seed))) * amp / 128
	return uint8(Silence + v)
}

// toneFrame fills a frame with a square wave at the synth's current
// period.
func (s *Synth) toneFrame(f *Frame, amp int) {
	ctx := s.ctx
	if s.period <= 0 {
		s.period = 1
	}

	i := 0
	ctx.Reg.SetWord(mc68000.D7, FrameLen)
	for ctx.Dbra(mc68000.D7) {
		if s.phase < s.period {
			f[i] = uint8(Silence + amp)
		} else {
			f[i] = uint8(Silence - amp)
		}
		s.phase++
		if s.phase >= 2*s.period {
			s.phase = 0
		}
		i++
	}
}
