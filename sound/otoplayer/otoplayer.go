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

// Package otoplayer plays generated sound frames through the system audio
// device. Frames queue into a ring buffer; the oto callback drains it,
// substituting silence on underrun.
package otoplayer

import (
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/sound"
)

// ring capacity in frames. small enough to keep latency under control
const ringFrames = 8

// Player streams sound frames to the audio device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player

	crit sync.Mutex
	ring [ringFrames * sound.FrameLen]uint8
	head int
	tail int
	used int
}

// NewPlayer opens the audio device.
func NewPlayer() (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sound.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("otoplayer: %v", err)
	}
	<-ready

	p := &Player{ctx: ctx}
	p.player = ctx.NewPlayer(p)
	p.player.Play()

	return p, nil
}

// Queue adds a frame to the ring. The oldest queued frame is discarded if
// the ring is full; playback latency stays bounded at the cost of a
// dropped frame.
func (p *Player) Queue(f sound.Frame) {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.used == len(p.ring) {
		p.tail = (p.tail + sound.FrameLen) % len(p.ring)
		p.used -= sound.FrameLen
	}
	for i := range f {
		p.ring[p.head] = f[i]
		p.head = (p.head + 1) % len(p.ring)
	}
	p.used += sound.FrameLen
}

// Read implements io.Reader for the oto callback, converting the queued
// 8-bit samples to float32.
func (p *Player) Read(b []byte) (int, error) {
	p.crit.Lock()
	defer p.crit.Unlock()

	n := len(b) / 4
	for i := 0; i < n; i++ {
		s := uint8(sound.Silence)
		if p.used > 0 {
			s = p.ring[p.tail]
			p.tail = (p.tail + 1) % len(p.ring)
			p.used--
		}

		v := (float32(s) - float32(sound.Silence)) / 128

		u := math.Float32bits(v)
		b[i*4] = byte(u)
		b[i*4+1] = byte(u >> 8)
		b[i*4+2] = byte(u >> 16)
		b[i*4+3] = byte(u >> 24)
	}

	return n * 4, nil
}

// Close shuts the audio device down.
func (p *Player) Close() error {
	if p.player != nil {
		if err := p.player.Close(); err != nil {
			return curated.Errorf("otoplayer: %v", err)
		}
		p.player = nil
	}
	return nil
}
