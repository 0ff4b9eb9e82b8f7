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

// Package wavwriter collects sound frames and writes them to disk as a WAV
// file. Audio is buffered in memory in its entirety and written on End, so
// it is only suitable for capture sessions, not live output.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/logger"
	"github.com/sam-mfb/continuum-sub007/sound"
)

// WavWriter accumulates sound frames for writing to a WAV file.
type WavWriter struct {
	filename string
	samples  []int
}

// New creates a WavWriter that will write to filename on End.
func New(filename string) *WavWriter {
	return &WavWriter{filename: filename}
}

// Queue adds a frame to the in-memory buffer, widening the unsigned 8-bit
// samples to signed 16-bit PCM.
func (aw *WavWriter) Queue(f sound.Frame) {
	for i := range f {
		aw.samples = append(aw.samples, (int(f[i])-sound.Silence)<<8)
	}
}

// End writes the accumulated audio to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sound.SampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sound.SampleRate,
		},
		Data:           aw.samples,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "audio written to %s", aw.filename)

	return nil
}
