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

// Package digest produces cryptographic hashes of the emulation's video
// and audio output. The hash chains from frame to frame, so a single value
// fingerprints the entire run up to that point. If a new hash differs from
// a previously recorded value then something has changed; this is the
// basis for regression tests and playback verification.
//
// The use of SHA-1 is fine for this application because this is not a
// cryptographic task.
package digest

// Digest implementations fingerprint a stream of emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
