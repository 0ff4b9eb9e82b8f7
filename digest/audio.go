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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/sam-mfb/continuum-sub007/sound"
)

// Audio fingerprints the sound frame stream, chained the same way as
// Video.
type Audio struct {
	digest [sha1.Size]byte
	work   []byte
}

// NewAudio creates an Audio digester.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.work = make([]byte, sha1.Size+sound.FrameLen)
	return dig
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// NewFrame folds a sound frame into the digest.
func (dig *Audio) NewFrame(f sound.Frame) {
	copy(dig.work, dig.digest[:])
	copy(dig.work[sha1.Size:], f[:])
	dig.digest = sha1.Sum(dig.work)
}
