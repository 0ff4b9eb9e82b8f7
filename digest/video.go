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

	"github.com/sam-mfb/continuum-sub007/hardware/screen"
)

// Video fingerprints the screen buffer frame by frame. Each frame's hash
// folds in the previous frame's hash so the digest identifies the whole
// sequence, not just the latest image.
type Video struct {
	digest   [sha1.Size]byte
	work     []byte
	frameNum int
}

// NewVideo creates a Video digester for buffers of the standard screen
// size.
func NewVideo() *Video {
	dig := &Video{}
	dig.work = make([]byte, sha1.Size+screen.Height*screen.RowBytes)
	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frameNum = 0
}

// FrameNum returns the number of frames hashed since the last reset.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame folds a completed frame into the digest. The previous digest
// value is copied to the head of the hashed data, chaining the
// fingerprints.
func (dig *Video) NewFrame(buf *screen.Buffer) {
	copy(dig.work, dig.digest[:])
	copy(dig.work[sha1.Size:], buf.Bits())
	dig.digest = sha1.Sum(dig.work)
	dig.frameNum++
}
