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

package recorder

import (
	"bufio"
	"crypto/sha1"
	"os"
)

// transcript header format
// ------------------------
//
// <galaxy name>
// <galaxy hash>
// <planet index>
//
// each subsequent line is one frame of input:
//
// <input>, <frame>, <video hash>

const (
	lineGalaxyName int = iota
	lineGalaxyHash
	linePlanet
	numHeaderLines
)

const (
	fieldInput int = iota
	fieldFrame
	fieldHash
	numFields
)

const fieldSep = ", "

// IsPlaybackFile returns true if the file looks like a transcript. The
// check is cheap: the second header line must be a hex digest of the
// right length. Galaxy files are binary and fail immediately.
func IsPlaybackFile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lines := make([]string, 0, numHeaderLines)
	for len(lines) < numHeaderLines && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) < numHeaderLines {
		return false
	}

	hash := lines[lineGalaxyHash]
	if len(hash) != sha1.Size*2 {
		return false
	}
	for _, c := range hash {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}

	return true
}
