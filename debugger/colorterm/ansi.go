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

package colorterm

import "fmt"

// ansi color
const (
	red    = 1
	green  = 2
	yellow = 3
	cyan   = 6
	white  = 7
)

var pens map[string]string
var ansiOff string

func init() {
	pens = make(map[string]string)

	ansiOff = "\033[0m"

	for name, col := range map[string]int{
		"red":    red,
		"green":  green,
		"yellow": yellow,
		"cyan":   cyan,
		"white":  white,
	} {
		// bright pen
		pens[name] = fmt.Sprintf("\033[9%dm", col)
	}
}
