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

// Package colorterm implements the debugger's terminal with a basic ANSI
// terminal in raw mode: line editing with backspace, ctrl-c to abort, and
// colorized prompts and error strings.
package colorterm

import (
	"io"
	"os"
	"strings"

	"github.com/sam-mfb/continuum-sub007/debugger/colorterm/easyterm"
)

// ColorTerminal implements the debugger's user interface.
type ColorTerminal struct {
	easyterm.Terminal

	commandHistory []string
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.commandHistory = make([]string, 0)
	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Print("\r")
	ct.Terminal.CleanUp()
}

// PrintLine writes a formatted line in the given pen color.
func (ct *ColorTerminal) PrintLine(pen string, s string, a ...interface{}) {
	if p, ok := pens[pen]; ok {
		ct.Print(p)
	}
	ct.Print(s, a...)
	ct.Print(ansiOff)
	ct.Print("\n")
}

// ReadLine reads a line of user input, showing the prompt. io.EOF is
// returned on ctrl-c or ctrl-d.
func (ct *ColorTerminal) ReadLine(prompt string) (string, error) {
	if err := ct.RawMode(); err != nil {
		return "", err
	}
	defer func() { _ = ct.CanonicalMode() }()

	ct.Print("%s%s%s ", pens["cyan"], prompt, ansiOff)

	line := strings.Builder{}

	for {
		c, err := ct.Terminal.ReadRune()
		if err != nil {
			return "", err
		}

		switch c {
		case 0x03, 0x04: // ctrl-c, ctrl-d
			ct.Print("\r\n")
			return "", io.EOF

		case '\r', '\n':
			ct.Print("\r\n")
			cmd := strings.TrimSpace(line.String())
			if cmd != "" {
				ct.commandHistory = append(ct.commandHistory, cmd)
			}
			return cmd, nil

		case 0x7f, 0x08: // backspace
			s := line.String()
			if len(s) > 0 {
				line.Reset()
				line.WriteString(s[:len(s)-1])
				ct.Print("\b \b")
			}

		default:
			if c >= 0x20 && c < 0x7f {
				line.WriteByte(c)
				ct.Print("%c", c)
			}
		}
	}
}

// History returns the commands entered this session.
func (ct *ColorTerminal) History() []string {
	return ct.commandHistory
}
