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

package mc68000

import "strings"

// StatusRegister is the condition code register of the 68000. Instructions
// that define a flag recompute it; instructions that don't leave it alone.
//
// The Extend flag shadows Carry on shift and shift-like instructions but,
// unlike Carry, is not cleared by a zero shift count or by the logical
// memory-operand instructions. The distinction matters for multi-word
// rotates.
type StatusRegister struct {
	Carry    bool
	Overflow bool
	Zero     bool
	Negative bool
	Extend   bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "CCR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Extend {
		s.WriteRune('X')
	} else {
		s.WriteRune('x')
	}
	if sr.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct to the 68000 CCR byte layout.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Extend {
		v |= 0x10
	}
	if sr.Negative {
		v |= 0x08
	}
	if sr.Zero {
		v |= 0x04
	}
	if sr.Overflow {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue converts a CCR byte to the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Extend = v&0x10 == 0x10
	sr.Negative = v&0x08 == 0x08
	sr.Zero = v&0x04 == 0x04
	sr.Overflow = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
