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

import "fmt"

// Register identifies one of the sixteen machine registers. The original
// routines referred to registers by name in their listings; a typed constant
// keeps the call sites readable while giving us compile-time checking.
type Register int

// The eight data registers and eight address registers of the 68000.
const (
	D0 Register = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	A0
	A1
	A2
	A3
	A4
	A5
	A6
	A7
)

func (r Register) String() string {
	if r >= D0 && r <= D7 {
		return fmt.Sprintf("D%d", int(r))
	}
	if r >= A0 && r <= A7 {
		return fmt.Sprintf("A%d", int(r-A0))
	}
	return fmt.Sprintf("Register(%d)", int(r))
}

// dataIndex returns the index into RegisterFile.D for register r. Referencing
// anything other than a data register is a caller bug, never a consequence of
// data-dependent input, so it fails fast.
func dataIndex(r Register) int {
	if r < D0 || r > D7 {
		panic(fmt.Sprintf("mc68000: %s is not a data register", r))
	}
	return int(r)
}

// addressIndex returns the index into RegisterFile.A for register r.
func addressIndex(r Register) int {
	if r < A0 || r > A7 {
		panic(fmt.Sprintf("mc68000: %s is not an address register", r))
	}
	return int(r - A0)
}

// RegisterFile is the set of numeric storage slots an instruction operates
// on. Registers are 32 bits wide with no inherent signedness; callers
// interpret the bits as signed or unsigned per operation.
//
// The D and A arrays are exported so that a routine can manipulate a register
// directly between instruction steps, matching the register-transfer style of
// the original listings:
//
//	ctx.Reg.A[0] += rowBytes
type RegisterFile struct {
	D [8]uint32
	A [8]uint32
}

// Get returns the value of register r. Panics if r is not a valid register.
func (rf *RegisterFile) Get(r Register) uint32 {
	if r >= D0 && r <= D7 {
		return rf.D[dataIndex(r)]
	}
	return rf.A[addressIndex(r)]
}

// Set stores v in register r. A register can never exceed 32 bits in the
// host representation. Panics if r is not a valid register.
func (rf *RegisterFile) Set(r Register, v uint32) {
	if r >= D0 && r <= D7 {
		rf.D[dataIndex(r)] = v
		return
	}
	rf.A[addressIndex(r)] = v
}

// SetWord stores v in the low word of register r, leaving the high word
// untouched. Word-width operations in the original listings behave this way.
func (rf *RegisterFile) SetWord(r Register, v uint16) {
	rf.Set(r, rf.Get(r)&0xffff0000|uint32(v))
}

// Word returns the low word of register r.
func (rf *RegisterFile) Word(r Register) uint16 {
	return uint16(rf.Get(r))
}

func (rf *RegisterFile) String() string {
	s := ""
	for i := 0; i < 8; i++ {
		s += fmt.Sprintf("D%d=%08x ", i, rf.D[i])
		if i == 3 {
			s += "\n"
		}
	}
	s += "\n"
	for i := 0; i < 8; i++ {
		s += fmt.Sprintf("A%d=%08x ", i, rf.A[i])
		if i == 3 {
			s += "\n"
		}
	}
	return s
}
