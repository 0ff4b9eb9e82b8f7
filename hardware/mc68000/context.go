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

// Config lists the registers that begin a routine with non-zero values.
// Registers not listed start at zero. Either map may be nil.
type Config struct {
	Data    map[Register]uint32
	Address map[Register]uint32
}

// Context bundles a fresh register file with the instruction set bound to
// it, for the duration of one routine's execution. A Context is owned
// exclusively by the calling routine. It is not shared, not persisted and
// needs no teardown; it is garbage the moment the routine returns.
//
// Concurrent routines must each create their own Context. The type has no
// locking because, with exclusive ownership, none is needed.
type Context struct {
	Reg RegisterFile
	SR  StatusRegister
}

// NewContext creates a Context with the registers named in cfg pre-seeded.
// Listing an address register in cfg.Data, or vice versa, is a caller bug
// and panics.
func NewContext(cfg Config) *Context {
	ctx := &Context{}

	for r, v := range cfg.Data {
		if r < D0 || r > D7 {
			panic(fmt.Sprintf("mc68000: %s seeded as a data register", r))
		}
		ctx.Reg.D[dataIndex(r)] = v
	}
	for r, v := range cfg.Address {
		if r < A0 || r > A7 {
			panic(fmt.Sprintf("mc68000: %s seeded as an address register", r))
		}
		ctx.Reg.A[addressIndex(r)] = v
	}

	return ctx
}

func (ctx *Context) String() string {
	return fmt.Sprintf("%v\n%s", &ctx.Reg, ctx.SR.String())
}

// setNZWord sets the Negative and Zero flags from a word-width result.
func (ctx *Context) setNZWord(v uint16) {
	ctx.SR.Negative = v&0x8000 == 0x8000
	ctx.SR.Zero = v == 0
}

// setNZLong sets the Negative and Zero flags from a long-width result.
func (ctx *Context) setNZLong(v uint32) {
	ctx.SR.Negative = v&0x80000000 == 0x80000000
	ctx.SR.Zero = v == 0
}
