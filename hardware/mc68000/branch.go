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

// The decrement-and-branch group: the loop primitive of the original
// listings. The named data register is a 16-bit loop counter in the low word
// of the register; the high word is never touched. None of these functions
// modify any flag.
//
// Dbra decrements the counter (with 16-bit wraparound, so 0 decrements to
// 0xffff) and reports whether the loop should run again. The loop stops when
// the counter reaches -1 (0xffff), so a loop conditioned on Dbra runs N+1
// times for an initial counter of non-negative N:
//
//	// body runs 6 times, counter 5,4,3,2,1,0
//	ctx.Reg.D[5] = 5
//	for ok := true; ok; ok = ctx.Dbra(mc68000.D5) {
//		body()
//	}
//
// or, in the bra-to-dbra form used by blit loops that can run zero times:
//
//	// body runs height times
//	ctx.Reg.D[3] = uint32(height)
//	for ctx.Dbra(mc68000.D3) {
//		body()
//	}
//
// Panics if reg is not a data register: that is a caller bug, not a
// data-dependent condition.
func (ctx *Context) Dbra(reg Register) bool {
	i := dataIndex(reg)
	w := uint16(ctx.Reg.D[i])
	w--
	ctx.Reg.D[i] = ctx.Reg.D[i]&0xffff0000 | uint32(w)
	return w != 0xffff
}

// Dbcs is Dbra gated on the Carry flag: if Carry is set the loop terminates
// immediately, without decrementing; otherwise it behaves exactly as Dbra.
// The loop runs while carry is clear.
func (ctx *Context) Dbcs(reg Register) bool {
	if ctx.SR.Carry {
		return false
	}
	return ctx.Dbra(reg)
}

// Dbcc terminates the loop, without decrementing, when Carry is clear.
func (ctx *Context) Dbcc(reg Register) bool {
	if !ctx.SR.Carry {
		return false
	}
	return ctx.Dbra(reg)
}

// Dbeq terminates the loop, without decrementing, when Zero is set.
func (ctx *Context) Dbeq(reg Register) bool {
	if ctx.SR.Zero {
		return false
	}
	return ctx.Dbra(reg)
}

// Dbne terminates the loop, without decrementing, when Zero is clear.
func (ctx *Context) Dbne(reg Register) bool {
	if !ctx.SR.Zero {
		return false
	}
	return ctx.Dbra(reg)
}

// Dbmi terminates the loop, without decrementing, when Negative is set.
func (ctx *Context) Dbmi(reg Register) bool {
	if ctx.SR.Negative {
		return false
	}
	return ctx.Dbra(reg)
}

// Dbpl terminates the loop, without decrementing, when Negative is clear.
func (ctx *Context) Dbpl(reg Register) bool {
	if !ctx.SR.Negative {
		return false
	}
	return ctx.Dbra(reg)
}
