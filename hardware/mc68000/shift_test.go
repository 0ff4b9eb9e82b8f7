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

package mc68000_test

import (
	"testing"

	"github.com/sam-mfb/continuum-sub007/hardware/mc68000"
	"github.com/sam-mfb/continuum-sub007/test"
)

func TestRotateWord(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	// bit rotated out of position 0 becomes both the new high bit and Carry
	test.Equate(t, ctx.RorW(0x0001, 1), 0x8000)
	test.Equate(t, ctx.SR.Carry, true)
	test.Equate(t, ctx.SR.Negative, true)
	test.Equate(t, ctx.SR.Zero, false)

	// mirror image for RolW
	test.Equate(t, ctx.RolW(0x8000, 1), 0x0001)
	test.Equate(t, ctx.SR.Carry, true)
	test.Equate(t, ctx.SR.Negative, false)

	// rotation count is taken modulo the field width
	test.Equate(t, ctx.RorW(0x1234, 16), 0x1234)
	test.Equate(t, ctx.SR.Carry, false)
	test.Equate(t, ctx.RorW(0x1234, 20), ctx.RorW(0x1234, 4))

	// zero value
	test.Equate(t, ctx.RorW(0x0000, 3), 0x0000)
	test.Equate(t, ctx.SR.Zero, true)
	test.Equate(t, ctx.SR.Carry, false)
}

func TestRotateLong(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	test.Equate(t, ctx.RorL(0x00000001, 1), 0x80000000)
	test.Equate(t, ctx.SR.Carry, true)
	test.Equate(t, ctx.RolL(0x80000000, 1), 0x00000001)
	test.Equate(t, ctx.SR.Carry, true)

	// high word survives a word-wide rotation distance
	test.Equate(t, ctx.RolL(0xdeadbeef, 16), 0xbeefdead)

	// the blit alignment idiom: pattern in the high word, rotated into
	// position by the pixel offset
	test.Equate(t, ctx.RolL(0xffff0000, 4), 0xfff0000f)
}

func TestRotateInverse(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	// for all 16-bit v: ror_w(rol_w(v, n), n) == v
	for _, v := range []uint32{0x0000, 0x0001, 0x8000, 0xffff, 0x1234, 0xfedc} {
		for n := 0; n < 20; n++ {
			test.Equate(t, ctx.RorW(ctx.RolW(v, n), n), v)
			test.Equate(t, ctx.RolW(ctx.RorW(v, n), n), v)
		}
	}

	for _, v := range []uint32{0x00000000, 0x00000001, 0x80000000, 0xdeadbeef} {
		for n := 0; n < 40; n++ {
			test.Equate(t, ctx.RorL(ctx.RolL(v, n), n), v)
		}
	}
}

func TestArithmeticShiftRight(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	// sign-bit replication
	test.Equate(t, ctx.AsrW(0x8000, 1), 0xc000)
	test.Equate(t, ctx.SR.Carry, false)
	test.Equate(t, ctx.SR.Negative, true)

	test.Equate(t, ctx.AsrW(0x8001, 1), 0xc000)
	test.Equate(t, ctx.SR.Carry, true)
	test.Equate(t, ctx.SR.Extend, true)

	test.Equate(t, ctx.AsrL(0x80000000, 1), 0xc0000000)
	test.Equate(t, ctx.SR.Carry, false)

	// positive values shift like lsr
	test.Equate(t, ctx.AsrW(0x4000, 2), 0x1000)
	test.Equate(t, ctx.SR.Negative, false)
}

func TestLogicalShift(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	// zero-fill, no sign replication. contrast with AsrL
	test.Equate(t, ctx.LsrL(0x80000000, 1), 0x40000000)
	test.Equate(t, ctx.SR.Carry, false)
	test.Equate(t, ctx.SR.Negative, false)

	test.Equate(t, ctx.LsrL(0x00000003, 1), 0x00000001)
	test.Equate(t, ctx.SR.Carry, true)
	test.Equate(t, ctx.SR.Extend, true)

	test.Equate(t, ctx.LsrW(0x8000, 15), 0x0001)
	test.Equate(t, ctx.SR.Carry, false)

	test.Equate(t, ctx.LslW(0x0001, 15), 0x8000)
	test.Equate(t, ctx.SR.Negative, true)

	// last bit shifted out sets carry
	test.Equate(t, ctx.LslL(0x80000000, 1), 0x00000000)
	test.Equate(t, ctx.SR.Carry, true)
	test.Equate(t, ctx.SR.Zero, true)
}

func TestArithmeticShiftLeft(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	// sign change during the shift sets overflow
	test.Equate(t, ctx.AslW(0x4000, 1), 0x8000)
	test.Equate(t, ctx.SR.Overflow, true)
	test.Equate(t, ctx.SR.Carry, false)

	// no sign change, no overflow
	test.Equate(t, ctx.AslW(0xc000, 1), 0x8000)
	test.Equate(t, ctx.SR.Overflow, false)
	test.Equate(t, ctx.SR.Carry, true)

	test.Equate(t, ctx.AslL(0x40000000, 1), 0x80000000)
	test.Equate(t, ctx.SR.Overflow, true)
}

func TestShiftZeroCount(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	// a zero count clears carry but leaves extend alone
	ctx.SR.Carry = true
	ctx.SR.Extend = true
	test.Equate(t, ctx.LsrW(0x00ff, 0), 0x00ff)
	test.Equate(t, ctx.SR.Carry, false)
	test.Equate(t, ctx.SR.Extend, true)

	ctx.SR.Carry = true
	test.Equate(t, ctx.RorL(0xdeadbeef, 0), 0xdeadbeef)
	test.Equate(t, ctx.SR.Carry, false)
}

func TestShiftNegativeCount(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	// negative counts cannot happen on the hardware. defined as no effect
	ctx.SR.Carry = true
	test.Equate(t, ctx.LsrL(0x1234, -1), 0x1234)
	test.Equate(t, ctx.SR.Carry, true)
	test.Equate(t, ctx.RolW(0x8000, -4), 0x8000)
	test.Equate(t, ctx.SR.Carry, true)
}

func TestSwap(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	test.Equate(t, ctx.Swap(0x0000ffff), 0xffff0000)
	test.Equate(t, ctx.SR.Negative, true)
	test.Equate(t, ctx.Swap(0x00000000), 0x00000000)
	test.Equate(t, ctx.SR.Zero, true)
}
