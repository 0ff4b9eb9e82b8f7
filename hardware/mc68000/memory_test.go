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

func TestMemoryOperands(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	mem := []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00}

	// big-endian long at offset 0
	ctx.AndL(mem, 0, 0x0f0ff0f0)
	test.Equate(t, mem[0], 0x0f)
	test.Equate(t, mem[1], 0x0f)
	test.Equate(t, mem[2], 0xf0)
	test.Equate(t, mem[3], 0xf0)
	test.Equate(t, ctx.SR.Zero, false)
	test.Equate(t, ctx.SR.Negative, false)
	test.Equate(t, ctx.SR.Carry, false)

	// big-endian word at an odd offset. the scratch buffers have no
	// alignment rules
	ctx.OrW(mem, 3, 0x0f0f)
	test.Equate(t, mem[3], 0xff)
	test.Equate(t, mem[4], 0x0f)

	ctx.OrB([]byte{0x0f}, 0, 0xf0)

	ctx.EorL(mem, 0, 0xffffffff)
	test.Equate(t, mem[0], 0xf0)
	test.Equate(t, ctx.SR.Negative, true)
}

func TestMemoryOperandByte(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	mem := []byte{0x0f}
	ctx.OrB(mem, 0, 0xf0)
	test.Equate(t, mem[0], 0xff)
	test.Equate(t, ctx.SR.Negative, true)
	test.Equate(t, ctx.SR.Zero, false)

	ctx.AndB(mem, 0, 0x00)
	test.Equate(t, mem[0], 0x00)
	test.Equate(t, ctx.SR.Zero, true)
}

func TestMemoryOperandBounds(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	mem := []byte{0x11, 0x22, 0x33}

	// flags from a previous instruction must survive a skipped write
	ctx.OrB(mem, 0, 0x80)
	test.Equate(t, ctx.SR.Negative, true)

	// offset+width exceeds the buffer: silently skipped, no change
	ctx.AndL(mem, 0, 0x00000000)
	test.Equate(t, mem[0], 0x91)
	test.Equate(t, mem[1], 0x22)
	test.Equate(t, mem[2], 0x33)
	test.Equate(t, ctx.SR.Negative, true)

	ctx.OrW(mem, 2, 0xffff)
	test.Equate(t, mem[2], 0x33)

	ctx.OrB(mem, 3, 0xff)
	test.Equate(t, mem[2], 0x33)

	// negative offsets are equally tolerated
	ctx.OrL(mem, -1, 0xffffffff)
	test.Equate(t, mem[0], 0x91)

	// an empty buffer is a degenerate but legal operand
	ctx.OrB([]byte{}, 0, 0xff)
}
