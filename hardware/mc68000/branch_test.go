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

func TestDbraZero(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D7: 0},
	})

	// a counter of 0 decrements to 0xffff and terminates
	test.Equate(t, ctx.Dbra(mc68000.D7), false)
	test.Equate(t, ctx.Reg.Word(mc68000.D7), 0xffff)
}

func TestDbraTripCount(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D7: 5},
	})

	// true for the first 5 calls, false on the 6th: N+1 loop bodies in a
	// do-while arrangement
	bodies := 0
	for ok := true; ok; ok = ctx.Dbra(mc68000.D7) {
		bodies++
		if bodies > 10 {
			t.Fatal("dbra loop did not terminate")
		}
	}
	test.Equate(t, bodies, 6)
	test.Equate(t, ctx.Reg.Word(mc68000.D7), 0xffff)
}

func TestDbraHighWordUntouched(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D3: 0xabcd0000},
	})

	test.Equate(t, ctx.Dbra(mc68000.D3), false)
	test.Equate(t, ctx.Reg.D[3], 0xabcdffff)

	// and a full-word counter keeps looping
	test.Equate(t, ctx.Dbra(mc68000.D3), true)
	test.Equate(t, ctx.Reg.D[3], 0xabcdfffe)
}

func TestDbraFlagsUntouched(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D0: 2},
	})

	ctx.SR.Carry = true
	ctx.SR.Zero = true
	ctx.Dbra(mc68000.D0)
	test.Equate(t, ctx.SR.Carry, true)
	test.Equate(t, ctx.SR.Zero, true)
}

func TestDbcs(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D2: 10},
	})

	// carry clear: behaves as dbra
	test.Equate(t, ctx.Dbcs(mc68000.D2), true)
	test.Equate(t, ctx.Reg.Word(mc68000.D2), 9)

	// carry set: terminates without decrementing
	ctx.SR.Carry = true
	test.Equate(t, ctx.Dbcs(mc68000.D2), false)
	test.Equate(t, ctx.Reg.Word(mc68000.D2), 9)
}

func TestDbccFamily(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.D1: 5},
	})

	ctx.SR.Carry = true
	test.Equate(t, ctx.Dbcc(mc68000.D1), true)
	ctx.SR.Carry = false
	test.Equate(t, ctx.Dbcc(mc68000.D1), false)
	test.Equate(t, ctx.Reg.Word(mc68000.D1), 4)

	ctx.SR.Zero = false
	test.Equate(t, ctx.Dbeq(mc68000.D1), true)
	ctx.SR.Zero = true
	test.Equate(t, ctx.Dbeq(mc68000.D1), false)

	test.Equate(t, ctx.Dbne(mc68000.D1), true)
	ctx.SR.Zero = false
	test.Equate(t, ctx.Dbne(mc68000.D1), false)

	ctx.SR.Negative = false
	test.Equate(t, ctx.Dbmi(mc68000.D1), true)
	ctx.SR.Negative = true
	test.Equate(t, ctx.Dbmi(mc68000.D1), false)

	test.Equate(t, ctx.Dbpl(mc68000.D1), true)
	ctx.SR.Negative = false
	test.Equate(t, ctx.Dbpl(mc68000.D1), false)
}

func TestDbraNonDataRegister(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{})

	// referencing an address register as a loop counter is a programmer
	// error and fails fast
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-data register")
		}
	}()
	ctx.Dbra(mc68000.A0)
}
