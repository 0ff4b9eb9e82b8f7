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

func TestRegisterNames(t *testing.T) {
	test.Equate(t, mc68000.D0.String(), "D0")
	test.Equate(t, mc68000.D7.String(), "D7")
	test.Equate(t, mc68000.A0.String(), "A0")
	test.Equate(t, mc68000.A7.String(), "A7")
}

func TestRegisterFile(t *testing.T) {
	var rf mc68000.RegisterFile

	rf.Set(mc68000.D2, 0xdeadbeef)
	test.Equate(t, rf.Get(mc68000.D2), 0xdeadbeef)
	test.Equate(t, rf.D[2], 0xdeadbeef)

	rf.Set(mc68000.A5, 0x00001000)
	test.Equate(t, rf.A[5], 0x00001000)

	// word stores replace the low half only
	rf.SetWord(mc68000.D2, 0x1234)
	test.Equate(t, rf.Get(mc68000.D2), 0xdead1234)
	test.Equate(t, rf.Word(mc68000.D2), 0x1234)
}

func TestRegisterFileInvalid(t *testing.T) {
	var rf mc68000.RegisterFile

	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid register")
		}
	}()
	rf.Get(mc68000.Register(99))
}

func TestContextSeeding(t *testing.T) {
	ctx := mc68000.NewContext(mc68000.Config{
		Data:    map[mc68000.Register]uint32{mc68000.D2: 0, mc68000.D3: 7},
		Address: map[mc68000.Register]uint32{mc68000.A0: 0x140},
	})

	test.Equate(t, ctx.Reg.D[2], 0)
	test.Equate(t, ctx.Reg.D[3], 7)
	test.Equate(t, ctx.Reg.A[0], 0x140)

	// unspecified registers start at zero, as do all flags
	test.Equate(t, ctx.Reg.D[0], 0)
	test.Equate(t, ctx.Reg.A[7], 0)
	test.Equate(t, ctx.SR.Value(), 0)
}

func TestContextSeedingInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for address register in data map")
		}
	}()
	mc68000.NewContext(mc68000.Config{
		Data: map[mc68000.Register]uint32{mc68000.A0: 1},
	})
}

func TestStatusRegister(t *testing.T) {
	var sr mc68000.StatusRegister

	test.Equate(t, sr.String(), "xnzvc")

	sr.Carry = true
	sr.Negative = true
	test.Equate(t, sr.String(), "xNzvC")
	test.Equate(t, sr.Value(), 0x09)

	sr.FromValue(0x1f)
	test.Equate(t, sr.String(), "XNZVC")

	sr.Reset()
	test.Equate(t, sr.Value(), 0x00)
}
