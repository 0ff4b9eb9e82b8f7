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

// Package mc68000 implements the register file, condition codes and the
// small instruction set needed to replay the original game's 68000 blit and
// sound routines exactly.
//
// This is not a 68000 emulator. There is no instruction decoder, no memory
// map and no execution loop. A caller creates a Context, seeds whichever
// registers its routine needs, and then drives the routine itself, calling
// instruction functions one at a time and reading or writing registers
// between steps. Loop control is the caller's responsibility, terminated by
// the Dbra() family of functions:
//
//	ctx := mc68000.NewContext(mc68000.Config{
//		Data:    map[mc68000.Register]uint32{mc68000.D3: uint32(height)},
//		Address: map[mc68000.Register]uint32{mc68000.A0: uint32(offset)},
//	})
//	for ctx.Dbra(mc68000.D3) {
//		d0 := ctx.RolL(pattern, shift)
//		ctx.AndL(buf, int(ctx.Reg.A[0]), d0|clip)
//		ctx.Reg.A[0] += rowBytes
//	}
//
// The point of the package is bit-exactness. Rotate-with-carry, arithmetic
// versus logical shift, big-endian memory operands and the N+1 trip count of
// decrement-and-branch all reproduce the documented 68000 behaviour, because
// the pixel and audio output built on top of them is compared byte-for-byte
// against the original game.
//
// Every Context is private to one routine call. Contexts are never pooled or
// shared; a routine that needs one creates one and lets it go out of scope.
package mc68000
