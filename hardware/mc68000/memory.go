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

import "encoding/binary"

// The memory-operand logical group. Each function reads a big-endian value
// of the operation's width at offset, combines it with v, and writes the
// result back at the same offset and width.
//
// A write that would extend past either end of the buffer is silently
// skipped, flags untouched. This is not an error condition: the blit
// routines rely on it when processing partial rows at the screen edges, the
// same way the original code relied on the margins of screen memory. The
// threshold (any part of the operand out of bounds) was verified against
// reference output rather than taken from hardware documentation.
//
// Flag effects: Negative and Zero from the written value, Overflow and
// Carry cleared, Extend untouched.

// AndL ANDs the 32-bit big-endian value at mem[offset] with v.
func (ctx *Context) AndL(mem []byte, offset int, v uint32) {
	if offset < 0 || offset+4 > len(mem) {
		return
	}
	r := binary.BigEndian.Uint32(mem[offset:]) & v
	binary.BigEndian.PutUint32(mem[offset:], r)
	ctx.SR.Overflow = false
	ctx.SR.Carry = false
	ctx.setNZLong(r)
}

// OrL ORs the 32-bit big-endian value at mem[offset] with v.
func (ctx *Context) OrL(mem []byte, offset int, v uint32) {
	if offset < 0 || offset+4 > len(mem) {
		return
	}
	r := binary.BigEndian.Uint32(mem[offset:]) | v
	binary.BigEndian.PutUint32(mem[offset:], r)
	ctx.SR.Overflow = false
	ctx.SR.Carry = false
	ctx.setNZLong(r)
}

// EorL XORs the 32-bit big-endian value at mem[offset] with v. The junction
// whites are drawn this way.
func (ctx *Context) EorL(mem []byte, offset int, v uint32) {
	if offset < 0 || offset+4 > len(mem) {
		return
	}
	r := binary.BigEndian.Uint32(mem[offset:]) ^ v
	binary.BigEndian.PutUint32(mem[offset:], r)
	ctx.SR.Overflow = false
	ctx.SR.Carry = false
	ctx.setNZLong(r)
}

// AndW ANDs the 16-bit big-endian value at mem[offset] with v.
func (ctx *Context) AndW(mem []byte, offset int, v uint16) {
	if offset < 0 || offset+2 > len(mem) {
		return
	}
	r := binary.BigEndian.Uint16(mem[offset:]) & v
	binary.BigEndian.PutUint16(mem[offset:], r)
	ctx.SR.Overflow = false
	ctx.SR.Carry = false
	ctx.setNZWord(r)
}

// OrW ORs the 16-bit big-endian value at mem[offset] with v.
func (ctx *Context) OrW(mem []byte, offset int, v uint16) {
	if offset < 0 || offset+2 > len(mem) {
		return
	}
	r := binary.BigEndian.Uint16(mem[offset:]) | v
	binary.BigEndian.PutUint16(mem[offset:], r)
	ctx.SR.Overflow = false
	ctx.SR.Carry = false
	ctx.setNZWord(r)
}

// OrB ORs the byte at mem[offset] with v.
func (ctx *Context) OrB(mem []byte, offset int, v uint8) {
	if offset < 0 || offset+1 > len(mem) {
		return
	}
	r := mem[offset] | v
	mem[offset] = r
	ctx.SR.Overflow = false
	ctx.SR.Carry = false
	ctx.SR.Negative = r&0x80 == 0x80
	ctx.SR.Zero = r == 0
}

// AndB ANDs the byte at mem[offset] with v.
func (ctx *Context) AndB(mem []byte, offset int, v uint8) {
	if offset < 0 || offset+1 > len(mem) {
		return
	}
	r := mem[offset] & v
	mem[offset] = r
	ctx.SR.Overflow = false
	ctx.SR.Carry = false
	ctx.SR.Negative = r&0x80 == 0x80
	ctx.SR.Zero = r == 0
}
