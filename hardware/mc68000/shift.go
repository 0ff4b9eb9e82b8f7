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

// The shift and rotate group. Counts are taken modulo the field width, as on
// the hardware; an effective count of zero clears Carry, never sets it, and
// leaves Extend alone. A negative count can't happen on the hardware and is
// treated as no effect: the value is returned unchanged (masked to width)
// and no flag is touched.
//
// Flag effects, common to the group unless noted: Negative and Zero are set
// from the result, Overflow is cleared (ASL excepted), Carry receives the
// last bit shifted or rotated out, and Extend shadows Carry on the shifts
// but is untouched by the rotates.

// RorW rotates the low word of v right by n bits. The bit rotated out of
// position 0 becomes both the new high bit and the Carry flag.
func (ctx *Context) RorW(v uint32, n int) uint32 {
	v &= 0xffff
	if n < 0 {
		return v
	}
	n &= 15
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		v = (v>>n | v<<(16-n)) & 0xffff
		ctx.SR.Carry = v&0x8000 == 0x8000
	}
	ctx.SR.Overflow = false
	ctx.setNZWord(uint16(v))
	return v
}

// RorL rotates v right by n bits within a 32-bit field.
func (ctx *Context) RorL(v uint32, n int) uint32 {
	if n < 0 {
		return v
	}
	n &= 31
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		v = v>>n | v<<(32-n)
		ctx.SR.Carry = v&0x80000000 == 0x80000000
	}
	ctx.SR.Overflow = false
	ctx.setNZLong(v)
	return v
}

// RolW rotates the low word of v left by n bits. The bit rotated out of the
// top becomes both the new bit 0 and the Carry flag.
func (ctx *Context) RolW(v uint32, n int) uint32 {
	v &= 0xffff
	if n < 0 {
		return v
	}
	n &= 15
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		v = (v<<n | v>>(16-n)) & 0xffff
		ctx.SR.Carry = v&0x0001 == 0x0001
	}
	ctx.SR.Overflow = false
	ctx.setNZWord(uint16(v))
	return v
}

// RolL rotates v left by n bits within a 32-bit field.
func (ctx *Context) RolL(v uint32, n int) uint32 {
	if n < 0 {
		return v
	}
	n &= 31
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		v = v<<n | v>>(32-n)
		ctx.SR.Carry = v&0x00000001 == 0x00000001
	}
	ctx.SR.Overflow = false
	ctx.setNZLong(v)
	return v
}

// AsrW arithmetically shifts the low word of v right by n bits. The sign bit
// (bit 15) is replicated into the vacated high bits. The last bit shifted
// out sets Carry and Extend.
func (ctx *Context) AsrW(v uint32, n int) uint32 {
	v &= 0xffff
	if n < 0 {
		return v
	}
	n &= 15
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		ctx.SR.Carry = v>>(n-1)&1 == 1
		ctx.SR.Extend = ctx.SR.Carry
		v = uint32(int32(int16(v))>>n) & 0xffff
	}
	ctx.SR.Overflow = false
	ctx.setNZWord(uint16(v))
	return v
}

// AsrL arithmetically shifts v right by n bits within a 32-bit field,
// replicating bit 31 into the vacated bits.
func (ctx *Context) AsrL(v uint32, n int) uint32 {
	if n < 0 {
		return v
	}
	n &= 31
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		ctx.SR.Carry = v>>(n-1)&1 == 1
		ctx.SR.Extend = ctx.SR.Carry
		v = uint32(int32(v) >> n)
	}
	ctx.SR.Overflow = false
	ctx.setNZLong(v)
	return v
}

// AslW arithmetically shifts the low word of v left by n bits. Overflow is
// set if the sign bit changes at any point during the shift.
func (ctx *Context) AslW(v uint32, n int) uint32 {
	v &= 0xffff
	if n < 0 {
		return v
	}
	n &= 15
	if n == 0 {
		ctx.SR.Carry = false
		ctx.SR.Overflow = false
	} else {
		ctx.SR.Carry = v>>(16-n)&1 == 1
		ctx.SR.Extend = ctx.SR.Carry

		// the top n+1 bits of the original value pass through the sign
		// position during the shift. the sign changes unless they are all
		// equal
		top := v >> (15 - n)
		ctx.SR.Overflow = top != 0 && top != 1<<(n+1)-1

		v = v << n & 0xffff
	}
	ctx.setNZWord(uint16(v))
	return v
}

// AslL arithmetically shifts v left by n bits within a 32-bit field.
func (ctx *Context) AslL(v uint32, n int) uint32 {
	if n < 0 {
		return v
	}
	n &= 31
	if n == 0 {
		ctx.SR.Carry = false
		ctx.SR.Overflow = false
	} else {
		ctx.SR.Carry = v>>(32-n)&1 == 1
		ctx.SR.Extend = ctx.SR.Carry

		top := v >> (31 - n)
		ctx.SR.Overflow = top != 0 && top != 1<<(n+1)-1

		v <<= n
	}
	ctx.setNZLong(v)
	return v
}

// LsrW logically shifts the low word of v right by n bits, filling the
// vacated bits with zero regardless of sign. Contrast with AsrW.
func (ctx *Context) LsrW(v uint32, n int) uint32 {
	v &= 0xffff
	if n < 0 {
		return v
	}
	n &= 15
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		ctx.SR.Carry = v>>(n-1)&1 == 1
		ctx.SR.Extend = ctx.SR.Carry
		v >>= n
	}
	ctx.SR.Overflow = false
	ctx.setNZWord(uint16(v))
	return v
}

// LsrL logically shifts v right by n bits within a 32-bit field, zero fill.
func (ctx *Context) LsrL(v uint32, n int) uint32 {
	if n < 0 {
		return v
	}
	n &= 31
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		ctx.SR.Carry = v>>(n-1)&1 == 1
		ctx.SR.Extend = ctx.SR.Carry
		v >>= n
	}
	ctx.SR.Overflow = false
	ctx.setNZLong(v)
	return v
}

// LslW logically shifts the low word of v left by n bits. Identical to AslW
// except that Overflow is always cleared.
func (ctx *Context) LslW(v uint32, n int) uint32 {
	v &= 0xffff
	if n < 0 {
		return v
	}
	n &= 15
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		ctx.SR.Carry = v>>(16-n)&1 == 1
		ctx.SR.Extend = ctx.SR.Carry
		v = v << n & 0xffff
	}
	ctx.SR.Overflow = false
	ctx.setNZWord(uint16(v))
	return v
}

// LslL logically shifts v left by n bits within a 32-bit field.
func (ctx *Context) LslL(v uint32, n int) uint32 {
	if n < 0 {
		return v
	}
	n &= 31
	if n == 0 {
		ctx.SR.Carry = false
	} else {
		ctx.SR.Carry = v>>(32-n)&1 == 1
		ctx.SR.Extend = ctx.SR.Carry
		v <<= n
	}
	ctx.SR.Overflow = false
	ctx.setNZLong(v)
	return v
}

// Swap exchanges the two words of v. The original blitters use it to flip a
// clip mask between the left and right screen edges.
func (ctx *Context) Swap(v uint32) uint32 {
	v = v>>16 | v<<16
	ctx.SR.Carry = false
	ctx.SR.Overflow = false
	ctx.setNZLong(v)
	return v
}
