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

// Package graphics contains the blit routines of the original game: wall
// pieces, junction hashes, figures, digits and line rasterization.
//
// Each routine is a port of one of the original 68000 assembly loops. A
// routine creates its own mc68000 context, seeds the registers its original
// used, and replays the same register-transfer sequence against the screen
// buffer. The bit patterns produced are compared against the original
// output, so the routines preserve the original's alignment arithmetic
// exactly: word-aligned addressing, a rotate to align a pattern within a
// 32-bit window, and the left/right clip masks at the screen edges.
package graphics
