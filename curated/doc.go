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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It is similar to the
// Errorf() function in the fmt package, taking a formatting pattern and
// placeholder values, and returning an error.
//
// The Is() function checks whether an error was created by Errorf() with a
// specific pattern. The Has() function is similar but checks whether the
// pattern occurs anywhere in the error chain.
//
//	e := curated.Errorf("galaxy: %v", err)
//
//	if curated.Is(e, "galaxy: %v") {
//		fmt.Println("true")
//	}
//
// The Error() function implementation for curated errors normalises the error
// chain so that it does not contain duplicate adjacent parts. A message that
// would otherwise be rendered as:
//
//	regression: regression: digest mismatch
//
// is rendered as:
//
//	regression: digest mismatch
//
// For the purposes of this package an error chain is composed of parts
// separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
