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

package logger

import (
	"strings"
	"testing"
)

func TestRepeatCollapse(t *testing.T) {
	l := newLogger(10)

	l.log("test", "hello")
	l.log("test", "hello")
	l.log("test", "hello")

	s := &strings.Builder{}
	l.write(s)

	if s.String() != "test: hello (repeat x3)\n" {
		t.Errorf("unexpected log output: %q", s.String())
	}
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	s := &strings.Builder{}
	l.write(s)

	if strings.Contains(s.String(), "one") {
		t.Errorf("oldest entry should have been dropped: %q", s.String())
	}
	if !strings.Contains(s.String(), "three") {
		t.Errorf("newest entry missing: %q", s.String())
	}
}

func TestTail(t *testing.T) {
	l := newLogger(10)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	s := &strings.Builder{}
	l.tail(s, 1)

	if s.String() != "test: three\n" {
		t.Errorf("unexpected tail output: %q", s.String())
	}
}
