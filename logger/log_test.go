// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"strings"
	"testing"

	"github.com/sidegate/famicore/test"
)

func TestRepeatCoalescing(t *testing.T) {
	l := newLogger(16)

	l.log("tag", "detail")
	l.log("tag", "detail")
	l.log("tag", "detail")
	test.Equate(t, len(l.entries), 1)

	s := strings.Builder{}
	l.write(&s)
	test.Equate(t, s.String(), "tag: detail (repeat x3)\n")

	l.log("tag", "other detail")
	test.Equate(t, len(l.entries), 2)
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("tag", "a")
	l.log("tag", "b")
	l.log("tag", "c")
	test.Equate(t, len(l.entries), 2)

	s := strings.Builder{}
	l.tail(&s, 1)
	test.Equate(t, s.String(), "tag: c\n")
}
