// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "lcd", "read of write-only register")
	log.Log(logger.Allow, "lcd", "read of write-only register")
	log.Log(logger.Allow, "lcd", "read of write-only register")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "lcd: read of write-only register (repeat x3)\n")
	test.ExpectEquality(t, log.Len(), 1)
}

func TestCap(t *testing.T) {
	log := logger.NewLogger(2)
	log.Logf(logger.Allow, "tag", "%d", 1)
	log.Logf(logger.Allow, "tag", "%d", 2)
	log.Logf(logger.Allow, "tag", "%d", 3)
	test.ExpectEquality(t, log.Len(), 2)

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\n")
}

type prohibit bool

func (p prohibit) AllowLogging() bool {
	return !bool(p)
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibit(true), "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(prohibit(false), "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("test error"))
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: wrapped: test error\ntag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}
	log.SetEcho(w)
	log.Log(logger.Allow, "echo", "hello")
	test.ExpectEquality(t, w.Compare("echo: hello\n"), true)

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "world")
	test.ExpectEquality(t, w.Compare("echo: hello\n"), true)
}
