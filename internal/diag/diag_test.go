/*
Copyright (C) 2026  geomir contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package diag

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/launix-de/geomir/ir"
)

func TestEnableDisableWritesValidJSONArrayBrackets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	Event("eval:call", "eval")
	Disable()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		t.Fatalf("expected a bracketed JSON array, got %q", s)
	}
	if !strings.Contains(s, "eval:call") {
		t.Fatalf("expected event name in trace output, got %q", s)
	}
}

func TestEventWithoutActiveSinkIsANoop(t *testing.T) {
	Disable()
	Event("noop", "test") // must not panic
}

func TestRenderTraceIncludesCallChain(t *testing.T) {
	err := &ir.EvalError{
		Kind:    ir.DivisionByZero,
		Message: "division by zero",
		Phrase:  ir.Phrase{Source: "x / 0"},
		Trace: []ir.TraceEntry{
			{CallPhrase: ir.Phrase{Source: "call to `f`"}},
			{CallPhrase: ir.Phrase{Source: "call to `g`"}},
		},
	}
	out := RenderTrace(err)
	if !strings.Contains(out, "call to `f`") || !strings.Contains(out, "call to `g`") {
		t.Fatalf("expected both trace entries in output, got %q", out)
	}
}
