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

// Package diag is a togglable, file-backed event sink plus EvalError
// stack-trace rendering, grounded on the teacher's scm/trace.go
// (Tracefile/SetTrace/TracePrint): an optional JSON event stream written
// only when enabled, never consulted by evaluation itself.
package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/launix-de/geomir/ir"
)

// Sink is a togglable event log, mirroring the teacher's Tracefile: a JSON
// array of begin/end/instant events written incrementally so a crash mid-run
// still leaves a (nearly) valid log on truncation-tolerant readers.
type Sink struct {
	mu      sync.Mutex
	file    io.WriteCloser
	isFirst bool
}

// Active is the process-wide sink; nil when tracing is off, matching the
// teacher's package-level `Trace *Tracefile` plus SetTrace toggle.
var Active *Sink

// PrintEnabled mirrors the teacher's TracePrint: also echo every event to
// stderr as it's recorded.
var PrintEnabled bool

// Enable opens path and installs it as Active, closing any previously active
// sink first (SetTrace(true) in the teacher).
func Enable(path string) error {
	Disable()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("diag: cannot open trace file %q: %w", path, err)
	}
	f.Write([]byte("["))
	Active = &Sink{file: f, isFirst: true}
	return nil
}

// Disable closes and clears Active, if any (SetTrace(false) in the teacher).
func Disable() {
	if Active == nil {
		return
	}
	Active.file.Write([]byte("]"))
	Active.file.Close()
	Active = nil
}

type event struct {
	Name string `json:"name"`
	Cat  string `json:"cat"`
	Ts   int64  `json:"ts"`
}

var start = time.Now()

// Event records a single named, categorized event at the current time.
func Event(name, cat string) {
	if PrintEnabled {
		fmt.Fprintf(os.Stderr, "[diag] %s (%s)\n", name, cat)
	}
	if Active == nil {
		return
	}
	Active.mu.Lock()
	defer Active.mu.Unlock()
	if Active.isFirst {
		Active.isFirst = false
	} else {
		Active.file.Write([]byte(",\n"))
	}
	b, _ := json.Marshal(event{Name: name, Cat: cat, Ts: time.Since(start).Microseconds()})
	Active.file.Write(b)
}

// Span records a begin event, runs f, then records a matching end event —
// the teacher's Tracefile.Duration collapsed to the simpler single-threaded
// evaluation model this language mandates (spec §5).
func Span(name, cat string, f func()) {
	Event(name+":begin", cat)
	defer Event(name+":end", cat)
	f()
}

// RenderTrace formats an *ir.EvalError including its accumulated call-phrase
// trace, one line per frame, innermost first.
func RenderTrace(err *ir.EvalError) string {
	out := err.Error()
	for _, entry := range err.Trace {
		out += fmt.Sprintf("\n  at %s", entry.CallPhrase.String())
	}
	return out
}
