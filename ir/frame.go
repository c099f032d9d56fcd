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
package ir

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/jtolds/gls"

	"github.com/launix-de/geomir/value"
)

// System abstracts host facilities that builtins may need (I/O, clock, …).
// The core itself never touches these; it only carries the reference
// through frames so builtins (an external collaborator, spec §1) can reach
// them. Grounded on the teacher's habit of threading a small capability
// object (here, just an io.Writer) rather than using package-level globals
// for anything host-visible.
type System interface {
	Stdout() io.Writer
}

// defaultSystem is the System used when a driver doesn't supply one.
type defaultSystem struct{}

func (defaultSystem) Stdout() io.Writer { return os.Stdout }

// DefaultSystem is a ready-to-use System backed by process stdout.
var DefaultSystem System = defaultSystem{}

// Frame is an evaluation context (spec §3). One is created for each closure
// or builtin call and for each top-level Run/RunStatement; Block_Op and
// Preaction_Op do not create a frame but run in the frame already active.
// A frame is released (garbage collected) on exit; Go's GC plays the
// role the teacher's Env/closure reference counting plays for lifetime
// management (spec §9's cyclic-ownership note is moot under tracing GC).
type Frame struct {
	ID uuid.UUID // ambient-only: a fresh UUID per frame; the REPL prints it when reporting an unexpected panic

	System      System
	ParentFrame *Frame  // non-owning; stack-trace reconstruction only
	CallPhrase  *Phrase // syntactic call site that created this frame, or nil

	Nonlocals *value.Record // captured slot array; nil for top-level/builtin frames
	Globals   *value.Record // ambient symbol table for Symbolic_Ref; shared by all frames in a run

	// Trampoline registers (spec §4.2).
	NextOp Expr
	Result value.Value

	Func Callable // the function that activated this frame; keeps Nonlocals/NextOp reachable

	Slots []value.Value
}

// NewFrame constructs a frame with nslots Value slots, matching the
// external interface's `make(nslots, system, parent, call_phrase, func)`
// (spec §6).
func NewFrame(nslots int, system System, parent *Frame, callPhrase *Phrase, fn Callable) *Frame {
	if system == nil {
		system = DefaultSystem
	}
	f := &Frame{
		ID:          uuid.New(),
		System:      system,
		ParentFrame: parent,
		CallPhrase:  callPhrase,
		Func:        fn,
		Slots:       make([]value.Value, nslots),
	}
	if parent != nil {
		f.Globals = parent.Globals
	}
	return f
}

// Get reads slot i. Panics (programmer error, not an EvalError) if i is out
// of range — per spec §3's invariant, analysis guarantees in-range indices.
func (f *Frame) Get(i int) value.Value { return f.Slots[i] }

// Set writes slot i.
func (f *Frame) Set(i int, v value.Value) { f.Slots[i] = v }

// SetNonlocals attaches a captured environment, matching the external
// interface's `set_nonlocals(module)` (spec §6).
func (f *Frame) SetNonlocals(m *value.Record) { f.Nonlocals = m }

// frameContext is the goroutine-local registry used to look up the frame
// registered by the current goroutine without threading a Frame parameter
// through unrelated code — the CLI's REPL (cmd/geomcli) registers its root
// frame here and reads it back when it recovers an unexpected panic. A
// lookup only sees frames registered on the same goroutine. Grounded on the teacher's use of
// jtolds/gls for its `(parallel ...)` special form (scm/scm.go); unlike the
// teacher we have no concurrent evaluation of a single frame (spec §5), so
// this is purely a diagnostics convenience, never consulted by eval/exec.
var frameContext = gls.NewContextManager()

const frameContextKey = "geomir-current-frame"

// WithCurrentFrame runs fn with f registered as the current frame for the
// goroutine-local lookup CurrentFrame.
func WithCurrentFrame(f *Frame, fn func()) {
	frameContext.SetValues(gls.Values{frameContextKey: f}, fn)
}

// CurrentFrame returns the frame registered by the innermost enclosing
// WithCurrentFrame call on this goroutine, if any.
func CurrentFrame() (*Frame, bool) {
	v, ok := frameContext.GetValue(frameContextKey)
	if !ok {
		return nil, false
	}
	f, ok := v.(*Frame)
	return f, ok
}
