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

// Package builtin declares the host-provided functions every top-level
// evaluation's Frame.Globals table is seeded with. Spec §1 scopes the
// standard library itself out of the core ("no shape/geometry standard
// library ... is defined here"); this package exists only to exercise
// Call_Expr's polyadic built-in dispatch path (spec §4.4) end to end with a
// handful of representative declarations, the way the teacher's
// scm/declare.go registers `(sqrt x)`, `(print x)` and friends into the
// global Env rather than hand-writing each call site.
package builtin

import (
	"fmt"

	"github.com/launix-de/geomir/ir"
	"github.com/launix-de/geomir/value"
)

// Declaration mirrors the shape of the teacher's scm.Declaration (name,
// human-readable description, fixed arity, native callback), simplified
// to this language's single-argument-value calling convention: Fn receives
// a Frame whose slots 0..Arity-1 already hold the unpacked arguments
// (spec §4.4's "polyadic built-in with arity n").
type Declaration struct {
	Name  string
	Desc  string
	Arity int
	Fn    func(frame *ir.Frame) value.Value
}

var declarations []*Declaration

// Declare registers a builtin, matching the teacher's Declare(env, def)
// except deferred: this package only builds declarations; Globals()
// materializes them into a value.Record so callers choose when/whether to
// seed a Frame's ambient environment with them.
func Declare(d *Declaration) {
	declarations = append(declarations, d)
}

// Globals builds a fresh value.Record binding every declared name to an
// *ir.Builtin function value, suitable for Frame.Globals (spec §4.3's
// Symbolic_Ref target).
func Globals() *value.Record {
	rec := value.NewRecord(nil)
	for _, d := range declarations {
		rec.SetField(d.Name, value.FunctionValue(&ir.Builtin{Name: d.Name, Arity: d.Arity, Fn: d.Fn}))
	}
	return rec
}

// fail raises the same typed EvalError panic as the evaluator's own nodes,
// so a failure inside a builtin is indistinguishable from a failure in
// hand-written IR to the driver-boundary recover (spec §7).
func fail(frame *ir.Frame, kind ir.ErrorKind, format string, args ...any) {
	var phrase ir.Phrase
	if frame.CallPhrase != nil {
		phrase = *frame.CallPhrase
	}
	panic(&ir.EvalError{Kind: kind, Phrase: phrase, Message: fmt.Sprintf(format, args...)})
}

func requireNumber(frame *ir.Frame, v value.Value) float64 {
	if !v.IsNumber() {
		fail(frame, ir.TypeMismatch, "expected a number, got %s", v.Tag())
	}
	return v.NumberValue()
}
