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

import "github.com/launix-de/geomir/value"

// TailEvalFrame runs the trampoline (spec §4.2): it drives frame.NextOp to
// completion, letting a node's TailEval implementation either stage a
// result (clearing NextOp) or replace the frame itself with a callee frame
// (a tail call) and point NextOp at the callee's body. This is the literal
// Go rendition of the teacher's `restart: ... goto restart` loop in
// scm.Eval (scm/scm.go) — a labelled goto has no equivalent across closures
// in Go, so the "jump" is expressed as mutation of a loop-local frame
// variable through the **Frame the TailEval methods receive.
// TailEvalFrame is also the trace-building recover point for everything that
// runs through the trampoline (spec §5/§7; builtins are covered separately by
// callBuiltin): frame is the one Go-local variable that keeps pointing at the
// deepest live call frame across any number of tail calls, since a tail call
// replaces it in place instead of growing the Go stack. Catching the panic
// here, while frame still refers to that deepest frame, is what lets
// buildTrace walk Frame.ParentFrame all the way to the root in one pass
// instead of only picking up one link per Go-level recursive call.
func TailEvalFrame(start Expr, frame *Frame) value.Value {
	frame.NextOp = start
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*EvalError); ok {
				buildTrace(ee, frame)
			}
			panic(r)
		}
	}()
	for frame.NextOp != nil {
		op := frame.NextOp
		op.TailEval(&frame)
	}
	return frame.Result
}

// EvalExpression evaluates op in frame, non-tail (spec §4.2's eval entry
// point). It is a thin wrapper over op.Eval; code inside this package calls
// Eval directly, and this named driver entry exists for callers outside the
// package that hold only an Expr and a Frame.
func EvalExpression(op Expr, frame *Frame) value.Value {
	return op.Eval(frame)
}

// ExecStatement executes op in frame against ex (spec §4.2's exec entry
// point), the Stmt-side counterpart to EvalExpression.
func ExecStatement(op Stmt, frame *Frame, ex Executor) {
	op.Exec(frame, ex)
}

// Run evaluates a top-level expression in a fresh root frame, recovering the
// single EvalError panic that may propagate out of the whole evaluation and
// returning it as a plain Go error — the driver-boundary recover point spec
// §7 requires ("recovered exactly once at the boundary between the
// evaluator and its caller"). Any other panic value is a defect in the
// evaluator itself and is allowed to propagate, matching the teacher's own
// practice of only ever recovering its own typed panic payloads
// (scm/scm.go's evalWithSourceInfo).
func Run(op Expr, nslots int, system System, globals *value.Record) (result value.Value, err error) {
	root := NewFrame(nslots, system, nil, nil, nil)
	root.Globals = globals
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*EvalError); ok {
				err = ee
				return
			}
			panic(r)
		}
	}()
	result = TailEvalFrame(op, root)
	return result, nil
}

// RunStatement mirrors Run for a top-level statement executed against ex.
func RunStatement(op Stmt, nslots int, system System, globals *value.Record, ex Executor) (err error) {
	root := NewFrame(nslots, system, nil, nil, nil)
	root.Globals = globals
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*EvalError); ok {
				err = ee
				return
			}
			panic(r)
		}
	}()
	op.Exec(root, ex)
	return nil
}
