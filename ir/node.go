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

// Node is the common surface every IR node exposes (spec §3 "IR node"):
// a back-reference to its originating syntax phrase and the `pure` flag set
// by analysis. Expr and Stmt extend Node with their family's operations.
//
// Go's interface method sets play the role of the "outer dispatch table"
// from spec §9's design note on a closed tagged union: every concrete node
// type below is defined in this package (closed), and each implements
// exactly the subset of {Eval,TailEval,Exec,ScEval,ScExec} its family
// requires, which the compiler checks against the Expr/Stmt interfaces.
// IR nodes have no hash/hash_eq operation; only values are hashed
// (value.Hash).
type Node interface {
	Phrase() Phrase
	Pure() bool
}

// Expr is an expression: it returns exactly one value via Eval, and its
// TailEval entry point participates in the trampoline (spec §4.2-§4.3).
// Every Expr is also a zero-or-one value generator (spec §4.3
// "polymorphism rules"): Exec evaluates and pushes through an Executor.
type Expr interface {
	Node
	Eval(frame *Frame) value.Value
	TailEval(framePtr **Frame)
	Exec(frame *Frame, ex Executor)
	ScEval(frame *Frame) (value.Value, error)
}

// Stmt is a statement: it executes via Exec, producing zero or more
// values/fields through an Executor, and never returns a value directly
// (spec §4.3).
type Stmt interface {
	Node
	Exec(frame *Frame, ex Executor)
	TailExec(framePtr **Frame, ex Executor)
	ScExec(frame *Frame, ex Executor) error
}

// base is embedded by every concrete node; it supplies Phrase/Pure and the
// default (unsupported) Shape Compiler hooks, matching spec §6: "defaulting
// to fail with ShapeCompilerUnsupported citing the source phrase" unless a
// node type overrides ScEval/ScExec explicitly.
type base struct {
	phrase Phrase
	pure   bool
}

func (b *base) Phrase() Phrase { return b.phrase }
func (b *base) Pure() bool     { return b.pure }

func (b *base) ScEval(frame *Frame) (value.Value, error) {
	return value.Value{}, &EvalError{Kind: ShapeCompilerUnsupported, Phrase: b.phrase, Message: "node has no Shape Compiler lowering"}
}

func (b *base) ScExec(frame *Frame, ex Executor) error {
	return &EvalError{Kind: ShapeCompilerUnsupported, Phrase: b.phrase, Message: "node has no Shape Compiler lowering"}
}

// evalAsExec implements the "every expression is also a generator" rule: it
// evaluates e and pushes the result through ex. Every Expr's Exec method is
// a one-line delegation to this helper.
func evalAsExec(e Expr, frame *Frame, ex Executor) {
	v := e.Eval(frame)
	ex.PushValue(v, e.Phrase())
}

// defaultTailEval is used by expression nodes that never participate in a
// tail call themselves (most of them): it just evaluates normally and
// stages the result, matching spec §4.2's "A tail_eval implementation that
// does not perform a tail call MUST set result before returning."
func defaultTailEval(e Expr, framePtr **Frame) {
	v := e.Eval(*framePtr)
	(*framePtr).Result = v
	(*framePtr).NextOp = nil
}

// defaultTailExec mirrors defaultTailEval for statements that never tail-call.
func defaultTailExec(s Stmt, framePtr **Frame, ex Executor) {
	s.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}

// ExprStmt adapts any Expr to the Stmt interface via the "every expression
// is also a generator" rule (spec §4.3), for contexts — list/record literal
// elements, block actions built from bare expressions — that are typed as
// statements.
// Exec is promoted from the embedded Expr (every Expr already implements
// Exec as a one-line evalAsExec delegation), so only TailExec/ScExec need a
// statement-shaped implementation here.
type ExprStmt struct {
	Expr
}

func (s ExprStmt) TailExec(framePtr **Frame, ex Executor) { defaultTailExec(s, framePtr, ex) }

func (s ExprStmt) ScExec(frame *Frame, ex Executor) error {
	v, err := s.Expr.ScEval(frame)
	if err != nil {
		return err
	}
	ex.PushValue(v, s.Expr.Phrase())
	return nil
}
