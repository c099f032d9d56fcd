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

// ---- Null_Action: the empty statement ----

type NullAction struct {
	base
}

func NewNullAction(phrase Phrase) *NullAction { return &NullAction{base: base{phrase, true}} }

func (n *NullAction) Exec(*Frame, Executor) {}
func (n *NullAction) TailExec(framePtr **Frame, ex Executor) {
	n.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}
func (n *NullAction) ScExec(*Frame, Executor) error { return nil }

// ---- Compound_Op: a fixed sequence of statements, only the last in tail position ----

type CompoundOp struct {
	base
	Stmts []Stmt
}

func NewCompoundOp(phrase Phrase, pure bool, stmts []Stmt) *CompoundOp {
	return &CompoundOp{base: base{phrase, pure}, Stmts: stmts}
}

func (n *CompoundOp) Exec(frame *Frame, ex Executor) {
	for _, s := range n.Stmts {
		s.Exec(frame, ex)
	}
}

func (n *CompoundOp) TailExec(framePtr **Frame, ex Executor) {
	if len(n.Stmts) == 0 {
		(*framePtr).NextOp = nil
		return
	}
	for _, s := range n.Stmts[:len(n.Stmts)-1] {
		s.Exec(*framePtr, ex)
	}
	n.Stmts[len(n.Stmts)-1].TailExec(framePtr, ex)
}

// ---- Preaction_Op: run a list of actions, then evaluate a trailing expression ----
//
// This is the simple (module-less) case of spec §4.6's bundling: no
// dictionary, no module slot, just "run these statements, then produce a
// value" — used for the body of a block that declares no local module.

type PreactionOp struct {
	base
	Actions []Stmt
	Body    Expr
}

func NewPreactionOp(phrase Phrase, pure bool, actions []Stmt, body Expr) *PreactionOp {
	return &PreactionOp{base: base{phrase, pure}, Actions: actions, Body: body}
}

func (n *PreactionOp) runActions(frame *Frame) {
	ex := ActionExecutor{}
	for _, a := range n.Actions {
		a.Exec(frame, ex)
	}
}

func (n *PreactionOp) Eval(frame *Frame) value.Value {
	n.runActions(frame)
	return n.Body.Eval(frame)
}

func (n *PreactionOp) TailEval(framePtr **Frame) {
	n.runActions(*framePtr)
	n.Body.TailEval(framePtr)
}

func (n *PreactionOp) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

func (n *PreactionOp) TailExec(framePtr **Frame, ex Executor) {
	n.runActions(*framePtr)
	v := n.Body.Eval(*framePtr)
	ex.PushValue(v, n.phrase)
	(*framePtr).NextOp = nil
}

// ---- Block_Op ----
//
// A Block_Op is both a statement (it is a generator, via the "expression is
// also a generator" rule applied to its produced value) and usable as a
// closure/lambda body (an Expr). It wraps the same actions-then-body shape
// as Preaction_Op; kept as a distinct type because spec §4.6 names it
// separately and it is the node most directly targeted by Lambda_Expr.Body.

type BlockOp struct {
	base
	Actions []Stmt
	Body    Expr
}

func NewBlockOp(phrase Phrase, pure bool, actions []Stmt, body Expr) *BlockOp {
	return &BlockOp{base: base{phrase, pure}, Actions: actions, Body: body}
}

func (n *BlockOp) runActions(frame *Frame) {
	ex := ActionExecutor{}
	for _, a := range n.Actions {
		a.Exec(frame, ex)
	}
}

func (n *BlockOp) Eval(frame *Frame) value.Value {
	n.runActions(frame)
	return n.Body.Eval(frame)
}

func (n *BlockOp) TailEval(framePtr **Frame) {
	n.runActions(*framePtr)
	n.Body.TailEval(framePtr)
}

func (n *BlockOp) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

func (n *BlockOp) TailExec(framePtr **Frame, ex Executor) {
	v := n.Eval(*framePtr)
	ex.PushValue(v, n.phrase)
	(*framePtr).NextOp = nil
}

// ---- For_Op: iterate a list, running Body once per element ----

type ForOp struct {
	base
	Slot   int // frame slot the loop variable is bound to for each iteration
	Source Expr
	Body   Stmt
}

func NewForOp(phrase Phrase, slot int, source Expr, body Stmt) *ForOp {
	return &ForOp{base: base{phrase, false}, Slot: slot, Source: source, Body: body}
}

func (n *ForOp) Exec(frame *Frame, ex Executor) {
	v := n.Source.Eval(frame)
	if !v.IsList() {
		fail(NotAList, n.phrase, "for loop source is not a list")
	}
	for _, item := range v.ListItems() {
		frame.Set(n.Slot, item)
		n.Body.Exec(frame, ex)
	}
}

func (n *ForOp) TailExec(framePtr **Frame, ex Executor) {
	// The loop body never needs to be in genuine tail position (the loop
	// itself drives iteration, not recursion), so this always fully resolves
	// within the current frame.
	n.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}

// ---- While_Op ----

type WhileOp struct {
	base
	Cond Expr
	Body Stmt
}

func NewWhileOp(phrase Phrase, cond Expr, body Stmt) *WhileOp {
	return &WhileOp{base: base{phrase, false}, Cond: cond, Body: body}
}

func (n *WhileOp) Exec(frame *Frame, ex Executor) {
	for asBool(n.Cond.Eval(frame), n.phrase) {
		n.Body.Exec(frame, ex)
	}
}

func (n *WhileOp) TailExec(framePtr **Frame, ex Executor) {
	n.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}

// ---- Spread_Op: splice a collection's elements/fields into the enclosing generator ----

type SpreadOp struct {
	base
	Source Expr
}

func NewSpreadOp(phrase Phrase, pure bool, source Expr) *SpreadOp {
	return &SpreadOp{base: base{phrase, pure}, Source: source}
}

func (n *SpreadOp) Exec(frame *Frame, ex Executor) {
	v := n.Source.Eval(frame)
	switch {
	case v.IsList():
		for _, item := range v.ListItems() {
			ex.PushValue(item, n.phrase)
		}
	case v.IsRecord():
		rec := v.RecordValue()
		for _, name := range rec.Keys() {
			fv, _ := rec.GetField(name)
			ex.PushField(name, fv, n.phrase)
		}
	default:
		fail(NotSpreadable, n.phrase, "cannot spread a %s", v.Tag())
	}
}

func (n *SpreadOp) TailExec(framePtr **Frame, ex Executor) {
	n.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}

// ---- Assoc: a single "name: value" field generator ----

type Assoc struct {
	base
	Name  string
	Value Expr
}

func NewAssoc(phrase Phrase, name string, val Expr) *Assoc {
	return &Assoc{base: base{phrase, true}, Name: name, Value: val}
}

func (n *Assoc) Exec(frame *Frame, ex Executor) {
	v := n.Value.Eval(frame)
	ex.PushField(n.Name, v, n.phrase)
}

func (n *Assoc) TailExec(framePtr **Frame, ex Executor) {
	n.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}

// ---- Assignment_Action: evaluate an expression, store it through a locative ----

type AssignmentAction struct {
	base
	Target Locative
	Value  Expr
}

func NewAssignmentAction(phrase Phrase, target Locative, val Expr) *AssignmentAction {
	return &AssignmentAction{base: base{phrase, false}, Target: target, Value: val}
}

func (n *AssignmentAction) Exec(frame *Frame, ex Executor) {
	v := n.Value.Eval(frame)
	n.Target.Store(frame, v)
}

func (n *AssignmentAction) TailExec(framePtr **Frame, ex Executor) {
	n.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}

// ---- Data_Setter: initialize a local slot from an expression (a `let`/local `var`) ----

type DataSetter struct {
	base
	Slot  int
	Value Expr
}

func NewDataSetter(phrase Phrase, slot int, val Expr) *DataSetter {
	return &DataSetter{base: base{phrase, false}, Slot: slot, Value: val}
}

func (n *DataSetter) Exec(frame *Frame, ex Executor) {
	frame.Set(n.Slot, n.Value.Eval(frame))
}

func (n *DataSetter) TailExec(framePtr **Frame, ex Executor) {
	n.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}

// ---- Include_Setter: splice a module's fields into the enclosing scope's slots ----

type IncludeSetter struct {
	base
	Source Expr
	// Slots maps each included field name to the local frame slot it feeds.
	Names []string
	Slots []int
}

func NewIncludeSetter(phrase Phrase, source Expr, names []string, slots []int) *IncludeSetter {
	return &IncludeSetter{base: base{phrase, false}, Source: source, Names: names, Slots: slots}
}

func (n *IncludeSetter) Exec(frame *Frame, ex Executor) {
	v := n.Source.Eval(frame)
	if !v.IsRecord() {
		fail(NotARecord, n.phrase, "include source is not a record")
	}
	rec := v.RecordValue()
	for i, name := range n.Names {
		fv, ok := rec.GetField(name)
		if !ok {
			fail(UnboundIdentifier, n.phrase, "included record has no field %q", name)
		}
		frame.Set(n.Slots[i], fv)
	}
}

func (n *IncludeSetter) TailExec(framePtr **Frame, ex Executor) {
	n.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}

// ---- Function_Setter: mutual recursion (spec §4.5) ----

// FunctionSetterEntry binds one lambda's closure both into the local frame
// slot used by ordinary references, and — if ModuleField >= 0 — into the
// shared nonlocals module at field slot ModuleField so sibling closures can
// reach it via Nonlocal_Data_Ref.
type FunctionSetterEntry struct {
	Slot          int
	ModuleField   int // field slot inside the shared nonlocals module, or -1
	Pattern       Pattern
	Body          Expr
	ClosureNSlots int
}

type FunctionSetter struct {
	base
	// Nonlocals constructs the single shared module referenced by every
	// entry's closure — built once, before any closure is created, so the
	// closures can close over each other (spec §4.5: "construct a single
	// shared nonlocals module whose slots are the evaluated nonlocals
	// expressions").
	Nonlocals *ModuleExpr
	Entries   []FunctionSetterEntry
}

func NewFunctionSetter(phrase Phrase, nonlocals *ModuleExpr, entries []FunctionSetterEntry) *FunctionSetter {
	return &FunctionSetter{base: base{phrase, false}, Nonlocals: nonlocals, Entries: entries}
}

func (n *FunctionSetter) Exec(frame *Frame, ex Executor) {
	shared := n.Nonlocals.buildRecord(frame)
	for _, e := range n.Entries {
		closure := &Closure{Pattern: e.Pattern, Body: e.Body, Nonlocals: shared, NSlots: e.ClosureNSlots}
		fv := value.FunctionValue(closure)
		frame.Set(e.Slot, fv)
		if e.ModuleField >= 0 {
			shared.Set(e.ModuleField, fv)
		}
	}
}

func (n *FunctionSetter) TailExec(framePtr **Frame, ex Executor) {
	n.Exec(*framePtr, ex)
	(*framePtr).NextOp = nil
}
