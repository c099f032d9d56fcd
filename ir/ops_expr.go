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
	"math"
	"strings"

	"github.com/launix-de/geomir/value"
)

func asNumber(v value.Value, phrase Phrase) float64 {
	if !v.IsNumber() {
		fail(TypeMismatch, phrase, "expected a number, got %s", v.Tag())
	}
	return v.NumberValue()
}

func asBool(v value.Value, phrase Phrase) bool {
	if !v.IsBool() {
		fail(NotBoolean, phrase, "expected a boolean, got %s", v.Tag())
	}
	return v.BoolValue()
}

// ---- Constant ----

type ConstantExpr struct {
	base
	Value value.Value
}

func NewConstant(phrase Phrase, v value.Value) *ConstantExpr {
	return &ConstantExpr{base: base{phrase, true}, Value: v}
}

func (n *ConstantExpr) Eval(*Frame) value.Value        { return n.Value }
func (n *ConstantExpr) TailEval(fp **Frame)             { defaultTailEval(n, fp) }
func (n *ConstantExpr) Exec(frame *Frame, ex Executor)  { evalAsExec(n, frame, ex) }
func (n *ConstantExpr) ScEval(*Frame) (value.Value, error) { return n.Value, nil }

// ---- Symbolic_Ref: dynamic lookup by name in the ambient (global) environment ----

type SymbolicRefExpr struct {
	base
	Name string
}

func NewSymbolicRef(phrase Phrase, name string) *SymbolicRefExpr {
	return &SymbolicRefExpr{base: base{phrase, false}, Name: name}
}

func (n *SymbolicRefExpr) Eval(frame *Frame) value.Value {
	if frame.Globals == nil {
		fail(UnboundIdentifier, n.phrase, "identifier %q is unbound", n.Name)
	}
	v, ok := frame.Globals.GetField(n.Name)
	if !ok {
		fail(UnboundIdentifier, n.phrase, "identifier %q is unbound", n.Name)
	}
	return v
}
func (n *SymbolicRefExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *SymbolicRefExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- Data_Ref: local slot ----

type DataRefExpr struct {
	base
	Slot int
}

func NewDataRef(phrase Phrase, slot int) *DataRefExpr {
	return &DataRefExpr{base: base{phrase, false}, Slot: slot}
}

func (n *DataRefExpr) Eval(frame *Frame) value.Value     { return frame.Get(n.Slot) }
func (n *DataRefExpr) TailEval(fp **Frame)                { defaultTailEval(n, fp) }
func (n *DataRefExpr) Exec(frame *Frame, ex Executor)     { evalAsExec(n, frame, ex) }

// ---- Nonlocal_Data_Ref: slot in the captured nonlocals module ----

type NonlocalDataRefExpr struct {
	base
	Slot int
}

func NewNonlocalDataRef(phrase Phrase, slot int) *NonlocalDataRefExpr {
	return &NonlocalDataRefExpr{base: base{phrase, false}, Slot: slot}
}

func (n *NonlocalDataRefExpr) Eval(frame *Frame) value.Value {
	if frame.Nonlocals == nil {
		fail(UnboundIdentifier, n.phrase, "no captured environment in this frame")
	}
	return frame.Nonlocals.Get(n.Slot)
}
func (n *NonlocalDataRefExpr) TailEval(fp **Frame)        { defaultTailEval(n, fp) }
func (n *NonlocalDataRefExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- Module_Data_Ref: slot in a module stored at another slot (recursive bindings) ----

type ModuleDataRefExpr struct {
	base
	ModuleSlot int
	FieldSlot  int
}

func NewModuleDataRef(phrase Phrase, moduleSlot, fieldSlot int) *ModuleDataRefExpr {
	return &ModuleDataRefExpr{base: base{phrase, false}, ModuleSlot: moduleSlot, FieldSlot: fieldSlot}
}

func (n *ModuleDataRefExpr) Eval(frame *Frame) value.Value {
	container := frame.Get(n.ModuleSlot)
	if !container.IsRecord() {
		fail(RecursiveDefinitionUsedAsValue, n.phrase, "module slot %d is not yet initialized", n.ModuleSlot)
	}
	return container.RecordValue().Get(n.FieldSlot)
}
func (n *ModuleDataRefExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *ModuleDataRefExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- Call_Expr ----

type CallExpr struct {
	base
	Func Expr
	Arg  Expr
}

func NewCallExpr(phrase Phrase, pure bool, fn, arg Expr) *CallExpr {
	return &CallExpr{base: base{phrase, pure}, Func: fn, Arg: arg}
}

// prepareCall evaluates func/arg (left-to-right, spec §5) and returns the
// callee frame plus the expression to run in it — either the closure body
// (for a closure callee) or nil once a builtin has already produced its
// value in result.
func (n *CallExpr) prepareCall(frame *Frame) (calleeFrame *Frame, body Expr, result value.Value, isTail bool) {
	fn := n.Func.Eval(frame)
	if !fn.IsFunction() {
		fail(NotCallable, n.phrase, "expected a callable value, got %s", fn.Tag())
	}
	arg := n.Arg.Eval(frame)
	switch callee := fn.FunctionValue().(type) {
	case *Closure:
		cf := NewFrame(callee.NSlots, frame.System, frame, &n.phrase, callee)
		cf.SetNonlocals(callee.Nonlocals)
		bindPattern(callee.Pattern, cf, arg, n.phrase)
		return cf, callee.Body, value.Value{}, true
	case *Builtin:
		cf := NewFrame(callee.Arity, frame.System, frame, &n.phrase, callee)
		if callee.Arity == 1 {
			cf.Set(0, arg)
		} else {
			items, ok := value.DycastList(arg, callee.Arity)
			if !ok {
				fail(ArityMismatch, n.phrase, "builtin %q expects a list of length %d", callee.Name, callee.Arity)
			}
			for i, item := range items {
				cf.Set(i, item)
			}
		}
		return cf, nil, callBuiltin(callee, cf), false
	default:
		fail(NotCallable, n.phrase, "unknown callable kind")
		return nil, nil, value.Value{}, false
	}
}

// callBuiltin runs a native function's body and, if it panics, builds the
// trace starting from cf before the panic continues outward. Builtins never
// enter TailEvalFrame's trampoline (they return a value and NextOp stays
// nil), so without this their own call-site frame would be skipped by the
// walk that starts one level up, at whichever trampoline eventually catches
// the panic.
func callBuiltin(callee *Builtin, cf *Frame) (result value.Value) {
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*EvalError); ok {
				buildTrace(ee, cf)
			}
			panic(r)
		}
	}()
	return callee.Fn(cf)
}

func (n *CallExpr) Eval(frame *Frame) value.Value {
	calleeFrame, body, result, isTail := n.prepareCall(frame)
	if !isTail {
		return result
	}
	return TailEvalFrame(body, calleeFrame)
}

func (n *CallExpr) TailEval(framePtr **Frame) {
	frame := *framePtr
	calleeFrame, body, result, isTail := n.prepareCall(frame)
	if !isTail {
		frame.Result = result
		frame.NextOp = nil
		return
	}
	*framePtr = calleeFrame
	calleeFrame.NextOp = body
}

func (n *CallExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- Prefix operators ----

type NotExpr struct {
	base
	Operand Expr
}

func NewNot(phrase Phrase, pure bool, operand Expr) *NotExpr {
	return &NotExpr{base: base{phrase, pure}, Operand: operand}
}
func (n *NotExpr) Eval(frame *Frame) value.Value { return value.Bool(!asBool(n.Operand.Eval(frame), n.phrase)) }
func (n *NotExpr) TailEval(fp **Frame)           { defaultTailEval(n, fp) }
func (n *NotExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

type PositiveExpr struct {
	base
	Operand Expr
}

func NewPositive(phrase Phrase, pure bool, operand Expr) *PositiveExpr {
	return &PositiveExpr{base: base{phrase, pure}, Operand: operand}
}
func (n *PositiveExpr) Eval(frame *Frame) value.Value { return value.Number(+asNumber(n.Operand.Eval(frame), n.phrase)) }
func (n *PositiveExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *PositiveExpr) Exec(frame *Frame, ex Executor)  { evalAsExec(n, frame, ex) }

type NegativeExpr struct {
	base
	Operand Expr
}

func NewNegative(phrase Phrase, pure bool, operand Expr) *NegativeExpr {
	return &NegativeExpr{base: base{phrase, pure}, Operand: operand}
}
func (n *NegativeExpr) Eval(frame *Frame) value.Value { return value.Number(-asNumber(n.Operand.Eval(frame), n.phrase)) }
func (n *NegativeExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *NegativeExpr) Exec(frame *Frame, ex Executor)  { evalAsExec(n, frame, ex) }

// ---- Infix operators ----
//
// spec §4.3 enumerates thirteen distinct infix-operator node kinds. Rather
// than thirteen near-identical Go types (one field apart: which arithmetic
// the Eval body performs), we follow spec §9's own design note — "a closed
// tagged union (sum type) over IR variants" — literally, and collapse them
// into one struct parameterized by a closed Op enum. This is the idiomatic
// Go rendition of the same sum type the teacher expresses as a deep virtual
// hierarchy (one concrete scm special-form case per operator, inside a
// single `switch string(headSym)` — see scm/scm.go's `to_apply` dispatch).

type BinOp int

const (
	OpOr BinOp = iota
	OpAnd
	OpEqual
	OpNotEqual
	OpLess
	OpGreater
	OpLessOrEqual
	OpGreaterOrEqual
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
)

type BinaryExpr struct {
	base
	Op    BinOp
	Left  Expr
	Right Expr
}

func NewBinary(phrase Phrase, pure bool, op BinOp, left, right Expr) *BinaryExpr {
	return &BinaryExpr{base: base{phrase, pure}, Op: op, Left: left, Right: right}
}

func (n *BinaryExpr) Eval(frame *Frame) value.Value {
	switch n.Op {
	case OpOr:
		if asBool(n.Left.Eval(frame), n.phrase) {
			return value.Bool(true)
		}
		return value.Bool(asBool(n.Right.Eval(frame), n.phrase))
	case OpAnd:
		if !asBool(n.Left.Eval(frame), n.phrase) {
			return value.Bool(false)
		}
		return value.Bool(asBool(n.Right.Eval(frame), n.phrase))
	case OpEqual:
		return value.Bool(value.Equal(n.Left.Eval(frame), n.Right.Eval(frame)))
	case OpNotEqual:
		return value.Bool(!value.Equal(n.Left.Eval(frame), n.Right.Eval(frame)))
	case OpLess, OpGreater, OpLessOrEqual, OpGreaterOrEqual:
		l := asNumber(n.Left.Eval(frame), n.phrase)
		r := asNumber(n.Right.Eval(frame), n.phrase)
		switch n.Op {
		case OpLess:
			return value.Bool(l < r)
		case OpGreater:
			return value.Bool(l > r)
		case OpLessOrEqual:
			return value.Bool(l <= r)
		default:
			return value.Bool(l >= r)
		}
	default: // arithmetic
		l := asNumber(n.Left.Eval(frame), n.phrase)
		r := asNumber(n.Right.Eval(frame), n.phrase)
		switch n.Op {
		case OpAdd:
			return value.Number(l + r)
		case OpSubtract:
			return value.Number(l - r)
		case OpMultiply:
			return value.Number(l * r)
		case OpDivide:
			if r == 0 {
				fail(DivisionByZero, n.phrase, "division by zero")
			}
			return value.Number(l / r)
		case OpPower:
			if l == 0 && r < 0 {
				fail(DomainError, n.phrase, "zero raised to a negative power")
			}
			return value.Number(math.Pow(l, r))
		}
	}
	panic("ir: unreachable binary operator")
}

func (n *BinaryExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *BinaryExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

func (n *BinaryExpr) ScEval(frame *Frame) (value.Value, error) {
	// The Shape Compiler lowers pure arithmetic/comparison cleanly; boolean
	// short-circuit (Or/And) and structural equality are not part of the
	// restricted static target's arithmetic ALU, so they fall through to
	// the default "unsupported" hook (spec §6: "implementations are
	// provided only for the subset of nodes that lower cleanly").
	switch n.Op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower, OpLess, OpGreater, OpLessOrEqual, OpGreaterOrEqual:
		return n.Eval(frame), nil
	default:
		return n.base.ScEval(frame)
	}
}

// ---- Predicate_Assertion ----

type PredicateAssertion struct {
	base
	Operand Expr
}

func NewPredicateAssertion(phrase Phrase, pure bool, operand Expr) *PredicateAssertion {
	return &PredicateAssertion{base: base{phrase, pure}, Operand: operand}
}

func (n *PredicateAssertion) Eval(frame *Frame) value.Value {
	if !asBool(n.Operand.Eval(frame), n.phrase) {
		fail(DomainError, n.phrase, "assertion failed")
	}
	return value.Bool(true)
}
func (n *PredicateAssertion) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *PredicateAssertion) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- Range_Expr ----

type RangeExpr struct {
	base
	From     Expr
	To       Expr
	HalfOpen bool
}

func NewRangeExpr(phrase Phrase, pure bool, from, to Expr, halfOpen bool) *RangeExpr {
	return &RangeExpr{base: base{phrase, pure}, From: from, To: to, HalfOpen: halfOpen}
}

func (n *RangeExpr) Eval(frame *Frame) value.Value {
	from := asNumber(n.From.Eval(frame), n.phrase)
	to := asNumber(n.To.Eval(frame), n.phrase)
	var items []value.Value
	for i := math.Ceil(from); n.inRange(i, to); i++ {
		items = append(items, value.Number(i))
	}
	return value.List(items)
}

func (n *RangeExpr) inRange(i, to float64) bool {
	if n.HalfOpen {
		return i < to
	}
	return i <= to
}

func (n *RangeExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *RangeExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- List_Expr ----
//
// Elements are Stmt so that a plain value-producing Expr (via the
// expression-is-also-a-generator rule) and a Spread_Op can be mixed freely
// in source order (spec §4.3, §8 scenario 4's record analogue).

type ListExpr struct {
	base
	Elements []Stmt
}

func NewListExpr(phrase Phrase, pure bool, elements []Stmt) *ListExpr {
	return &ListExpr{base: base{phrase, pure}, Elements: elements}
}

func (n *ListExpr) Eval(frame *Frame) value.Value {
	ex := NewListExecutor()
	for _, el := range n.Elements {
		el.Exec(frame, ex)
	}
	return value.List(ex.Items)
}
func (n *ListExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *ListExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- Record_Expr ----

type RecordExpr struct {
	base
	Fields []Stmt // Assoc and/or Spread_Op entries
}

func NewRecordExpr(phrase Phrase, pure bool, fields []Stmt) *RecordExpr {
	return &RecordExpr{base: base{phrase, pure}, Fields: fields}
}

func (n *RecordExpr) Eval(frame *Frame) value.Value {
	ex := NewRecordExecutor()
	for _, f := range n.Fields {
		f.Exec(frame, ex)
	}
	return value.RecordValue(ex.Record)
}
func (n *RecordExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *RecordExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- If_Op: statement-only; expression form fails MissingElse ----

type IfOp struct {
	base
	Cond Expr
	Then Stmt
}

func NewIfOp(phrase Phrase, pure bool, cond Expr, then Stmt) *IfOp {
	return &IfOp{base: base{phrase, pure}, Cond: cond, Then: then}
}

func (n *IfOp) Eval(*Frame) value.Value {
	fail(MissingElse, n.phrase, "if without else cannot be used as an expression")
	panic("unreachable")
}
func (n *IfOp) TailEval(fp **Frame) {
	fail(MissingElse, n.phrase, "if without else cannot be used as an expression")
}
func (n *IfOp) ScEval(frame *Frame) (value.Value, error) { return n.base.ScEval(frame) }

func (n *IfOp) Exec(frame *Frame, ex Executor) {
	if asBool(n.Cond.Eval(frame), n.phrase) {
		n.Then.Exec(frame, ex)
	}
}
func (n *IfOp) TailExec(framePtr **Frame, ex Executor) {
	frame := *framePtr
	if asBool(n.Cond.Eval(frame), n.phrase) {
		n.Then.TailExec(framePtr, ex)
		return
	}
	frame.NextOp = nil
}

// ---- If_Else_Op ----

type IfElseOp struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

func NewIfElseOp(phrase Phrase, pure bool, cond, then, els Expr) *IfElseOp {
	return &IfElseOp{base: base{phrase, pure}, Cond: cond, Then: then, Else: els}
}

func (n *IfElseOp) Eval(frame *Frame) value.Value {
	if asBool(n.Cond.Eval(frame), n.phrase) {
		return n.Then.Eval(frame)
	}
	return n.Else.Eval(frame)
}

func (n *IfElseOp) TailEval(framePtr **Frame) {
	frame := *framePtr
	if asBool(n.Cond.Eval(frame), n.phrase) {
		n.Then.TailEval(framePtr)
		return
	}
	n.Else.TailEval(framePtr)
}

func (n *IfElseOp) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }
func (n *IfElseOp) TailExec(framePtr **Frame, ex Executor) {
	frame := *framePtr
	var chosen Expr
	if asBool(n.Cond.Eval(frame), n.phrase) {
		chosen = n.Then
	} else {
		chosen = n.Else
	}
	v := chosen.Eval(frame)
	ex.PushValue(v, n.phrase)
	frame.NextOp = nil
}

func (n *IfElseOp) ScEval(frame *Frame) (value.Value, error) {
	cond := asBool(n.Cond.Eval(frame), n.phrase)
	if cond {
		return n.Then.ScEval(frame)
	}
	return n.Else.ScEval(frame)
}

// ---- Dot_Expr: record field access ----

type DotExpr struct {
	base
	Base  Expr
	Field string
}

func NewDotExpr(phrase Phrase, pure bool, base_ Expr, field string) *DotExpr {
	return &DotExpr{base: base{phrase, pure}, Base: base_, Field: field}
}

func (n *DotExpr) Eval(frame *Frame) value.Value {
	v := n.Base.Eval(frame)
	if !v.IsRecord() {
		fail(NotARecord, n.phrase, "cannot access field %q on a %s", n.Field, v.Tag())
	}
	fv, ok := v.RecordValue().GetField(n.Field)
	if !ok {
		fail(UnboundIdentifier, n.phrase, "record has no field %q", n.Field)
	}
	return fv
}
func (n *DotExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *DotExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- String_Expr: interpolated strings ----

// StringSegment is either a literal run of bytes (Expr == nil) or an
// embedded expression whose value is converted to text: identity if it's
// already a string, Print(v) otherwise (spec §4.8).
type StringSegment struct {
	Literal string
	Expr    Expr
}

type StringExpr struct {
	base
	Segments []StringSegment
}

func NewStringExpr(phrase Phrase, pure bool, segments []StringSegment) *StringExpr {
	return &StringExpr{base: base{phrase, pure}, Segments: segments}
}

func (n *StringExpr) Eval(frame *Frame) value.Value {
	var b strings.Builder
	for _, seg := range n.Segments {
		if seg.Expr == nil {
			b.WriteString(seg.Literal)
			continue
		}
		v := seg.Expr.Eval(frame)
		if v.IsString() {
			b.WriteString(v.StringValue())
		} else {
			b.WriteString(value.Print(v))
		}
	}
	return value.String(b.String())
}
func (n *StringExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *StringExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// EvalSymbol evaluates expr and interns the resulting text as a symbol,
// failing if the result is not a string (spec §4.8).
func EvalSymbol(expr Expr, frame *Frame) value.Value {
	v := expr.Eval(frame)
	if !v.IsString() {
		fail(TypeMismatch, expr.Phrase(), "expected a string to intern as a symbol, got %s", v.Tag())
	}
	return value.Symbol(v.StringValue())
}

// ---- Lambda_Expr ----

type LambdaExpr struct {
	base
	Pattern   Pattern
	Body      Expr
	Nonlocals *ModuleExpr // builds the captured environment, evaluated in the *defining* frame
	NSlots    int         // frame size required to execute Body
}

func NewLambdaExpr(phrase Phrase, pattern Pattern, body Expr, nonlocals *ModuleExpr, nslots int) *LambdaExpr {
	return &LambdaExpr{base: base{phrase, true}, Pattern: pattern, Body: body, Nonlocals: nonlocals, NSlots: nslots}
}

func (n *LambdaExpr) Eval(frame *Frame) value.Value {
	nonlocals := n.Nonlocals.buildRecord(frame)
	closure := &Closure{Pattern: n.Pattern, Body: n.Body, Nonlocals: nonlocals, NSlots: n.NSlots}
	return value.FunctionValue(closure)
}
func (n *LambdaExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *LambdaExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- Parametric_Expr ----

// ReconstructorField is the synthetic field name under which Parametric_Expr
// stores the reconstructor closure, matching Curv's convention of a shape
// record exposing the function that rebuilds it from modified parameters
// (original_source/libcurv's parametric records).
const ReconstructorField = "reconstruct"

type ParametricExpr struct {
	base
	Fields        *ModuleExpr
	Reconstructor *LambdaExpr
}

func NewParametricExpr(phrase Phrase, fields *ModuleExpr, reconstructor *LambdaExpr) *ParametricExpr {
	return &ParametricExpr{base: base{phrase, false}, Fields: fields, Reconstructor: reconstructor}
}

func (n *ParametricExpr) Eval(frame *Frame) value.Value {
	rec := n.Fields.buildRecord(frame)
	fn := n.Reconstructor.Eval(frame)
	rec.SetField(ReconstructorField, fn)
	return value.RecordValue(rec)
}
func (n *ParametricExpr) TailEval(fp **Frame)            { defaultTailEval(n, fp) }
func (n *ParametricExpr) Exec(frame *Frame, ex Executor) { evalAsExec(n, frame, ex) }

// ---- Module expressions: Const, Enum, Scoped ----
//
// spec §4.3 names three module-expression node kinds. All three build a
// value.Record through the same underlying mechanism (ModuleExpr, spec
// §4.6's "module construction"/eval_module); Const and Enum below are
// *constructors* that assemble a ModuleExpr's Actions for their respective
// shape rather than distinct Go types — "Scoped" is ModuleExpr itself, used
// directly wherever a lexically-scoped module construction is needed (a
// lambda's or Function_Setter's nonlocals builder, spec §4.5).

type ModuleExpr struct {
	base
	ModuleSlot int // -1 if this module is not self-referential
	Dictionary []string
	Actions    []Stmt
}

func NewModuleExpr(phrase Phrase, moduleSlot int, dictionary []string, actions []Stmt) *ModuleExpr {
	return &ModuleExpr{base: base{phrase, false}, ModuleSlot: moduleSlot, Dictionary: dictionary, Actions: actions}
}

// buildRecord performs eval_module (spec §4.6): allocate the slot array,
// place the (still-empty) module in frame[ModuleSlot] *before* running
// Actions so recursive references resolve via Module_Data_Ref, then run
// Actions and return the populated record.
func (n *ModuleExpr) buildRecord(frame *Frame) *value.Record {
	rec := value.NewRecord(n.Dictionary)
	if n.ModuleSlot >= 0 {
		frame.Set(n.ModuleSlot, value.RecordValue(rec))
	}
	ex := ActionExecutor{}
	for _, act := range n.Actions {
		act.Exec(frame, ex)
	}
	return rec
}

func (n *ModuleExpr) Eval(frame *Frame) value.Value { return value.RecordValue(n.buildRecord(frame)) }
func (n *ModuleExpr) TailEval(fp **Frame)             { defaultTailEval(n, fp) }
func (n *ModuleExpr) Exec(frame *Frame, ex Executor)  { evalAsExec(n, frame, ex) }

// NewConstModuleExpr builds a "Const" module expression: every field is a
// plain, already-evaluated constant (no recursive self-reference needed).
func NewConstModuleExpr(phrase Phrase, fields map[string]value.Value, order []string) *ModuleExpr {
	actions := make([]Stmt, len(order))
	for i, name := range order {
		actions[i] = NewAssoc(phrase, name, NewConstant(phrase, fields[name]))
	}
	return NewModuleExpr(phrase, -1, nil, actions)
}

// NewEnumModuleExpr builds an "Enum" module expression: a record whose every
// field's value is the Symbol of its own name.
func NewEnumModuleExpr(phrase Phrase, names []string) *ModuleExpr {
	actions := make([]Stmt, len(names))
	for i, name := range names {
		actions[i] = NewAssoc(phrase, name, NewConstant(phrase, value.Symbol(name)))
	}
	return NewModuleExpr(phrase, -1, nil, actions)
}
