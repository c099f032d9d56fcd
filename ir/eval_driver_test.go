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
	"testing"

	"github.com/launix-de/geomir/value"
)

func ph(s string) Phrase { return Phrase{Source: s} }

// buildLoop constructs `loop = n -> if (n==0) 0 else loop(n-1)` directly as
// IR: a self-referential closure built the Function_Setter way (a one-entry
// mutual-recursion group), so its own body's Call_Expr refers to itself
// through a Nonlocal_Data_Ref into the shared module rather than a name.
//
// Frame layout for the closure body: slot 0 = n (the bound parameter).
// Nonlocals module: single field "loop" holding the closure itself.
func buildLoop() *FunctionSetter {
	nonlocals := NewModuleExpr(ph("loop-nonlocals"), -1, nil, nil)

	nonlocalRef := NewNonlocalDataRef(ph("loop-ref"), 0)
	argRef := NewDataRef(ph("n"), 0)
	call := NewCallExpr(ph("loop(n-1)"), false, nonlocalRef,
		NewBinary(ph("n-1"), false, OpSubtract, argRef, NewConstant(ph("1"), value.Number(1))))

	cond := NewBinary(ph("n==0"), false, OpEqual, argRef, NewConstant(ph("0"), value.Number(0)))
	body := NewIfElseOp(ph("if n==0"), false, cond, NewConstant(ph("0"), value.Number(0)), call)

	entry := FunctionSetterEntry{
		Slot:          0,
		ModuleField:   0,
		Pattern:       SlotPattern{Slot: 0},
		Body:          body,
		ClosureNSlots: 1,
	}
	fs := NewFunctionSetter(ph("loop ="), nonlocals, []FunctionSetterEntry{entry})
	fs.Nonlocals.Dictionary = []string{"loop"}
	return fs
}

func TestTailRecursionDoesNotGrowGoStack(t *testing.T) {
	fs := buildLoop()
	root := NewFrame(1, nil, nil, nil, nil)
	fs.Exec(root, ActionExecutor{})
	loopFn := root.Get(0)
	if !loopFn.IsFunction() {
		t.Fatalf("expected slot 0 to hold the loop closure")
	}
	callPhrase := ph("loop(1000000)")
	call := &CallExpr{base: base{callPhrase, false}, Func: NewConstant(callPhrase, loopFn), Arg: NewConstant(callPhrase, value.Number(1_000_000))}
	got := call.Eval(root)
	if !got.IsNumber() || got.NumberValue() != 0 {
		t.Fatalf("loop(1000000) = %v, want 0", got)
	}
}

// buildEvenOdd constructs two mutually recursive closures sharing one
// nonlocals module (spec §4.5): even(n) = if n==0 true else odd(n-1);
// odd(n) = if n==0 false else even(n-1).
func buildEvenOdd() *FunctionSetter {
	nonlocals := NewModuleExpr(ph("evenodd-nonlocals"), -1, []string{"even", "odd"}, nil)

	argRef := NewDataRef(ph("n"), 0)
	zero := NewConstant(ph("0"), value.Number(0))
	one := NewConstant(ph("1"), value.Number(1))

	evenBody := NewIfElseOp(ph("even if"), false,
		NewBinary(ph("n==0"), false, OpEqual, argRef, zero),
		NewConstant(ph("true"), value.Bool(true)),
		NewCallExpr(ph("odd(n-1)"), false, NewNonlocalDataRef(ph("odd ref"), 1),
			NewBinary(ph("n-1"), false, OpSubtract, argRef, one)))

	oddBody := NewIfElseOp(ph("odd if"), false,
		NewBinary(ph("n==0"), false, OpEqual, argRef, zero),
		NewConstant(ph("false"), value.Bool(false)),
		NewCallExpr(ph("even(n-1)"), false, NewNonlocalDataRef(ph("even ref"), 0),
			NewBinary(ph("n-1"), false, OpSubtract, argRef, one)))

	entries := []FunctionSetterEntry{
		{Slot: 0, ModuleField: 0, Pattern: SlotPattern{Slot: 0}, Body: evenBody, ClosureNSlots: 1},
		{Slot: 1, ModuleField: 1, Pattern: SlotPattern{Slot: 0}, Body: oddBody, ClosureNSlots: 1},
	}
	return NewFunctionSetter(ph("even/odd ="), nonlocals, entries)
}

func TestMutualRecursion(t *testing.T) {
	fs := buildEvenOdd()
	root := NewFrame(2, nil, nil, nil, nil)
	fs.Exec(root, ActionExecutor{})
	even := root.Get(0)

	call := func(fn value.Value, n float64) value.Value {
		cp := ph("call")
		c := &CallExpr{base: base{cp, false}, Func: NewConstant(cp, fn), Arg: NewConstant(cp, value.Number(n))}
		return c.Eval(root)
	}
	if got := call(even, 10); !got.BoolValue() {
		t.Fatalf("even(10) = %v, want true", got)
	}
	if got := call(even, 7); got.BoolValue() {
		t.Fatalf("even(7) = %v, want false", got)
	}
}

func TestListComprehensionViaFor(t *testing.T) {
	// [for (i in [1,2,3]) i*2] — modeled directly as a ListExpr whose single
	// element is a For_Op that pushes through the list executor on each
	// iteration (spec §4.7's generator polymorphism applied to For_Op).
	source := NewConstant(ph("[1,2,3]"), value.List([]value.Value{value.Number(1), value.Number(2), value.Number(3)}))
	doubled := NewBinary(ph("i*2"), true, OpMultiply, NewDataRef(ph("i"), 0), NewConstant(ph("2"), value.Number(2)))
	forOp := NewForOp(ph("for i"), 0, source, ExprStmt{doubled})
	listExpr := NewListExpr(ph("[for...]"), false, []Stmt{forOp})

	root := NewFrame(1, nil, nil, nil, nil)
	got := listExpr.Eval(root)
	want := []float64{2, 4, 6}
	items := got.ListItems()
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, w := range want {
		if items[i].NumberValue() != w {
			t.Fatalf("item %d = %v, want %v", i, items[i].NumberValue(), w)
		}
	}
}

func TestRecordSpreadDuplicateFieldFails(t *testing.T) {
	base_ := NewRecordExpr(ph("{a:1}"), false, []Stmt{NewAssoc(ph("a"), "a", NewConstant(ph("1"), value.Number(1)))})
	spread := NewSpreadOp(ph("...base"), false, base_)
	dup := NewAssoc(ph("a:2"), "a", NewConstant(ph("2"), value.Number(2)))
	rec := NewRecordExpr(ph("{...base, a:2}"), false, []Stmt{spread, dup})

	root := NewFrame(0, nil, nil, nil, nil)
	defer func() {
		r := recover()
		ee, ok := r.(*EvalError)
		if !ok || ee.Kind != DuplicateField {
			t.Fatalf("expected DuplicateField, got %v", r)
		}
	}()
	rec.Eval(root)
}

func TestStringInterpolationEscaping(t *testing.T) {
	root := NewFrame(1, nil, nil, nil, nil)
	root.Set(0, value.String(`a"b`))
	str := NewStringExpr(ph(`"${x}"`), false, []StringSegment{
		{Expr: NewDataRef(ph("x"), 0)},
	})
	got := str.Eval(root)
	if got.StringValue() != `a"b` {
		t.Fatalf("interpolated value = %q, want %q", got.StringValue(), `a"b`)
	}
	printed := value.Print(got)
	if printed != `"a""b"` {
		t.Fatalf("Print(%q) = %q, want %q", got.StringValue(), printed, `"a""b"`)
	}
}

func TestForLoopAssignmentAccumulates(t *testing.T) {
	// var x = 0; for (i in [1,2,3]) x := x + i; x
	source := NewConstant(ph("[1,2,3]"), value.List([]value.Value{value.Number(1), value.Number(2), value.Number(3)}))
	assign := NewAssignmentAction(ph("x := x+i"),
		NewLocalLocative(ph("x"), false, 1),
		NewBinary(ph("x+i"), false, OpAdd, NewDataRef(ph("x"), 1), NewDataRef(ph("i"), 0)))
	forOp := NewForOp(ph("for i"), 0, source, assign)

	root := NewFrame(2, nil, nil, nil, nil)
	root.Set(1, value.Number(0))
	forOp.Exec(root, ActionExecutor{})
	if got := root.Get(1); got.NumberValue() != 6 {
		t.Fatalf("x = %v, want 6", got.NumberValue())
	}
}

func TestDivisionByZero(t *testing.T) {
	expr := NewBinary(ph("1/0"), false, OpDivide, NewConstant(ph("1"), value.Number(1)), NewConstant(ph("0"), value.Number(0)))
	root := NewFrame(0, nil, nil, nil, nil)
	defer func() {
		r := recover()
		ee, ok := r.(*EvalError)
		if !ok || ee.Kind != DivisionByZero {
			t.Fatalf("expected DivisionByZero, got %v", r)
		}
	}()
	expr.Eval(root)
}

func TestIfWithoutElseAsExpressionFailsMissingElse(t *testing.T) {
	ifOp := NewIfOp(ph("if no else"), false, NewConstant(ph("true"), value.Bool(true)), NewNullAction(ph("then")))
	root := NewFrame(0, nil, nil, nil, nil)
	defer func() {
		r := recover()
		ee, ok := r.(*EvalError)
		if !ok || ee.Kind != MissingElse {
			t.Fatalf("expected MissingElse, got %v", r)
		}
	}()
	ifOp.Eval(root)
}
