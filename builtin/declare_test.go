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
package builtin

import (
	"testing"

	"github.com/launix-de/geomir/ir"
	"github.com/launix-de/geomir/value"
)

func callBuiltin(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	globals := Globals()
	fv, ok := globals.GetField(name)
	if !ok {
		t.Fatalf("builtin %q not declared", name)
	}
	callee := fv.FunctionValue().(*ir.Builtin)
	frame := ir.NewFrame(callee.Arity, nil, nil, nil, callee)
	if callee.Arity == 1 {
		frame.Set(0, args[0])
	} else {
		for i, a := range args {
			frame.Set(i, a)
		}
	}
	return callee.Fn(frame)
}

func TestSqrt(t *testing.T) {
	got := callBuiltin(t, "sqrt", value.Number(9))
	if got.NumberValue() != 3 {
		t.Fatalf("sqrt(9) = %v, want 3", got.NumberValue())
	}
}

func TestSqrtNegativeDomainError(t *testing.T) {
	defer func() {
		r := recover()
		ee, ok := r.(*ir.EvalError)
		if !ok {
			t.Fatalf("expected *ir.EvalError panic, got %v", r)
		}
		if ee.Kind != ir.DomainError {
			t.Fatalf("expected DomainError, got %v", ee.Kind)
		}
	}()
	callBuiltin(t, "sqrt", value.Number(-1))
}

func TestMinMax(t *testing.T) {
	if got := callBuiltin(t, "min", value.Number(3), value.Number(5)); got.NumberValue() != 3 {
		t.Fatalf("min(3,5) = %v", got.NumberValue())
	}
	if got := callBuiltin(t, "max", value.Number(3), value.Number(5)); got.NumberValue() != 5 {
		t.Fatalf("max(3,5) = %v", got.NumberValue())
	}
}

func TestLength(t *testing.T) {
	got := callBuiltin(t, "length", value.List([]value.Value{value.Number(1), value.Number(2), value.Number(3)}))
	if got.NumberValue() != 3 {
		t.Fatalf("length = %v, want 3", got.NumberValue())
	}
}

func TestLengthTypeMismatch(t *testing.T) {
	defer func() {
		r := recover()
		ee, ok := r.(*ir.EvalError)
		if !ok || ee.Kind != ir.TypeMismatch {
			t.Fatalf("expected TypeMismatch, got %v", r)
		}
	}()
	callBuiltin(t, "length", value.Number(1))
}
