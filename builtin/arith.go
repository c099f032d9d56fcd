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
	"fmt"
	"math"

	"github.com/launix-de/geomir/ir"
	"github.com/launix-de/geomir/value"
)

func init() {
	Declare(&Declaration{
		Name: "sqrt", Desc: "square root of a number", Arity: 1,
		Fn: func(f *ir.Frame) value.Value {
			x := requireNumber(f, f.Get(0))
			if x < 0 {
				fail(f, ir.DomainError, "sqrt of a negative number")
			}
			return value.Number(math.Sqrt(x))
		},
	})
	Declare(&Declaration{
		Name: "abs", Desc: "absolute value of a number", Arity: 1,
		Fn: func(f *ir.Frame) value.Value { return value.Number(math.Abs(requireNumber(f, f.Get(0)))) },
	})
	Declare(&Declaration{
		Name: "floor", Desc: "round a number down to the nearest integer", Arity: 1,
		Fn: func(f *ir.Frame) value.Value { return value.Number(math.Floor(requireNumber(f, f.Get(0)))) },
	})
	Declare(&Declaration{
		Name: "ceil", Desc: "round a number up to the nearest integer", Arity: 1,
		Fn: func(f *ir.Frame) value.Value { return value.Number(math.Ceil(requireNumber(f, f.Get(0)))) },
	})
	Declare(&Declaration{
		Name: "min", Desc: "the smaller of two numbers", Arity: 2,
		Fn: func(f *ir.Frame) value.Value {
			return value.Number(math.Min(requireNumber(f, f.Get(0)), requireNumber(f, f.Get(1))))
		},
	})
	Declare(&Declaration{
		Name: "max", Desc: "the larger of two numbers", Arity: 2,
		Fn: func(f *ir.Frame) value.Value {
			return value.Number(math.Max(requireNumber(f, f.Get(0)), requireNumber(f, f.Get(1))))
		},
	})
	Declare(&Declaration{
		Name: "print", Desc: "write a value's printed form to standard output, followed by a newline", Arity: 1,
		Fn: func(f *ir.Frame) value.Value {
			fmt.Fprintln(f.System.Stdout(), value.Print(f.Get(0)))
			return value.Null
		},
	})
	Declare(&Declaration{
		Name: "length", Desc: "the number of elements in a list", Arity: 1,
		Fn: func(f *ir.Frame) value.Value {
			v := f.Get(0)
			if !v.IsList() {
				fail(f, ir.TypeMismatch, "length expects a list, got %s", v.Tag())
			}
			return value.Number(float64(len(v.ListItems())))
		},
	})
}
