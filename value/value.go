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
// Package value implements the uniform, polymorphic datum that flows through
// the evaluator: numbers, booleans, symbols, strings, lists, records and
// first-class functions, plus a handful of compiler-internal sentinels.
package value

import "fmt"

// Tag identifies which variant a Value currently holds.
type Tag uint8

const (
	TagNull Tag = iota
	TagBool
	TagNumber
	TagSymbol
	TagString
	TagList
	TagRecord
	TagFunction
	TagMissing // compiler-internal sentinel: "no value here"
)

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagBool:
		return "boolean"
	case TagNumber:
		return "number"
	case TagSymbol:
		return "symbol"
	case TagString:
		return "string"
	case TagList:
		return "list"
	case TagRecord:
		return "record"
	case TagFunction:
		return "function"
	case TagMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Value is a uniform tagged datum. Only the field matching Tag is valid; the
// others are zero. This trades the teacher's packed-pointer representation
// (scm.Scmer) for a plain tagged struct — see DESIGN.md for why — while
// keeping the same O(1) tag-test-then-payload-access shape.
type Value struct {
	tag    Tag
	num    float64
	str    string  // backs TagSymbol and TagString
	list   []Value  // backs TagList
	record *Record  // backs TagRecord
	fn     Callable // backs TagFunction
}

// Callable is the minimal marker every callable value (closure or builtin)
// implements. Concrete closures and builtins live in package ir, which
// depends on package value; value cannot depend back on ir, so callables are
// held here only as an opaque, identity-comparable interface. Equality and
// dispatch on the concrete kind happen in ir via a type switch/assertion.
type Callable interface {
	CallKind() string // "closure" or "builtin:<name>"; used by Print and Hash
}

// Null is the singular null value.
var Null = Value{tag: TagNull}

// Missing is the compiler-internal "no value" sentinel.
var Missing = Value{tag: TagMissing}

func Bool(b bool) Value {
	v := Value{tag: TagBool}
	if b {
		v.num = 1
	}
	return v
}

func Number(f float64) Value { return Value{tag: TagNumber, num: f} }

func Symbol(name string) Value { return Value{tag: TagSymbol, str: name} }

func String(s string) Value { return Value{tag: TagString, str: s} }

func List(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{tag: TagList, list: items}
}

func RecordValue(r *Record) Value { return Value{tag: TagRecord, record: r} }

func FunctionValue(f Callable) Value { return Value{tag: TagFunction, fn: f} }

// Tag returns the variant tag. O(1).
func (v Value) Tag() Tag { return v.tag }

func (v Value) IsNull() bool    { return v.tag == TagNull }
func (v Value) IsMissing() bool { return v.tag == TagMissing }
func (v Value) IsBool() bool    { return v.tag == TagBool }
func (v Value) IsNumber() bool  { return v.tag == TagNumber }
func (v Value) IsSymbol() bool  { return v.tag == TagSymbol }
func (v Value) IsString() bool  { return v.tag == TagString }
func (v Value) IsList() bool    { return v.tag == TagList }
func (v Value) IsRecord() bool  { return v.tag == TagRecord }
func (v Value) IsFunction() bool {
	return v.tag == TagFunction
}

// BoolValue reads the boolean payload. Panics if Tag() != TagBool; callers
// that need a safe check should use Dycast instead.
func (v Value) BoolValue() bool {
	mustTag(v, TagBool)
	return v.num != 0
}

func (v Value) NumberValue() float64 {
	mustTag(v, TagNumber)
	return v.num
}

func (v Value) SymbolName() string {
	mustTag(v, TagSymbol)
	return v.str
}

func (v Value) StringValue() string {
	mustTag(v, TagString)
	return v.str
}

func (v Value) ListItems() []Value {
	mustTag(v, TagList)
	return v.list
}

func (v Value) RecordValue() *Record {
	mustTag(v, TagRecord)
	return v.record
}

func (v Value) FunctionValue() Callable {
	mustTag(v, TagFunction)
	return v.fn
}

func mustTag(v Value, want Tag) {
	if v.tag != want {
		panic(fmt.Sprintf("value: expected %s, got %s", want, v.tag))
	}
}

// Dycast is a checked downcast: it returns the payload and true if v holds
// the requested tag, or the zero value and false otherwise. Used by the
// evaluator wherever an operator expects a specific variant (spec §4.1).
func Dycast[T any](v Value, tag Tag, extract func(Value) T) (result T, ok bool) {
	if v.tag != tag {
		return result, false
	}
	return extract(v), true
}

// DycastList is a convenience Dycast for lists of a given arity, used by
// pattern matching and builtins that expect e.g. "a list of length 3".
func DycastList(v Value, arity int) ([]Value, bool) {
	if v.tag != TagList || len(v.list) != arity {
		return nil, false
	}
	return v.list, true
}
