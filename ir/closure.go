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

// Callable is the dispatch surface Call_Expr switches on (spec §4.4:
// "dispatch on callable kind"). It embeds value.Callable so both concrete
// kinds can be stored in a value.Value, and is otherwise just a closed,
// two-member tagged union expressed as a Go interface implemented by exactly
// *Closure and *Builtin below — grounded on the teacher's scm.Proc, which
// plays the same "closure or native Go func" role (scm/scmer.go).
type Callable interface {
	value.Callable
}

// Closure is a user-defined function value: a parameter pattern, an IR body,
// and the nonlocals module it captured at creation time (spec §3, §4.5).
type Closure struct {
	Pattern   Pattern
	Body      Expr
	Nonlocals *value.Record
	NSlots    int // frame size required to evaluate Body
}

func (*Closure) CallKind() string { return "closure" }

// Builtin is a polyadic native function (spec §4.4: "polyadic built-in with
// arity n"). Arity == 1 callers place the argument directly in slot 0;
// Arity > 1 callers require the argument to be a list of exactly that length,
// unpacked into slots 0..Arity-1 before Fn runs — exactly mirroring the
// teacher's Declaration-driven builtins (scm/declare.go), which likewise
// fix each builtin's positional arity ahead of time.
type Builtin struct {
	Name  string
	Arity int
	Fn    func(frame *Frame) value.Value
}

// CallKind reports the builtin's name so diagnostics/printing can show which
// native function a value.Value wraps.
func (b *Builtin) CallKind() string { return "builtin:" + b.Name }

// Pattern destructures a Call_Expr's single argument value into a closure's
// frame slots (spec §4.5's "binds the argument by matching closure.pattern").
// Grounded on the teacher's pattern matcher (scm/match.go), simplified to the
// closed grammar this language actually needs: a slot, a wildcard, a list,
// or a record.
type Pattern interface {
	Bind(frame *Frame, v value.Value, phrase Phrase)
}

// SlotPattern binds the whole argument to one frame slot — the common case
// of a single named parameter.
type SlotPattern struct {
	Slot int
}

func (p SlotPattern) Bind(frame *Frame, v value.Value, _ Phrase) { frame.Set(p.Slot, v) }

// WildcardPattern discards the argument (e.g. a `_` parameter).
type WildcardPattern struct{}

func (WildcardPattern) Bind(*Frame, value.Value, Phrase) {}

// ListPattern requires the argument to be a list of exactly len(Elems),
// binding each element through its sub-pattern — the multi-parameter
// (`x, y -> ...`) case, where the analyzer desugars the parameter list into
// a single list-valued argument.
type ListPattern struct {
	Elems []Pattern
}

func (p ListPattern) Bind(frame *Frame, v value.Value, phrase Phrase) {
	items, ok := value.DycastList(v, len(p.Elems))
	if !ok {
		fail(PatternMismatch, phrase, "expected a list of length %d", len(p.Elems))
	}
	for i, elem := range p.Elems {
		elem.Bind(frame, items[i], phrase)
	}
}

// RecordPattern requires the argument to be a record carrying (at least)
// every named field, binding each through its sub-pattern — keyword-style
// parameters (`{x, y} -> ...`).
type RecordPattern struct {
	Names  []string
	Fields map[string]Pattern
}

func (p RecordPattern) Bind(frame *Frame, v value.Value, phrase Phrase) {
	if !v.IsRecord() {
		fail(PatternMismatch, phrase, "expected a record argument")
	}
	rec := v.RecordValue()
	for _, name := range p.Names {
		fv, ok := rec.GetField(name)
		if !ok {
			fail(PatternMismatch, phrase, "argument record is missing field %q", name)
		}
		p.Fields[name].Bind(frame, fv, phrase)
	}
}

// bindPattern is the single entry point Call_Expr uses to bind its argument;
// kept as a free function (rather than a Pattern method invoked directly)
// so the PatternMismatch failure site is visible in one place.
func bindPattern(p Pattern, frame *Frame, v value.Value, phrase Phrase) {
	p.Bind(frame, v, phrase)
}
