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

// Locative is an abstract assignment target (spec §4.3). It is immutable
// IR; its storage target lives in a frame slot or inside a composite value.
type Locative interface {
	Node
	// Store copies v into the target storage.
	Store(frame *Frame, v value.Value)
	// Reference obtains the current contents of the target storage. When
	// needValue is false the caller is about to overwrite it and the
	// current contents may be treated as undefined — an optimization hint,
	// never required for correctness (spec §4.3).
	Reference(frame *Frame, needValue bool) value.Value
}

// LocalLocative targets a slot in the current frame.
type LocalLocative struct {
	base
	Slot int
}

func NewLocalLocative(phrase Phrase, pure bool, slot int) *LocalLocative {
	return &LocalLocative{base: base{phrase, pure}, Slot: slot}
}

func (l *LocalLocative) Store(frame *Frame, v value.Value) { frame.Set(l.Slot, v) }

func (l *LocalLocative) Reference(frame *Frame, needValue bool) value.Value {
	if !needValue {
		return value.Missing
	}
	return frame.Get(l.Slot)
}

// DotLocative targets a named field of a composite value held by another
// locative — e.g. the `y` in `p.y := 3`.
type DotLocative struct {
	base
	Base  Locative
	Field string
}

func NewDotLocative(phrase Phrase, pure bool, base_ Locative, field string) *DotLocative {
	return &DotLocative{base: base{phrase, pure}, Base: base_, Field: field}
}

func (d *DotLocative) Store(frame *Frame, v value.Value) {
	container := d.Base.Reference(frame, true)
	if !container.IsRecord() {
		fail(NotARecord, d.phrase, "cannot assign field %q: base is not a record", d.Field)
	}
	rec := container.RecordValue()
	idx := rec.SlotIndex(d.Field)
	if idx < 0 {
		rec.SetField(d.Field, v)
		return
	}
	rec.Set(idx, v)
	// the mutated record must be written back through the base locative so
	// that a base held in an immutable slot observes the update too.
	d.Base.Store(frame, value.RecordValue(rec))
}

func (d *DotLocative) Reference(frame *Frame, needValue bool) value.Value {
	container := d.Base.Reference(frame, true)
	if !container.IsRecord() {
		fail(NotARecord, d.phrase, "cannot read field %q: base is not a record", d.Field)
	}
	v, ok := container.RecordValue().GetField(d.Field)
	if !ok {
		return value.Missing
	}
	return v
}
