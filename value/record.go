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
package value

// Record is an ordered symbol -> slot-index dictionary plus a slot array
// (spec §3 "Module (record)"). It backs both record literal values and the
// captured nonlocal environments of closures (spec §4.5, §4.6) — the same
// structure serves both roles, as in the teacher's scm.Env/Vars split
// between ordered field access and lexical lookup.
type Record struct {
	keys  []string // insertion order, for print/spread ordering
	index map[string]int
	slots []Value
}

// NewRecord allocates a record/module backed by a slot array sized to len(keys).
// Slots start Missing; callers fill them via Set before exposing the record.
func NewRecord(keys []string) *Record {
	r := &Record{
		keys:  append([]string(nil), keys...),
		index: make(map[string]int, len(keys)),
		slots: make([]Value, len(keys)),
	}
	for i, k := range keys {
		r.index[k] = i
		r.slots[i] = Missing
	}
	return r
}

// Len returns the number of fields/slots.
func (r *Record) Len() int { return len(r.keys) }

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string { return r.keys }

// SlotIndex returns the slot index for a field name, or -1 if absent.
func (r *Record) SlotIndex(name string) int {
	if idx, ok := r.index[name]; ok {
		return idx
	}
	return -1
}

// Get reads a slot by index.
func (r *Record) Get(idx int) Value { return r.slots[idx] }

// GetField reads a field by name, returning (value, true) or (Missing, false).
func (r *Record) GetField(name string) (Value, bool) {
	idx, ok := r.index[name]
	if !ok {
		return Missing, false
	}
	return r.slots[idx], true
}

// Set writes a slot by index. Used by Function_Setter to fill the shared
// nonlocals module and by Dot_Locative to overwrite an existing field.
func (r *Record) Set(idx int, v Value) { r.slots[idx] = v }

// SetField writes a field by name if it exists, appending a new slot
// otherwise (used by the record-literal builder, which grows the record one
// field at a time rather than pre-sizing it — fields of a record literal are
// not known ahead of evaluation the way a module's dictionary is).
func (r *Record) SetField(name string, v Value) {
	if idx, ok := r.index[name]; ok {
		r.slots[idx] = v
		return
	}
	r.index[name] = len(r.keys)
	r.keys = append(r.keys, name)
	r.slots = append(r.slots, v)
}

// HasField reports whether a field name is present.
func (r *Record) HasField(name string) bool {
	_, ok := r.index[name]
	return ok
}
