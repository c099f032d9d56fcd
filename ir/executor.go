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

// Executor receives values and/or fields produced by statement execution
// (spec §4.3, §6). Three stock implementations enforce context: an action
// executor accepts neither, a list executor accepts only values, a record
// executor accepts only fields.
type Executor interface {
	PushValue(v value.Value, phrase Phrase)
	PushField(name string, v value.Value, phrase Phrase)
}

// ActionExecutor is used where a statement is evaluated purely for effect;
// both PushValue and PushField are errors (spec §4.3).
type ActionExecutor struct{}

func (ActionExecutor) PushValue(v value.Value, phrase Phrase) {
	fail(NotAnAction, phrase, "a value-producing expression was used where an action was expected")
}

func (ActionExecutor) PushField(name string, v value.Value, phrase Phrase) {
	fail(NotAnAction, phrase, "a field generator was used where an action was expected")
}

// ListExecutor accumulates values into a list; fields are rejected.
type ListExecutor struct {
	Items []value.Value
}

func NewListExecutor() *ListExecutor { return &ListExecutor{} }

func (l *ListExecutor) PushValue(v value.Value, phrase Phrase) {
	l.Items = append(l.Items, v)
}

func (l *ListExecutor) PushField(name string, v value.Value, phrase Phrase) {
	fail(FieldInList, phrase, "field %q produced inside a list context", name)
}

// RecordExecutor accumulates fields into a record; bare values are
// rejected. Duplicate keys fail with DuplicateField (spec §4.3).
type RecordExecutor struct {
	Record *value.Record
}

func NewRecordExecutor() *RecordExecutor {
	return &RecordExecutor{Record: value.NewRecord(nil)}
}

func (r *RecordExecutor) PushValue(v value.Value, phrase Phrase) {
	fail(ValueInRecord, phrase, "bare value produced inside a record context")
}

func (r *RecordExecutor) PushField(name string, v value.Value, phrase Phrase) {
	if r.Record.HasField(name) {
		fail(DuplicateField, phrase, "field %q already present in this record", name)
	}
	r.Record.SetField(name, v)
}
