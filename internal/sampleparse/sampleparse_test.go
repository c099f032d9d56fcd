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
package sampleparse

import (
	"testing"

	"github.com/launix-de/geomir/value"
)

func TestParseScalars(t *testing.T) {
	cases := map[string]value.Value{
		"42":      value.Number(42),
		"-3.5":    value.Number(-3.5),
		`"hi"`:    value.String("hi"),
		"true":    value.Bool(true),
		"false":   value.Bool(false),
		"null":    value.Null,
	}
	for src, want := range cases {
		got, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		if !value.Equal(got, want) {
			t.Fatalf("Parse(%q) = %v, want %v", src, got, want)
		}
	}
}

func TestParseList(t *testing.T) {
	got, err := Parse("[1, 2, 3]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.IsList() || len(got.ListItems()) != 3 {
		t.Fatalf("expected a 3-element list, got %v", got)
	}
}

func TestParseRecord(t *testing.T) {
	got, err := Parse(`{x: 1, y: 2}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.IsRecord() {
		t.Fatalf("expected a record, got %v", got)
	}
	rec := got.RecordValue()
	x, ok := rec.GetField("x")
	if !ok || x.NumberValue() != 1 {
		t.Fatalf("expected field x = 1, got %v, %v", x, ok)
	}
}

func TestParseDuplicateFieldFails(t *testing.T) {
	_, err := Parse(`{x: 1, x: 2}`)
	if err == nil {
		t.Fatalf("expected an error for a duplicate field")
	}
}

func TestParseTrailingGarbageFails(t *testing.T) {
	_, err := Parse(`1 2`)
	if err == nil {
		t.Fatalf("expected an error for trailing input")
	}
}
