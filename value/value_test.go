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

import "testing"

func TestEqualStructural(t *testing.T) {
	a := List([]Value{Number(1), String("x")})
	b := List([]Value{Number(1), String("x")})
	if !Equal(a, b) {
		t.Fatalf("expected structurally equal lists to be Equal")
	}
	c := List([]Value{Number(1), String("y")})
	if Equal(a, c) {
		t.Fatalf("expected differing lists to not be Equal")
	}
}

func TestEqualNaN(t *testing.T) {
	nan := Number(nanValue())
	if Equal(nan, nan) {
		t.Fatalf("NaN must not equal itself (spec §3 IEEE equality)")
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func TestRecordEqualOrderIndependent(t *testing.T) {
	r1 := NewRecord(nil)
	r1.SetField("a", Number(1))
	r1.SetField("b", Number(2))
	r2 := NewRecord(nil)
	r2.SetField("b", Number(2))
	r2.SetField("a", Number(1))
	if !Equal(RecordValue(r1), RecordValue(r2)) {
		t.Fatalf("records with same fields in different insertion order must be Equal")
	}
}

func TestDycastList(t *testing.T) {
	v := List([]Value{Number(1), Number(2), Number(3)})
	if _, ok := DycastList(v, 2); ok {
		t.Fatalf("arity-2 dycast must fail against a 3-element list")
	}
	items, ok := DycastList(v, 3)
	if !ok || len(items) != 3 {
		t.Fatalf("arity-3 dycast must succeed")
	}
}

func TestPrintStringEscaping(t *testing.T) {
	got := Print(String(`a$b"c`))
	want := `"a$$b""c"`
	if got != want {
		t.Fatalf("Print(%q) = %q, want %q", `a$b"c`, got, want)
	}
}

func TestPrintPrimitivesSmoke(t *testing.T) {
	cases := []Value{Null, Bool(true), Bool(false), Number(42), Number(-3.5), Symbol("foo"), String("hi")}
	for _, v := range cases {
		_ = Print(v) // smoke: must not panic; exact parser round-trip is an external collaborator
	}
}

// TestHashStableAcrossExecutions pins Hash's output for a fixed pure value to
// a literal constant. Hash has no seed or other process-specific state left
// to vary (see the note on value/hash.go's use of FNV-1a instead of
// hash/maphash), so this constant is reproducible by re-deriving it from the
// documented byte encoding in writeValue — unlike a same-process
// before/after comparison, a mismatch here would mean the encoding itself
// changed, not that some hidden per-run seed did (spec §4.1 "stable across
// executions").
func TestHashStableAcrossExecutions(t *testing.T) {
	v := List([]Value{Number(1), String("a"), Bool(true)})
	const want = uint64(1817293573132968401)
	if got := Hash(v); got != want {
		t.Fatalf("Hash(%v) = %d, want %d (fixed across executions)", v, got, want)
	}
}

func TestHashStableWithinProcess(t *testing.T) {
	v := List([]Value{Number(1), String("a"), Bool(true)})
	h1 := Hash(v)
	h2 := Hash(v)
	if h1 != h2 {
		t.Fatalf("Hash must be stable for repeated calls in the same process")
	}
}

type fakeCallable struct{ kind string }

func (f *fakeCallable) CallKind() string { return f.kind }

func TestFunctionEqualityByIdentity(t *testing.T) {
	c1 := &fakeCallable{"closure"}
	c2 := &fakeCallable{"closure"}
	v1 := FunctionValue(c1)
	v2 := FunctionValue(c2)
	if Equal(v1, v2) {
		t.Fatalf("functions must compare by identity, not structurally")
	}
	if !Equal(v1, FunctionValue(c1)) {
		t.Fatalf("same callable value must be Equal to itself")
	}
}
