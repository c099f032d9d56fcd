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

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"
)

// Hash computes a stable structural hash: FNV-1a over a tag-prefixed
// encoding of v's structure (spec §4.1 "hash: defined for all pure values;
// stable across executions"). Only meaningful for values that arose from
// pure IR nodes (spec §9); callers must not use the hash of a non-pure
// evaluation as a map key.
//
// hash/maphash (the teacher's own choice in scm/assoc_fast.go's HashKey) is
// deliberately NOT used here: its Seed is only obtainable via
// maphash.MakeSeed(), which draws fresh per-process randomness with no
// public way to pin it, so two separate process runs hashing the same pure
// value would disagree — directly violating the "stable across executions"
// requirement above. FNV-1a has a fixed initial state, so it satisfies that
// requirement in stdlib with no seed-management problem at all.
func Hash(v Value) uint64 {
	h := fnv.New64a()
	writeValue(h, v)
	return h.Sum64()
}

func writeValue(h io.Writer, v Value) {
	var b [8]byte
	switch v.tag {
	case TagNull:
		h.Write([]byte{0})
	case TagMissing:
		h.Write([]byte{1})
	case TagBool:
		if v.num != 0 {
			h.Write([]byte{2, 1})
		} else {
			h.Write([]byte{2, 0})
		}
	case TagNumber:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.num))
		h.Write([]byte{3})
		h.Write(b[:])
	case TagSymbol:
		h.Write([]byte{4})
		io.WriteString(h, v.str)
	case TagString:
		h.Write([]byte{5})
		io.WriteString(h, v.str)
	case TagList:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.list)))
		h.Write([]byte{6})
		h.Write(b[:])
		for _, el := range v.list {
			writeValue(h, el)
		}
	case TagRecord:
		h.Write([]byte{7})
		if v.record != nil {
			binary.LittleEndian.PutUint64(b[:], uint64(len(v.record.keys)))
			h.Write(b[:])
			for _, k := range v.record.keys {
				io.WriteString(h, k)
				fv, _ := v.record.GetField(k)
				writeValue(h, fv)
			}
		}
	case TagFunction:
		h.Write([]byte{8})
		io.WriteString(h, v.fn.CallKind())
	}
}
