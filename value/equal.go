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

// Equal is structural equality, deep for composite values. Numbers use IEEE
// equality (NaN != NaN, per spec §3). Functions compare by identity (pointer
// equality of the underlying Callable).
func Equal(a, b Value) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case TagNull, TagMissing:
		return true
	case TagBool, TagNumber:
		return a.num == b.num
	case TagSymbol, TagString:
		return a.str == b.str
	case TagList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case TagRecord:
		return recordEqual(a.record, b.record)
	case TagFunction:
		return a.fn == b.fn
	default:
		return false
	}
}

func recordEqual(a, b *Record) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.keys) != len(b.keys) {
		return false
	}
	for _, k := range a.keys {
		bv, ok := b.GetField(k)
		if !ok {
			return false
		}
		av, _ := a.GetField(k)
		if !Equal(av, bv) {
			return false
		}
	}
	return true
}
