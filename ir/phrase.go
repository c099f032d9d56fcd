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

// Phrase is the syntactic site that produced an IR node, carried for
// diagnostics only (spec §3 "back-reference to its originating syntax
// phrase"). Analysis fills this in; the core never inspects Source/Line/Col
// except when rendering errors and stack traces.
type Phrase struct {
	Source string // human-readable description of the construct, e.g. "call to `loop`"
	Line   int
	Col    int
}

func (p Phrase) String() string {
	if p.Source == "" {
		return "<unknown>"
	}
	return p.Source
}
