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

// Package sampleparse is a minimal, test/demo-only literal-data reader: a
// recursive-descent tokenizer+reader producing value.Value trees directly,
// shaped after the teacher's own tokenize/readFrom split (scm/parser.go)
// but reading only the closed literal grammar this package needs —
// numbers, strings, booleans, null, lists and records — never full
// expression syntax. Real surface-syntax parsing (lambdas, operators,
// statements) is an out-of-scope external collaborator (spec §1); wiring in
// a grammar engine here would blur that boundary, so this stays hand-rolled
// exactly like a unit-test fixture would.
package sampleparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/launix-de/geomir/value"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokPunct
	tokString
	tokNumber
	tokSymbol
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(s string) []token {
	var tokens []token
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case strings.ContainsRune("[]{}:,", r):
			tokens = append(tokens, token{tokPunct, string(r)})
			i++
		case r == '"':
			j := i + 1
			var b strings.Builder
			for j < len(runes) && runes[j] != '"' {
				if runes[j] == '\\' && j+1 < len(runes) {
					j++
				}
				b.WriteRune(runes[j])
				j++
			}
			tokens = append(tokens, token{tokString, b.String()})
			i = j + 1
		case unicode.IsDigit(r) || (r == '-' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			j := i + 1
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.') {
				j++
			}
			tokens = append(tokens, token{tokNumber, string(runes[i:j])})
			i = j
		default:
			j := i
			for j < len(runes) && !unicode.IsSpace(runes[j]) && !strings.ContainsRune("[]{}:,\"", runes[j]) {
				j++
			}
			if j == i {
				j++ // always make progress on an unrecognized rune
			}
			tokens = append(tokens, token{tokSymbol, string(runes[i:j])})
			i = j
		}
	}
	return tokens
}

// Parse reads one literal datum from s. It fails on trailing garbage.
func Parse(s string) (value.Value, error) {
	tokens := tokenize(s)
	v, rest, err := readOne(tokens)
	if err != nil {
		return value.Value{}, err
	}
	if len(rest) != 0 {
		return value.Value{}, fmt.Errorf("sampleparse: unexpected trailing input starting at %q", rest[0].text)
	}
	return v, nil
}

func readOne(tokens []token) (value.Value, []token, error) {
	if len(tokens) == 0 {
		return value.Value{}, nil, fmt.Errorf("sampleparse: unexpected end of input")
	}
	t := tokens[0]
	rest := tokens[1:]
	switch {
	case t.kind == tokNumber:
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return value.Value{}, nil, fmt.Errorf("sampleparse: invalid number %q: %w", t.text, err)
		}
		return value.Number(f), rest, nil
	case t.kind == tokString:
		return value.String(t.text), rest, nil
	case t.kind == tokSymbol && t.text == "true":
		return value.Bool(true), rest, nil
	case t.kind == tokSymbol && t.text == "false":
		return value.Bool(false), rest, nil
	case t.kind == tokSymbol && t.text == "null":
		return value.Null, rest, nil
	case t.kind == tokPunct && t.text == "[":
		return readList(rest)
	case t.kind == tokPunct && t.text == "{":
		return readRecord(rest)
	default:
		return value.Value{}, nil, fmt.Errorf("sampleparse: unexpected token %q", t.text)
	}
}

func readList(tokens []token) (value.Value, []token, error) {
	var items []value.Value
	for {
		if len(tokens) == 0 {
			return value.Value{}, nil, fmt.Errorf("sampleparse: unterminated list, expected ]")
		}
		if tokens[0].kind == tokPunct && tokens[0].text == "]" {
			return value.List(items), tokens[1:], nil
		}
		v, rest, err := readOne(tokens)
		if err != nil {
			return value.Value{}, nil, err
		}
		items = append(items, v)
		tokens = rest
		if len(tokens) > 0 && tokens[0].kind == tokPunct && tokens[0].text == "," {
			tokens = tokens[1:]
		}
	}
}

func readRecord(tokens []token) (value.Value, []token, error) {
	rec := value.NewRecord(nil)
	for {
		if len(tokens) == 0 {
			return value.Value{}, nil, fmt.Errorf("sampleparse: unterminated record, expected }")
		}
		if tokens[0].kind == tokPunct && tokens[0].text == "}" {
			return value.RecordValue(rec), tokens[1:], nil
		}
		if tokens[0].kind != tokSymbol && tokens[0].kind != tokString {
			return value.Value{}, nil, fmt.Errorf("sampleparse: expected a field name, got %q", tokens[0].text)
		}
		name := tokens[0].text
		tokens = tokens[1:]
		if len(tokens) == 0 || tokens[0].kind != tokPunct || tokens[0].text != ":" {
			return value.Value{}, nil, fmt.Errorf("sampleparse: expected ':' after field name %q", name)
		}
		tokens = tokens[1:]
		v, rest, err := readOne(tokens)
		if err != nil {
			return value.Value{}, nil, err
		}
		if rec.HasField(name) {
			return value.Value{}, nil, fmt.Errorf("sampleparse: duplicate field %q", name)
		}
		rec.SetField(name, v)
		tokens = rest
		if len(tokens) > 0 && tokens[0].kind == tokPunct && tokens[0].text == "," {
			tokens = tokens[1:]
		}
	}
}
