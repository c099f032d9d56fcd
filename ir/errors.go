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

import "fmt"

// ErrorKind is the closed set of evaluator error kinds (spec §7).
type ErrorKind int

const (
	TypeMismatch ErrorKind = iota
	NotBoolean
	NotCallable
	NotSpreadable
	NotAList
	NotARecord
	ArityMismatch
	PatternMismatch
	MissingElse
	DuplicateField
	FieldInList
	ValueInRecord
	NotAnAction
	DivisionByZero
	DomainError
	RecursiveDefinitionUsedAsValue
	ShapeCompilerUnsupported
	UnboundIdentifier
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case NotBoolean:
		return "NotBoolean"
	case NotCallable:
		return "NotCallable"
	case NotSpreadable:
		return "NotSpreadable"
	case NotAList:
		return "NotAList"
	case NotARecord:
		return "NotARecord"
	case ArityMismatch:
		return "ArityMismatch"
	case PatternMismatch:
		return "PatternMismatch"
	case MissingElse:
		return "MissingElse"
	case DuplicateField:
		return "DuplicateField"
	case FieldInList:
		return "FieldInList"
	case ValueInRecord:
		return "ValueInRecord"
	case NotAnAction:
		return "NotAnAction"
	case DivisionByZero:
		return "DivisionByZero"
	case DomainError:
		return "DomainError"
	case RecursiveDefinitionUsedAsValue:
		return "RecursiveDefinitionUsedAsValue"
	case ShapeCompilerUnsupported:
		return "ShapeCompilerUnsupported"
	case UnboundIdentifier:
		return "UnboundIdentifier"
	default:
		return "UnknownError"
	}
}

// TraceEntry records one frame of the call chain, built by walking
// Frame.ParentFrame as an EvalError unwinds (spec §7).
type TraceEntry struct {
	CallPhrase Phrase
}

// EvalError is the single panic payload type for all evaluator failures
// (spec §7). It is panicked by node implementations and turned into a
// returned error only at the driver boundary (Run/RunStatement);
// TailEvalFrame and callBuiltin recover it solely to build the trace and
// then re-panic. This follows the teacher's evalWithSourceInfo recover-and-reannotate idiom
// (scm/scm.go) generalized into a typed error instead of a re-panicked string.
type EvalError struct {
	Kind    ErrorKind
	Message string
	Phrase  Phrase
	Trace   []TraceEntry

	// traceBuilt guards buildTrace against running more than once as the
	// same *EvalError is re-panicked through several nested recover points
	// (the trampoline can be re-entered by ordinary, non-tail Go recursion —
	// see TailEvalFrame).
	traceBuilt bool
}

func (e *EvalError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Phrase)
	}
	return fmt.Sprintf("%s (at %s)", e.Kind, e.Phrase)
}

// fail panics with a freshly constructed EvalError. Every node
// implementation routes its failures through this helper so the panic
// payload is always the closed EvalError type.
func fail(kind ErrorKind, phrase Phrase, format string, args ...any) {
	panic(&EvalError{Kind: kind, Phrase: phrase, Message: fmt.Sprintf(format, args...)})
}

// buildTrace implements spec §5/§7's documented mechanism literally: the
// context stack is built by walking Frame.ParentFrame from the frame active
// at the point of failure all the way to the root. It runs exactly once per
// error (guarded by traceBuilt) no matter how many nested recover points see
// the error as it re-panics outward, and it is called from the innermost
// point that still holds a live *Frame — TailEvalFrame's own recover for
// anything that runs through the trampoline (which is everything reached via
// a tail call, including the deep-recursion case the trampoline exists for),
// and Call_Expr's builtin-call site for native functions, which never enter
// the trampoline at all.
func buildTrace(err *EvalError, deepest *Frame) {
	if err.traceBuilt {
		return
	}
	for f := deepest; f != nil; f = f.ParentFrame {
		if f.CallPhrase != nil {
			err.Trace = append(err.Trace, TraceEntry{CallPhrase: *f.CallPhrase})
		}
	}
	err.traceBuilt = true
}
