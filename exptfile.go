/*
Package exptfile parses experiment and build description files for a
cerebellum simulation engine and resolves experiment descriptions into flat
per-trial parameter tables.

Consists of subpackages:
  - cmd/exptdump: console utility dumping lexed tokens, parsed documents, or resolved trial tables;
  - source: defines named source buffers with line/column mapping;
  - lexer: splits source files into raw token lines and classifies tokens into lexemes;
  - doc: defines structures holding parsed documents (variable sections and the trial hierarchy);
  - parser: recursive-descent parser converting lexed files to documents;
  - trials: validates the trial hierarchy and materializes the flat trial table.

Typical usage is:

1. Parse an experiment file with parser.ExperimentFile (or a build file with
parser.BuildFile), getting a doc.Experiment (doc.Build).

2. Resolve the experiment's trial hierarchy with trials.Resolve, getting a
trials.Table: one row per trial in deterministic declared order, ready to be
handed to the simulation engine.

All failures are reported as *Error values carrying a numeric code and,
where available, source name and position.
*/
package exptfile

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	IoErrors      = 1   // used by lexer for unreadable files
	LexicalErrors = 101 // reserved; lexing itself never fails
	SyntaxErrors  = 201 // used by parser
	ResolveErrors = 301 // used by trials
)

// Error is the error type used by exptfile subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
