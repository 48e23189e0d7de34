package parser

import (
	"github.com/cbmkit/exptfile"
	"github.com/cbmkit/exptfile/lexer"
)

// Error codes used by parser:
const (
	UnexpectedEofError = exptfile.SyntaxErrors + iota
	UnexpectedTokenError
	UnknownTokenError
	NoFiletypeError
	WrongFiletypeError
	BadRegionError
	BadDefError
	BadVariableError
	MisplacedValueError
	RedefinedError
)

func eofError(name string) *exptfile.Error {
	return exptfile.FormatError(UnexpectedEofError, "unexpected end of %s", name)
}

func unexpectedTokenError(t *lexer.Token) *exptfile.Error {
	return exptfile.FormatErrorPos(t, UnexpectedTokenError, "unexpected %s token %q", t.Lexeme(), t.Text())
}

func unknownTokenError(t *lexer.Token) *exptfile.Error {
	return exptfile.FormatErrorPos(t, UnknownTokenError, "unknown token %q", t.Text())
}

func noFiletypeError(t *lexer.Token) *exptfile.Error {
	return exptfile.FormatErrorPos(t, NoFiletypeError, "first region is %q, expecting filetype", t.Text())
}

func wrongFiletypeError(t *lexer.Token, want string) *exptfile.Error {
	return exptfile.FormatErrorPos(t, WrongFiletypeError, "filetype %q does not indicate %s file", t.Text(), fileKindName(want))
}

func badRegionError(t *lexer.Token) *exptfile.Error {
	return exptfile.FormatErrorPos(t, BadRegionError, "malformed region header at %q, expecting begin <region> <region-type>", t.Text())
}

func badDefError(t *lexer.Token) *exptfile.Error {
	return exptfile.FormatErrorPos(t, BadDefError, "malformed definition header at %q, expecting def <kind> <label>", t.Text())
}

func badVariableError(t *lexer.Token) *exptfile.Error {
	return exptfile.FormatErrorPos(t, BadVariableError, "malformed variable at %q, expecting <type> <identifier> <value>", t.Text())
}

func misplacedValueError(t *lexer.Token) *exptfile.Error {
	return exptfile.FormatErrorPos(t, MisplacedValueError, "value %q follows no identifier", t.Text())
}

func redefinedError(t *lexer.Token, kind, label string) *exptfile.Error {
	return exptfile.FormatErrorPos(t, RedefinedError, "%s %q already defined", kind, label)
}

func fileKindName(filetype string) string {
	if filetype == BuildFiletype {
		return "a build"
	}
	return "an experiment"
}
