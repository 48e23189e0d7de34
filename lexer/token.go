package lexer

import (
	"github.com/cbmkit/exptfile/source"
)

// Token is a classified raw token with its source position.
type Token struct {
	lexeme    Lexeme
	text      string
	source    *source.Source
	line, col int
}

func (t *Token) Lexeme() Lexeme {
	return t.lexeme
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	}
	return t.source.Name()
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

// IsNewLine reports whether t is a synthetic end-of-line token.
func (t *Token) IsNewLine() bool {
	return t.lexeme == NewLine
}

// SourcePos is used to attach position information to a new token;
// source.Pos implements this interface.
type SourcePos interface {
	Source() *source.Source
	Line() int
	Col() int
}

// NewToken creates new Token. sp may be nil for synthetic tokens with no
// source position.
func NewToken(lexeme Lexeme, text string, sp SourcePos) Token {
	if sp == nil {
		return Token{lexeme: lexeme, text: text}
	}
	return Token{lexeme, text, sp.Source(), sp.Line(), sp.Col()}
}

// NewLineToken creates the synthetic end-of-line token placed after the
// tokens of each source line.
func NewLineToken(sp SourcePos) Token {
	return NewToken(NewLine, "\n", sp)
}
