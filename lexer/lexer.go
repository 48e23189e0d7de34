// Package lexer splits source files into lines of whitespace-delimited raw
// tokens and classifies each token into a lexeme.
package lexer

import (
	"os"
	"regexp"

	"github.com/cbmkit/exptfile"
	"github.com/cbmkit/exptfile/source"
)

// Error codes used by lexer:
const (
	// FileError indicates that a source file cannot be read.
	FileError = exptfile.IoErrors + iota
)

// Raw is a single whitespace-delimited token with its source position.
type Raw struct {
	Text string
	Pos  source.Pos
}

// Line is one non-blank source line split into raw tokens.
// End is the position just past the last token, used for the synthetic
// end-of-line token.
type Line struct {
	Raw []Raw
	End source.Pos
}

// keywords maps exact token text to its lexeme. Checked before the
// identifier and value patterns so that keywords never classify as
// identifiers.
var keywords = map[string]Lexeme{
	"begin":        BeginMarker,
	"end":          EndMarker,
	"filetype":     Region,
	"section":      Region,
	"build":        RegionType,
	"run":          RegionType,
	"connectivity": RegionType,
	"activity":     RegionType,
	"trial_def":    RegionType,
	"mf_input":     RegionType,
	"trial_spec":   RegionType,
	"int":          TypeName,
	"float":        TypeName,
	"def":          Def,
	"trial":        DefType,
	"block":        DefType,
	"session":      DefType,
	"experiment":   DefType,
	"//":           SingleComment,
	"/*":           DoubleCommentBegin,
	"*/":           DoubleCommentEnd,
}

var (
	varIdRe  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	varValRe = regexp.MustCompile(`^[+-]?([0-9]*[.])?[0-9]*([eE][+-]?[0-9]+)?$`)
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// Tokenize splits a source into lines of whitespace-delimited raw tokens.
// Blank lines are dropped entirely.
func Tokenize(s *source.Source) []Line {
	content := s.Content()
	lines := make([]Line, 0)
	lineStart := 0
	for lineStart <= len(content) {
		lineEnd := lineStart
		for lineEnd < len(content) && content[lineEnd] != '\n' {
			lineEnd++
		}

		var raw []Raw
		i := lineStart
		for i < lineEnd {
			for i < lineEnd && isSpace(content[i]) {
				i++
			}
			if i >= lineEnd {
				break
			}
			start := i
			for i < lineEnd && !isSpace(content[i]) {
				i++
			}
			raw = append(raw, Raw{string(content[start:i]), source.NewPos(s, start)})
		}
		if len(raw) > 0 {
			lines = append(lines, Line{raw, source.NewPos(s, lineEnd)})
		}

		lineStart = lineEnd + 1
	}
	return lines
}

// TokenizeFile reads and tokenizes a file. Returns a FileError and no
// partial result if the file cannot be read.
func TokenizeFile(path string) (*source.Source, []Line, error) {
	content, e := os.ReadFile(path)
	if e != nil {
		return nil, nil, exptfile.FormatError(FileError, "cannot read %s: %s", path, e.Error())
	}
	s := source.New(path, content)
	return s, Tokenize(s), nil
}

// Classify returns the lexeme for a single raw token: exact keyword lookup
// first, then the identifier pattern, then the numeric value pattern, else
// None.
func Classify(text string) Lexeme {
	lexeme, has := keywords[text]
	if has {
		return lexeme
	}
	if varIdRe.MatchString(text) {
		return VarIdentifier
	}
	if varValRe.MatchString(text) {
		return VarValue
	}
	return None
}

// Lex classifies every raw token of every line and appends one synthetic
// NewLine token after each line. Lexing never fails: unclassifiable tokens
// get lexeme None.
func Lex(lines []Line) []Token {
	tokens := make([]Token, 0, totalRaw(lines)+len(lines))
	for _, line := range lines {
		for _, raw := range line.Raw {
			tokens = append(tokens, NewToken(Classify(raw.Text), raw.Text, raw.Pos))
		}
		tokens = append(tokens, NewLineToken(line.End))
	}
	return tokens
}

func totalRaw(lines []Line) int {
	total := 0
	for _, line := range lines {
		total += len(line.Raw)
	}
	return total
}
