package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbmkit/exptfile"
	"github.com/cbmkit/exptfile/source"
)

func lexString(content string) []Token {
	return Lex(Tokenize(source.New("string", []byte(content))))
}

func TestClassifyKeywords(t *testing.T) {
	samples := map[string]Lexeme{
		"begin":        BeginMarker,
		"end":          EndMarker,
		"filetype":     Region,
		"section":      Region,
		"run":          RegionType,
		"build":        RegionType,
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
	for text, lexeme := range samples {
		assert.Equal(t, lexeme, Classify(text), "token %q", text)
	}
}

func TestClassifyPatterns(t *testing.T) {
	samples := map[string]Lexeme{
		"use_cs":     VarIdentifier,
		"_x":         VarIdentifier,
		"cs_onset2":  VarIdentifier,
		"beginning":  VarIdentifier, // keyword prefix must not misclassify
		"1":          VarValue,
		"400":        VarValue,
		"-3":         VarValue,
		"+12":        VarValue,
		"0.5":        VarValue,
		".5":         VarValue,
		"1.":         VarValue,
		"1.5e-2":     VarValue,
		"1e6":        VarValue,
		"3foo":       None,
		"fo$o":       None,
		"1.2.3":      None,
		"/**/":       None,
		"e5":         VarIdentifier, // letter first, identifier wins
	}
	for text, lexeme := range samples {
		assert.Equal(t, lexeme, Classify(text), "token %q", text)
	}
}

func TestTokenizeDropsBlankLines(t *testing.T) {
	src := source.New("string", []byte("begin\n\n   \n\t\nend\n"))
	lines := Tokenize(src)
	require.Len(t, lines, 2)
	assert.Equal(t, "begin", lines[0].Raw[0].Text)
	assert.Equal(t, "end", lines[1].Raw[0].Text)
}

func TestTokenizeSplitsOnWhitespace(t *testing.T) {
	src := source.New("string", []byte("int  use_cs\t1\r\n"))
	lines := Tokenize(src)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Raw, 3)
	assert.Equal(t, "int", lines[0].Raw[0].Text)
	assert.Equal(t, "use_cs", lines[0].Raw[1].Text)
	assert.Equal(t, "1", lines[0].Raw[2].Text)
}

func TestLexAppendsNewLineSentinels(t *testing.T) {
	tokens := lexString("begin filetype run\nend\n")
	require.Len(t, tokens, 6)
	assert.True(t, tokens[3].IsNewLine())
	assert.True(t, tokens[5].IsNewLine())
	assert.Equal(t, EndMarker, tokens[4].Lexeme())
}

func TestLexNoTrailingNewlineCharacter(t *testing.T) {
	// a file without a final newline still gets its sentinel
	tokens := lexString("end")
	require.Len(t, tokens, 2)
	assert.Equal(t, EndMarker, tokens[0].Lexeme())
	assert.True(t, tokens[1].IsNewLine())
}

func TestRoundTrip(t *testing.T) {
	content := `
begin filetype run
	begin section mf_input
		float bg_freq_min 10.0 // noise floor
	end
end
`
	var texts []string
	for _, tok := range lexString(content) {
		if !tok.IsNewLine() {
			texts = append(texts, tok.Text())
		}
	}
	assert.Equal(t, strings.Fields(content), texts)
}

func TestTokenPositions(t *testing.T) {
	tokens := lexString("begin filetype run\n\tint use_cs 1\n")
	require.True(t, len(tokens) >= 6)

	assert.Equal(t, 1, tokens[0].Line())
	assert.Equal(t, 1, tokens[0].Col())
	assert.Equal(t, 1, tokens[1].Line())
	assert.Equal(t, 7, tokens[1].Col())

	// tab counts as one column
	assert.Equal(t, 2, tokens[4].Line())
	assert.Equal(t, 2, tokens[4].Col())
	assert.Equal(t, "string", tokens[4].SourceName())
}

func TestTokenizeFileMissing(t *testing.T) {
	_, _, e := TokenizeFile("no/such/file.run")
	require.Error(t, e)
	pe, is := e.(*exptfile.Error)
	require.True(t, is)
	assert.Equal(t, FileError, pe.Code)
}

func TestDumpTokens(t *testing.T) {
	dump := DumpTokens(lexString("begin filetype run"))
	assert.Contains(t, dump, "['BEGIN_MARKER', 'begin'],")
	assert.Contains(t, dump, "['REGION', 'filetype'],")
	assert.Contains(t, dump, "['REGION_TYPE', 'run'],")
	assert.Contains(t, dump, `['NEW_LINE', '\n'],`)
}
