package lexer

import (
	"strings"
)

// DumpLines renders tokenized lines in a bracketed debug format, one raw
// token per row.
func DumpLines(lines []Line) string {
	var b strings.Builder
	b.WriteString("[\n")
	for _, line := range lines {
		for _, raw := range line.Raw {
			b.WriteString("['")
			b.WriteString(raw.Text)
			b.WriteString("'],\n")
		}
	}
	b.WriteString("]\n")
	return b.String()
}

// DumpTokens renders lexed tokens in a bracketed debug format, one
// lexeme/text pair per row.
func DumpTokens(tokens []Token) string {
	var b strings.Builder
	b.WriteString("[\n")
	for i := range tokens {
		b.WriteString("['")
		b.WriteString(tokens[i].Lexeme().String())
		b.WriteString("', '")
		if tokens[i].IsNewLine() {
			b.WriteString(`\n`)
		} else {
			b.WriteString(tokens[i].Text())
		}
		b.WriteString("'],\n")
	}
	b.WriteString("]\n")
	return b.String()
}
