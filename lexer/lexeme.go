package lexer

// Lexeme classifies a raw token. The set is closed: the grammar has a fixed
// vocabulary of markers, keywords, and two variable token patterns.
type Lexeme int

const (
	// None marks a token matching no keyword and neither variable pattern.
	// Not an error at lex time; the parser decides what to do with it.
	None Lexeme = iota

	// BeginMarker and EndMarker delimit regions and definitions.
	BeginMarker
	EndMarker

	// Region is a region keyword ("filetype" or "section").
	Region

	// RegionType is one of the fixed region type keywords.
	RegionType

	// TypeName is a variable type keyword ("int" or "float").
	TypeName

	// VarIdentifier is a token matching the identifier pattern.
	VarIdentifier

	// VarValue is a token matching the numeric value pattern.
	VarValue

	// Def starts a definition, DefType names its kind.
	Def
	DefType

	// SingleComment starts a comment running to end of line.
	SingleComment

	// DoubleCommentBegin and DoubleCommentEnd are recognized but no parse
	// rule consumes them.
	DoubleCommentBegin
	DoubleCommentEnd

	// NewLine is the synthetic end-of-line token appended after every
	// source line. Comment skipping and definition defaults rely on it.
	NewLine
)

var lexemeNames = map[Lexeme]string{
	None:               "NONE",
	BeginMarker:        "BEGIN_MARKER",
	EndMarker:          "END_MARKER",
	Region:             "REGION",
	RegionType:         "REGION_TYPE",
	TypeName:           "TYPE_NAME",
	VarIdentifier:      "VAR_IDENTIFIER",
	VarValue:           "VAR_VALUE",
	Def:                "DEF",
	DefType:            "DEF_TYPE",
	SingleComment:      "SINGLE_COMMENT",
	DoubleCommentBegin: "DOUBLE_COMMENT_BEGIN",
	DoubleCommentEnd:   "DOUBLE_COMMENT_END",
	NewLine:            "NEW_LINE",
}

func (l Lexeme) String() string {
	name, has := lexemeNames[l]
	if !has {
		return "UNKNOWN"
	}
	return name
}
