// Package parser converts lexed experiment and build files to documents
// using recursive descent over begin/end regions.
package parser

import (
	"github.com/cbmkit/exptfile/doc"
	"github.com/cbmkit/exptfile/lexer"
	"github.com/cbmkit/exptfile/source"
)

// Filetype keywords of the two document kinds:
const (
	RunFiletype   = "run"
	BuildFiletype = "build"
)

// regionKind is the closed set of region behaviors; dispatch is by kind,
// not by comparing region type strings at every site.
type regionKind int

const (
	// regionContainer regions hold nested begin/end regions.
	regionContainer regionKind = iota

	// regionVarSection regions hold flat <type> <identifier> <value> entries.
	regionVarSection

	// regionTrialDef regions hold def blocks.
	regionTrialDef
)

// Leaf region types differ between the two document kinds; anything not
// listed is a container.
var (
	exptRegionKinds = map[string]regionKind{
		"mf_input":   regionVarSection,
		"activity":   regionVarSection,
		"trial_spec": regionVarSection,
		"trial_def":  regionTrialDef,
	}
	buildRegionKinds = map[string]regionKind{
		"connectivity": regionVarSection,
		"activity":     regionVarSection,
	}
)

type defKind int

const (
	defTrial defKind = iota
	defBlock
	defSession
	defExperiment
)

var defKinds = map[string]defKind{
	"trial":      defTrial,
	"block":      defBlock,
	"session":    defSession,
	"experiment": defExperiment,
}

// Experiment parses an experiment (filetype "run") document.
func Experiment(s *source.Source) (*doc.Experiment, error) {
	c := newParseContext(s, exptRegionKinds, true)
	e := c.parse(RunFiletype)
	if e != nil {
		return nil, e
	}
	return &doc.Experiment{Sections: c.sections, Hierarchy: c.hier}, nil
}

// ExperimentBytes parses an experiment document from a byte buffer.
func ExperimentBytes(name string, content []byte) (*doc.Experiment, error) {
	return Experiment(source.New(name, content))
}

// ExperimentFile reads and parses an experiment file.
func ExperimentFile(path string) (*doc.Experiment, error) {
	s, e := readFile(path)
	if e != nil {
		return nil, e
	}
	return Experiment(s)
}

// Build parses a build (filetype "build") document.
func Build(s *source.Source) (*doc.Build, error) {
	c := newParseContext(s, buildRegionKinds, false)
	e := c.parse(BuildFiletype)
	if e != nil {
		return nil, e
	}
	return &doc.Build{Sections: c.sections}, nil
}

// BuildBytes parses a build document from a byte buffer.
func BuildBytes(name string, content []byte) (*doc.Build, error) {
	return Build(source.New(name, content))
}

// BuildFile reads and parses a build file.
func BuildFile(path string) (*doc.Build, error) {
	s, e := readFile(path)
	if e != nil {
		return nil, e
	}
	return Build(s)
}

// Filetype reads the filetype header of a document without parsing the
// rest, returning RunFiletype or BuildFiletype.
func Filetype(s *source.Source) (string, error) {
	c := newParseContext(s, nil, false)
	t, e := c.parseHeaderRegion()
	if e != nil {
		return "", e
	}
	return t.Text(), nil
}

func readFile(path string) (*source.Source, error) {
	s, _, e := lexer.TokenizeFile(path)
	return s, e
}

type parseContext struct {
	srcName  string
	tokens   []lexer.Token
	pos      int
	kinds    map[string]regionKind
	sections map[string]doc.VariableSection
	hier     *doc.TrialHierarchy
}

func newParseContext(s *source.Source, kinds map[string]regionKind, withHierarchy bool) *parseContext {
	c := &parseContext{
		srcName:  s.Name(),
		tokens:   lexer.Lex(lexer.Tokenize(s)),
		kinds:    kinds,
		sections: make(map[string]doc.VariableSection),
	}
	if withHierarchy {
		c.hier = doc.NewTrialHierarchy()
	}
	return c
}

func (c *parseContext) cur() *lexer.Token {
	if c.pos >= len(c.tokens) {
		return nil
	}
	return &c.tokens[c.pos]
}

func (c *parseContext) peek(n int) *lexer.Token {
	if c.pos+n >= len(c.tokens) {
		return nil
	}
	return &c.tokens[c.pos+n]
}

func (c *parseContext) advance(n int) {
	c.pos += n
}

// skipLine advances past the next NewLine token. Used to drop the tail of
// a line after a single-line comment marker.
func (c *parseContext) skipLine() {
	for t := c.cur(); t != nil && !t.IsNewLine(); t = c.cur() {
		c.advance(1)
	}
	if c.cur() != nil {
		c.advance(1)
	}
}

func (c *parseContext) parse(filetype string) error {
	t, e := c.parseHeaderRegion()
	if e != nil {
		return e
	}
	if t.Text() != filetype {
		return wrongFiletypeError(t, filetype)
	}
	return c.parseContainer()
}

// parseHeaderRegion scans to the first begin marker, checks the
// "begin filetype <type>" header, and leaves the cursor just past the
// region type token. Only comments and blank lines may precede the header.
func (c *parseContext) parseHeaderRegion() (*lexer.Token, error) {
	for {
		t := c.cur()
		if t == nil {
			return nil, eofError(c.srcName)
		}
		if t.Lexeme() == lexer.BeginMarker {
			break
		}

		switch t.Lexeme() {
		case lexer.SingleComment:
			c.skipLine()
		case lexer.NewLine:
			c.advance(1)
		default:
			return nil, unknownTokenError(t)
		}
	}

	region, regionType := c.peek(1), c.peek(2)
	if region == nil || regionType == nil {
		return nil, eofError(c.srcName)
	}
	if region.Lexeme() != lexer.Region {
		return nil, badRegionError(region)
	}
	if region.Text() != "filetype" {
		return nil, noFiletypeError(region)
	}
	if regionType.Lexeme() != lexer.RegionType {
		return nil, badRegionError(regionType)
	}

	c.advance(3)
	return regionType, nil
}

// parseContainer consumes region content up to the matching end marker,
// dispatching every nested "begin <region> <region-type>" by region kind.
func (c *parseContext) parseContainer() error {
	for {
		t := c.cur()
		if t == nil {
			return eofError(c.srcName)
		}

		switch t.Lexeme() {
		case lexer.EndMarker:
			c.advance(1)
			return nil

		case lexer.BeginMarker:
			region, regionType := c.peek(1), c.peek(2)
			if region == nil || regionType == nil {
				return eofError(c.srcName)
			}
			if region.Lexeme() != lexer.Region || regionType.Lexeme() != lexer.RegionType {
				return badRegionError(t)
			}
			c.advance(3)

			var e error
			switch c.kinds[regionType.Text()] {
			case regionVarSection:
				e = c.parseVarSection(regionType.Text())
			case regionTrialDef:
				e = c.parseDefs()
			case regionContainer:
				e = c.parseContainer()
			}
			if e != nil {
				return e
			}

		case lexer.SingleComment:
			c.skipLine()

		case lexer.NewLine:
			c.advance(1)

		default:
			return unexpectedTokenError(t)
		}
	}
}

// parseVarSection consumes <type> <identifier> <value> triples up to the
// end marker and records the section under regionType.
func (c *parseContext) parseVarSection(regionType string) error {
	section := doc.VariableSection{Params: make(map[string]doc.Variable)}
	for {
		t := c.cur()
		if t == nil {
			return eofError(c.srcName)
		}

		switch t.Lexeme() {
		case lexer.EndMarker:
			c.advance(1)
			c.sections[regionType] = section
			return nil

		case lexer.TypeName:
			id, val := c.peek(1), c.peek(2)
			if id == nil || val == nil {
				return eofError(c.srcName)
			}
			if id.Lexeme() != lexer.VarIdentifier || val.Lexeme() != lexer.VarValue {
				return badVariableError(t)
			}
			section.Params[id.Text()] = doc.Variable{
				TypeName:   t.Text(),
				Identifier: id.Text(),
				Value:      val.Text(),
			}
			c.advance(3)

		case lexer.SingleComment:
			c.skipLine()

		case lexer.NewLine:
			c.advance(1)

		case lexer.None:
			return unknownTokenError(t)

		default:
			return unexpectedTokenError(t)
		}
	}
}

// parseDefs consumes "def <kind> <label> ... end" blocks up to the end
// marker of the trial_def region.
func (c *parseContext) parseDefs() error {
	for {
		t := c.cur()
		if t == nil {
			return eofError(c.srcName)
		}

		switch t.Lexeme() {
		case lexer.EndMarker:
			c.advance(1)
			return nil

		case lexer.Def:
			kindTok, labelTok := c.peek(1), c.peek(2)
			if kindTok == nil || labelTok == nil {
				return eofError(c.srcName)
			}
			if kindTok.Lexeme() != lexer.DefType || labelTok.Lexeme() != lexer.VarIdentifier {
				return badDefError(t)
			}
			c.advance(3)

			kind := defKinds[kindTok.Text()]
			var e error
			if kind == defTrial {
				e = c.parseTrialDef(labelTok)
			} else {
				e = c.parsePairDef(kind, labelTok)
			}
			if e != nil {
				return e
			}

		case lexer.SingleComment:
			c.skipLine()

		case lexer.NewLine:
			c.advance(1)

		case lexer.None:
			return unknownTokenError(t)

		default:
			return unexpectedTokenError(t)
		}
	}
}

// parseTrialDef consumes <type> <identifier> <value> triples up to the end
// marker. A value may sit on the line after its identifier; anything else
// out of order is reported.
func (c *parseContext) parseTrialDef(labelTok *lexer.Token) error {
	label := labelTok.Text()
	_, has := c.hier.TrialMap[label]
	if has {
		return redefinedError(labelTok, "trial", label)
	}

	vars := make(doc.Trial)
	var pending doc.Variable
	prevLex := lexer.NewLine
	for {
		t := c.cur()
		if t == nil {
			return eofError(c.srcName)
		}

		switch t.Lexeme() {
		case lexer.EndMarker:
			if pending.Identifier != "" || pending.TypeName != "" {
				return badVariableError(t)
			}
			c.advance(1)
			c.hier.TrialMap[label] = vars
			return nil

		case lexer.TypeName:
			if pending.Identifier != "" || pending.TypeName != "" {
				return badVariableError(t)
			}
			pending = doc.Variable{TypeName: t.Text()}
			c.advance(1)

		case lexer.VarIdentifier:
			if prevLex != lexer.TypeName {
				return badVariableError(t)
			}
			pending.Identifier = t.Text()
			c.advance(1)

		case lexer.VarValue:
			if pending.Identifier == "" || (prevLex != lexer.VarIdentifier && prevLex != lexer.NewLine) {
				return misplacedValueError(t)
			}
			pending.Value = t.Text()
			vars[pending.Identifier] = pending
			pending = doc.Variable{}
			c.advance(1)

		case lexer.SingleComment:
			c.skipLine()
			prevLex = lexer.NewLine
			continue

		case lexer.NewLine:
			c.advance(1)

		case lexer.None:
			return unknownTokenError(t)

		default:
			return unexpectedTokenError(t)
		}
		prevLex = t.Lexeme()
	}
}

// parsePairDef consumes <identifier> [<count>] pairs up to the end marker.
// A missing count defaults to "1"; the default is carried as local pending
// state, the token slice is never touched.
func (c *parseContext) parsePairDef(kind defKind, labelTok *lexer.Token) error {
	label := labelTok.Text()
	switch kind {
	case defBlock:
		if _, has := c.hier.BlockMap[label]; has {
			return redefinedError(labelTok, "block", label)
		}
	case defSession:
		if _, has := c.hier.SessionMap[label]; has {
			return redefinedError(labelTok, "session", label)
		}
	}

	pairs := make([]doc.Pair, 0)
	pending := ""
	prevLex := lexer.NewLine
	for {
		t := c.cur()
		if t == nil {
			return eofError(c.srcName)
		}

		switch t.Lexeme() {
		case lexer.EndMarker:
			if pending != "" {
				pairs = append(pairs, doc.Pair{Label: pending, Count: "1"})
			}
			c.advance(1)
			switch kind {
			case defBlock:
				c.hier.BlockMap[label] = pairs
			case defSession:
				c.hier.SessionMap[label] = pairs
			case defExperiment:
				c.hier.Experiment = append(c.hier.Experiment, pairs...)
			}
			return nil

		case lexer.VarIdentifier:
			if pending != "" {
				pairs = append(pairs, doc.Pair{Label: pending, Count: "1"})
			}
			pending = t.Text()
			c.advance(1)

		case lexer.VarValue:
			if pending == "" || (prevLex != lexer.VarIdentifier && prevLex != lexer.NewLine) {
				return misplacedValueError(t)
			}
			pairs = append(pairs, doc.Pair{Label: pending, Count: t.Text()})
			pending = ""
			c.advance(1)

		case lexer.SingleComment:
			c.skipLine()
			prevLex = lexer.NewLine
			continue

		case lexer.NewLine:
			c.advance(1)

		case lexer.None:
			return unknownTokenError(t)

		default:
			return unexpectedTokenError(t)
		}
		prevLex = t.Lexeme()
	}
}
