// Package doc defines structures holding parsed experiment and build
// documents. All structures are plain data, immutable once parsing
// completes, and owned by the caller.
package doc

// Variable is a single typed key/value declaration:
// "<type> <identifier> <value>".
type Variable struct {
	TypeName   string
	Identifier string
	Value      string
}

// VariableSection holds the variables of one leaf region, keyed by
// identifier.
type VariableSection struct {
	Params map[string]Variable
}

// Pair is a hierarchy reference: Label names a trial, block, or session,
// Count is its repetition count. Count defaults to "1" when omitted in the
// source.
type Pair struct {
	Label string
	Count string
}

// Trial holds the concrete parameters of one trial definition, keyed by
// field name.
type Trial map[string]Variable

// TrialHierarchy is the parsed trial_def region: labeled trials, blocks,
// and sessions, plus the experiment reference list at the root.
// Every label referenced by a Pair must resolve to exactly one of
// TrialMap, BlockMap, or SessionMap; the trials package validates this.
type TrialHierarchy struct {
	TrialMap   map[string]Trial
	BlockMap   map[string][]Pair
	SessionMap map[string][]Pair
	Experiment []Pair
}

// NewTrialHierarchy creates an empty hierarchy with allocated maps.
func NewTrialHierarchy() *TrialHierarchy {
	return &TrialHierarchy{
		TrialMap:   make(map[string]Trial),
		BlockMap:   make(map[string][]Pair),
		SessionMap: make(map[string][]Pair),
		Experiment: make([]Pair, 0),
	}
}

// Experiment is a parsed experiment (filetype "run") document.
type Experiment struct {
	// Sections holds variable sections keyed by region type
	// (mf_input, activity, trial_spec).
	Sections map[string]VariableSection

	// Hierarchy is the parsed trial_def region.
	Hierarchy *TrialHierarchy
}

// Build is a parsed build (filetype "build") document.
type Build struct {
	// Sections holds variable sections keyed by region type
	// (connectivity, activity).
	Sections map[string]VariableSection
}
