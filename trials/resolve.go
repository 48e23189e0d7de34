// Package trials resolves a parsed trial hierarchy into the flat per-trial
// table consumed by the simulation engine.
//
// Resolution happens in three steps: the string-keyed hierarchy maps are
// validated once into an index-based node tree (unknown labels, ambiguous
// labels, reference cycles, and bad repeat counts are reported here), the
// total trial count is computed, and finally the name array and the eight
// per-trial field arrays are filled in declaration order.
package trials

import (
	"strconv"

	"github.com/cbmkit/exptfile/doc"
)

// Required fields of every trial definition:
const (
	FieldUseCS        = "use_cs"
	FieldUsePFPCPlast = "use_pfpc_plast"
	FieldUseMFNCPlast = "use_mfnc_plast"
	FieldCSOnset      = "cs_onset"
	FieldCSLen        = "cs_len"
	FieldCSPercent    = "cs_percent"
	FieldUseUS        = "use_us"
	FieldUSOnset      = "us_onset"
)

type nodeKind int

const (
	nodeTrial nodeKind = iota
	nodeBlock
	nodeSession
)

type edge struct {
	node  int
	count int
}

type node struct {
	kind   nodeKind
	label  string
	edges  []edge
	fields doc.Trial
}

type arena struct {
	nodes     []node
	byLabel   map[string]int
	root      []edge
	subtotals []int
}

func (a *arena) index(label string) int {
	return a.byLabel[label]
}

// CountTrials computes the total trial count of a hierarchy: repetition
// counts multiply the entire subtree beneath them, sibling references add.
// The hierarchy is validated first; the same errors as Resolve apply.
func CountTrials(h *doc.TrialHierarchy) (int, error) {
	a, e := buildArena(h)
	if e != nil {
		return 0, e
	}
	return a.total(), nil
}

// Resolve expands a hierarchy into a flat trial table. Fails if a label
// resolves to no definition or more than one, if block/session references
// form a cycle, if a repeat count is not a non-negative integer, or if a
// referenced trial lacks one of the eight required fields.
func Resolve(h *doc.TrialHierarchy) (*Table, error) {
	a, e := buildArena(h)
	if e != nil {
		return nil, e
	}

	tbl := newTable(a.total())
	a.appendNames(tbl, a.root)

	for i, name := range tbl.Names {
		r := fieldReader{trial: a.nodes[a.index(name)].fields, name: name}
		tbl.UseCS[i] = r.u32(FieldUseCS)
		tbl.UsePFPCPlast[i] = r.u32(FieldUsePFPCPlast)
		tbl.UseMFNCPlast[i] = r.u32(FieldUseMFNCPlast)
		tbl.CSOnsets[i] = r.u32(FieldCSOnset)
		tbl.CSLens[i] = r.u32(FieldCSLen)
		tbl.CSPercents[i] = r.f32(FieldCSPercent)
		tbl.UseUS[i] = r.u32(FieldUseUS)
		tbl.USOnsets[i] = r.u32(FieldUSOnset)
		if r.err != nil {
			return nil, r.err
		}
	}
	return tbl, nil
}

func buildArena(h *doc.TrialHierarchy) (*arena, error) {
	a := &arena{}
	index := make(map[string]int)

	add := func(kind nodeKind, label string) error {
		if _, has := index[label]; has {
			return ambiguousLabelError(label)
		}
		index[label] = len(a.nodes)
		a.nodes = append(a.nodes, node{kind: kind, label: label})
		return nil
	}

	for label, fields := range h.TrialMap {
		if e := add(nodeTrial, label); e != nil {
			return nil, e
		}
		a.nodes[index[label]].fields = fields
	}
	for label := range h.BlockMap {
		if e := add(nodeBlock, label); e != nil {
			return nil, e
		}
	}
	for label := range h.SessionMap {
		if e := add(nodeSession, label); e != nil {
			return nil, e
		}
	}

	resolve := func(owner string, pairs []doc.Pair) ([]edge, error) {
		edges := make([]edge, 0, len(pairs))
		for _, p := range pairs {
			target, has := index[p.Label]
			if !has {
				return nil, unknownLabelError(owner, p.Label)
			}
			count, e := strconv.Atoi(p.Count)
			if e != nil || count < 0 {
				return nil, badCountError(owner, p.Label, p.Count)
			}
			edges = append(edges, edge{target, count})
		}
		return edges, nil
	}

	for label, pairs := range h.BlockMap {
		edges, e := resolve("block "+strconv.Quote(label), pairs)
		if e != nil {
			return nil, e
		}
		a.nodes[index[label]].edges = edges
	}
	for label, pairs := range h.SessionMap {
		edges, e := resolve("session "+strconv.Quote(label), pairs)
		if e != nil {
			return nil, e
		}
		a.nodes[index[label]].edges = edges
	}

	var e error
	a.root, e = resolve("experiment", h.Experiment)
	if e != nil {
		return nil, e
	}

	if e = a.findCycles(); e != nil {
		return nil, e
	}

	a.byLabel = index
	return a, nil
}

// findCycles runs a depth-first search over block/session references,
// reporting the first cycle found by its label path.
func (a *arena) findCycles() error {
	const (
		unvisited = 0
		onPath    = 1
		done      = 2
	)
	marks := make([]int, len(a.nodes))
	path := make([]string, 0)

	var walk func(n int) error
	walk = func(n int) error {
		switch marks[n] {
		case done:
			return nil
		case onPath:
			return cycleError(append(path, a.nodes[n].label))
		}

		marks[n] = onPath
		path = append(path, a.nodes[n].label)
		for _, e := range a.nodes[n].edges {
			if err := walk(e.node); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		marks[n] = done
		return nil
	}

	for n := range a.nodes {
		if e := walk(n); e != nil {
			return e
		}
	}
	return nil
}

// total computes the trial count: additive over siblings, multiplicative
// over nesting. Subtotals are memoized per node; the tree is already known
// to be acyclic.
func (a *arena) total() int {
	a.subtotals = make([]int, len(a.nodes))
	for i := range a.subtotals {
		a.subtotals[i] = -1
	}
	return a.sum(a.root)
}

func (a *arena) sum(edges []edge) int {
	total := 0
	for _, e := range edges {
		total += e.count * a.subtotal(e.node)
	}
	return total
}

func (a *arena) subtotal(n int) int {
	if a.nodes[n].kind == nodeTrial {
		return 1
	}
	if a.subtotals[n] < 0 {
		a.subtotals[n] = a.sum(a.nodes[n].edges)
	}
	return a.subtotals[n]
}

// appendNames walks the tree depth-first in declaration order, writing
// count consecutive copies of each reached trial's label.
func (a *arena) appendNames(tbl *Table, edges []edge) {
	for _, e := range edges {
		n := &a.nodes[e.node]
		for i := 0; i < e.count; i++ {
			if n.kind == nodeTrial {
				tbl.Names = append(tbl.Names, n.label)
			} else {
				a.appendNames(tbl, n.edges)
			}
		}
	}
}

// fieldReader extracts and converts required trial fields, keeping the
// first error.
type fieldReader struct {
	trial doc.Trial
	name  string
	err   error
}

func (r *fieldReader) lookup(field string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, has := r.trial[field]
	if !has {
		r.err = missingFieldError(r.name, field)
		return "", false
	}
	return v.Value, true
}

func (r *fieldReader) u32(field string) uint32 {
	value, ok := r.lookup(field)
	if !ok {
		return 0
	}
	res, e := strconv.ParseUint(value, 10, 32)
	if e != nil {
		r.err = badFieldError(r.name, field, value)
		return 0
	}
	return uint32(res)
}

func (r *fieldReader) f32(field string) float32 {
	value, ok := r.lookup(field)
	if !ok {
		return 0
	}
	res, e := strconv.ParseFloat(value, 32)
	if e != nil {
		r.err = badFieldError(r.name, field, value)
		return 0
	}
	return float32(res)
}
