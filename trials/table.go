package trials

import (
	"fmt"
	"strings"
)

// Table is the flat, per-trial output consumed by the simulation engine:
// one name plus eight parallel typed fields per trial, in deterministic
// declared order. A Table is allocated once the trial count is known,
// filled once, and never mutated afterwards.
type Table struct {
	Names        []string
	UseCS        []uint32
	UsePFPCPlast []uint32
	UseMFNCPlast []uint32
	CSOnsets     []uint32
	CSLens       []uint32
	CSPercents   []float32
	UseUS        []uint32
	USOnsets     []uint32
}

func newTable(numTrials int) *Table {
	return &Table{
		Names:        make([]string, 0, numTrials),
		UseCS:        make([]uint32, numTrials),
		UsePFPCPlast: make([]uint32, numTrials),
		UseMFNCPlast: make([]uint32, numTrials),
		CSOnsets:     make([]uint32, numTrials),
		CSLens:       make([]uint32, numTrials),
		CSPercents:   make([]float32, numTrials),
		UseUS:        make([]uint32, numTrials),
		USOnsets:     make([]uint32, numTrials),
	}
}

// NumTrials returns the number of resolved trials.
func (t *Table) NumTrials() int {
	return len(t.Names)
}

// String renders the table in a columnar debug format, one trial per row.
func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-16s %7s %11s %11s %9s %7s %11s %7s %9s\n",
		"trial", "name", "use_cs", "pfpc_plast", "mfnc_plast", "cs_onset", "cs_len", "cs_percent", "use_us", "us_onset")
	for i, name := range t.Names {
		fmt.Fprintf(&b, "%-8d %-16s %7d %11d %11d %9d %7d %11g %7d %9d\n",
			i, name, t.UseCS[i], t.UsePFPCPlast[i], t.UseMFNCPlast[i],
			t.CSOnsets[i], t.CSLens[i], t.CSPercents[i], t.UseUS[i], t.USOnsets[i])
	}
	return b.String()
}
