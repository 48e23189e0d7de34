package exptfile_test

import (
	"fmt"

	"github.com/cbmkit/exptfile/parser"
	"github.com/cbmkit/exptfile/trials"
)

func Example() {
	input := `
begin filetype run
	begin section trial_def
		def trial paired
			int use_cs 1
			int cs_onset 400
			int cs_len 500
			float cs_percent 100.0
			int use_us 1
			int us_onset 880
			int use_pfpc_plast 1
			int use_mfnc_plast 1
		end
		def block acq
			paired 4
		end
		def experiment expt
			acq 2
			paired
		end
	end
end
`
	document, e := parser.ExperimentBytes("example", []byte(input))
	if e != nil {
		fmt.Println(e)
		return
	}

	table, e := trials.Resolve(document.Hierarchy)
	if e != nil {
		fmt.Println(e)
		return
	}

	fmt.Println(table.NumTrials(), "trials")
	fmt.Println(table.Names[0], table.CSOnsets[0], table.USOnsets[0])
	// Output:
	// 9 trials
	// paired 400 880
}
