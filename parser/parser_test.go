package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbmkit/exptfile"
	"github.com/cbmkit/exptfile/doc"
)

func checkErrorCode(t *testing.T, samples []string, code int) {
	t.Helper()
	for index, src := range samples {
		_, e := ExperimentBytes("string", []byte(src))
		require.Error(t, e, "input #%d", index)
		pe, is := e.(*exptfile.Error)
		require.True(t, is, "input #%d: expected *exptfile.Error, got %v", index, e)
		assert.Equal(t, code, pe.Code, "input #%d: %s", index, pe.Message)
	}
}

func TestUnexpectedEof(t *testing.T) {
	samples := []string{
		"",
		"// comment only\n",
		"begin",
		"begin filetype run\n",
		"begin filetype run\nbegin section mf_input\nend\n",
		"begin filetype run\nbegin section trial_def\ndef trial t1\nend\n",
	}
	checkErrorCode(t, samples, UnexpectedEofError)
}

func TestUnknownTokenBeforeHeader(t *testing.T) {
	samples := []string{
		"$$$\nbegin filetype run\nend\n",
		"stray words first\nbegin filetype run\nend\n",
	}
	checkErrorCode(t, samples, UnknownTokenError)
}

func TestUnknownTokenInSection(t *testing.T) {
	samples := []string{
		"begin filetype run\nbegin section mf_input\n$$$\nend\nend\n",
		"begin filetype run\nbegin section trial_def\ndef block b1\nt1 2 $$$\nend\nend\nend\n",
	}
	checkErrorCode(t, samples, UnknownTokenError)
}

func TestNoFiletype(t *testing.T) {
	samples := []string{
		"begin section mf_input\nend\n",
	}
	checkErrorCode(t, samples, NoFiletypeError)
}

func TestWrongFiletype(t *testing.T) {
	samples := []string{
		"begin filetype build\nend\n",
	}
	checkErrorCode(t, samples, WrongFiletypeError)

	_, e := BuildBytes("string", []byte("begin filetype run\nend\n"))
	require.Error(t, e)
	assert.Equal(t, WrongFiletypeError, e.(*exptfile.Error).Code)
}

func TestBadRegion(t *testing.T) {
	samples := []string{
		"begin\nfiletype run\nend\n",
		"begin foo run\nend\n",
		"begin filetype custom\nend\n",
		"begin filetype run\nbegin section custom_region\nend\nend\n",
		"begin filetype run\nbegin mf_input\nend\nend\n",
	}
	checkErrorCode(t, samples, BadRegionError)
}

func TestBadDef(t *testing.T) {
	samples := []string{
		"begin filetype run\nbegin section trial_def\ndef bogus t1\nend\nend\nend\n",
		"begin filetype run\nbegin section trial_def\ndef trial 5\nend\nend\nend\n",
	}
	checkErrorCode(t, samples, BadDefError)
}

func TestBadVariable(t *testing.T) {
	samples := []string{
		// identifier without a value in a section
		"begin filetype run\nbegin section mf_input\nint use_cs\nend\nend\n",
		// two type names in a row inside a trial def
		"begin filetype run\nbegin section trial_def\ndef trial t1\nint use_cs int use_us 1\nend\nend\nend\n",
		// identifier with no preceding type name inside a trial def
		"begin filetype run\nbegin section trial_def\ndef trial t1\nuse_cs 1\nend\nend\nend\n",
	}
	checkErrorCode(t, samples, BadVariableError)
}

func TestMisplacedValue(t *testing.T) {
	samples := []string{
		// value with no pending identifier in a block def
		"begin filetype run\nbegin section trial_def\ndef block b1\n5\nend\nend\nend\n",
		// two values after one identifier
		"begin filetype run\nbegin section trial_def\ndef block b1\nt1 2 3\nend\nend\nend\n",
		// value with no identifier in a trial def
		"begin filetype run\nbegin section trial_def\ndef trial t1\nint 5 1\nend\nend\nend\n",
	}
	checkErrorCode(t, samples, MisplacedValueError)
}

func TestRedefined(t *testing.T) {
	samples := []string{
		"begin filetype run\nbegin section trial_def\ndef trial t1\nend\ndef trial t1\nend\nend\nend\n",
		"begin filetype run\nbegin section trial_def\ndef block b1\nend\ndef block b1\nend\nend\nend\n",
		"begin filetype run\nbegin section trial_def\ndef session s1\nend\ndef session s1\nend\nend\nend\n",
	}
	checkErrorCode(t, samples, RedefinedError)
}

func TestParseExperimentFile(t *testing.T) {
	document, e := ExperimentFile("testdata/expt.run")
	require.NoError(t, e)

	mfInput, has := document.Sections["mf_input"]
	require.True(t, has)
	assert.Len(t, mfInput.Params, 5)
	assert.Equal(t, doc.Variable{TypeName: "float", Identifier: "bg_freq_max", Value: "10.0"},
		mfInput.Params["bg_freq_max"])

	trialSpec, has := document.Sections["trial_spec"]
	require.True(t, has)
	assert.Equal(t, "400", trialSpec.Params["ms_pre_cs"].Value)

	activity, has := document.Sections["activity"]
	require.True(t, has)
	assert.Equal(t, "int", activity.Params["num_cells"].TypeName)

	h := document.Hierarchy
	require.Len(t, h.TrialMap, 2)
	paired := h.TrialMap["paired"]
	require.Len(t, paired, 8)
	assert.Equal(t, "880", paired["us_onset"].Value)
	assert.Equal(t, "100.0", paired["cs_percent"].Value)

	assert.Equal(t, []doc.Pair{{Label: "paired", Count: "9"}, {Label: "cs_alone", Count: "1"}},
		h.BlockMap["acq_block"])
	assert.Equal(t, []doc.Pair{{Label: "acq_block", Count: "5"}}, h.SessionMap["acquisition"])
	assert.Equal(t, []doc.Pair{{Label: "cs_alone", Count: "20"}}, h.SessionMap["extinction"])
	assert.Equal(t, []doc.Pair{{Label: "acquisition", Count: "2"}, {Label: "extinction", Count: "1"}},
		h.Experiment)
}

func TestParseBuildFile(t *testing.T) {
	document, e := BuildFile("testdata/sim.bld")
	require.NoError(t, e)

	require.Len(t, document.Sections, 2)
	assert.Equal(t, "1048576", document.Sections["connectivity"].Params["num_gr"].Value)
	assert.Equal(t, "0.5", document.Sections["activity"].Params["gr_thresh_base"].Value)
}

func TestDefaultCountMidList(t *testing.T) {
	document, e := ExperimentBytes("string", []byte(
		"begin filetype run\n"+
			"begin section trial_def\n"+
			"def block b1\n"+
			"t1\n"+
			"t2 3\n"+
			"t3\n"+
			"end\n"+
			"end\nend\n"))
	require.NoError(t, e)
	assert.Equal(t, []doc.Pair{{Label: "t1", Count: "1"}, {Label: "t2", Count: "3"}, {Label: "t3", Count: "1"}},
		document.Hierarchy.BlockMap["b1"])
}

func TestValueOnNextLine(t *testing.T) {
	document, e := ExperimentBytes("string", []byte(
		"begin filetype run\n"+
			"begin section trial_def\n"+
			"def trial t1\n"+
			"int use_cs\n"+
			"1\n"+
			"end\n"+
			"def block b1\n"+
			"t1\n"+
			"4\n"+
			"end\n"+
			"end\nend\n"))
	require.NoError(t, e)
	assert.Equal(t, "1", document.Hierarchy.TrialMap["t1"]["use_cs"].Value)
	assert.Equal(t, []doc.Pair{{Label: "t1", Count: "4"}}, document.Hierarchy.BlockMap["b1"])
}

func TestMultipleExperimentDefsAppend(t *testing.T) {
	document, e := ExperimentBytes("string", []byte(
		"begin filetype run\n"+
			"begin section trial_def\n"+
			"def experiment first\nt1 2\nend\n"+
			"def experiment second\nt2\nend\n"+
			"end\nend\n"))
	require.NoError(t, e)
	assert.Equal(t, []doc.Pair{{Label: "t1", Count: "2"}, {Label: "t2", Count: "1"}},
		document.Hierarchy.Experiment)
}

func TestFiletypeSniff(t *testing.T) {
	s, e := readFile("testdata/expt.run")
	require.NoError(t, e)
	ft, e := Filetype(s)
	require.NoError(t, e)
	assert.Equal(t, RunFiletype, ft)

	s, e = readFile("testdata/sim.bld")
	require.NoError(t, e)
	ft, e = Filetype(s)
	require.NoError(t, e)
	assert.Equal(t, BuildFiletype, ft)
}

func TestMissingFileError(t *testing.T) {
	_, e := ExperimentFile("testdata/no_such.run")
	require.Error(t, e)
	assert.Equal(t, exptfile.IoErrors, e.(*exptfile.Error).Code)
}
