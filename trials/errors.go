package trials

import (
	"strings"

	"github.com/cbmkit/exptfile"
)

// Error codes used by trials:
const (
	UnknownLabelError = exptfile.ResolveErrors + iota
	AmbiguousLabelError
	CycleError
	BadCountError
	MissingFieldError
	BadFieldError
)

func unknownLabelError(owner, label string) *exptfile.Error {
	return exptfile.FormatError(UnknownLabelError, "%s references %q, which is not a defined trial, block, or session", owner, label)
}

func ambiguousLabelError(label string) *exptfile.Error {
	return exptfile.FormatError(AmbiguousLabelError, "label %q is defined more than once across trials, blocks, and sessions", label)
}

func cycleError(labels []string) *exptfile.Error {
	return exptfile.FormatError(CycleError, "reference cycle: "+strings.Join(labels, " -> "))
}

func badCountError(owner, label, count string) *exptfile.Error {
	return exptfile.FormatError(BadCountError, "%s repeats %q a non-numeric count %q of times", owner, label, count)
}

func missingFieldError(trial, field string) *exptfile.Error {
	return exptfile.FormatError(MissingFieldError, "trial %q is missing required field %q", trial, field)
}

func badFieldError(trial, field, value string) *exptfile.Error {
	return exptfile.FormatError(BadFieldError, "trial %q field %q has unusable value %q", trial, field, value)
}
