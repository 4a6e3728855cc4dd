package model

import "time"

// Warning is a non-fatal condition found while processing a source.
type Warning string

const (
	// WarnNoContractName means neither contract declaration form matched.
	WarnNoContractName Warning = "no-contract-name"
	// WarnNoSymbols means no public variable or reachable function was found.
	WarnNoSymbols Warning = "no-symbols"
	// WarnUnrecognisedPragma means the solidity pragma is not a valid constraint.
	WarnUnrecognisedPragma Warning = "unrecognised-pragma"
)

// StubFailure records a symbol whose stub could not be written.
type StubFailure struct {
	Symbol string
	Target Path
	Err    error
}

// SymbolCounts holds how many symbols of each bucket were found.
type SymbolCounts struct {
	Variables       int `yaml:"variables"`
	External        int `yaml:"external"`
	Public          int `yaml:"public"`
	InternalPrivate int `yaml:"internal_private"`
	Unclassified    int `yaml:"unclassified"`
}

// UnitResult is the outcome of processing one input file.
type UnitResult struct {
	Source    Path
	Contract  ContractName
	Pragma    string
	TargetDir Path
	Found     SymbolCounts
	Created   []Path
	Failures  []StubFailure
	Warnings  []Warning
	// Err is set when the whole unit was aborted (read or directory errors).
	Err error
}

// Failed reports whether the unit was aborted or lost any stub.
func (u UnitResult) Failed() bool {
	return u.Err != nil || len(u.Failures) > 0
}

// HasWarning reports whether w was recorded for the unit.
func (u UnitResult) HasWarning(w Warning) bool {
	for _, got := range u.Warnings {
		if got == w {
			return true
		}
	}

	return false
}

// RunResult is the outcome of one generator invocation.
type RunResult struct {
	ID        string
	StartedAt time.Time
	Finished  time.Time
	Units     []UnitResult
}

// Created returns the number of stub writes that succeeded.
func (r RunResult) Created() int {
	total := 0
	for _, unit := range r.Units {
		total += len(unit.Created)
	}

	return total
}

// Failed returns the number of failed stubs plus aborted units.
func (r RunResult) Failed() int {
	total := 0

	for _, unit := range r.Units {
		total += len(unit.Failures)
		if unit.Err != nil {
			total++
		}
	}

	return total
}

// HasErrors reports whether any unit or stub failed.
func (r RunResult) HasErrors() bool {
	for _, unit := range r.Units {
		if unit.Failed() {
			return true
		}
	}

	return false
}
