// Package model defines the data structures for test scaffolding.
package model

// Path represents a file system path.
type Path string

// ContractName is the name found in a contract declaration. It is empty
// when neither declaration form matched.
type ContractName string

// SourceUnit is one contract source file read from the contracts root.
type SourceUnit struct {
	// Path is relative to the contracts root, cleaned, with forward slashes.
	Path Path
	// Folder is the mirrored folder under the test root ("" when the file
	// sits directly in the contracts root).
	Folder   string
	RawText  string
	Contract ContractName
	// Pragma is the raw `pragma solidity` constraint, if any.
	Pragma string
}

// NestingMode controls how much of a source's folder chain is mirrored.
type NestingMode string

const (
	// NestingFirst keeps only the first folder segment of the relative path.
	NestingFirst NestingMode = "first"
	// NestingFull mirrors the whole relative folder chain.
	NestingFull NestingMode = "full"
)

// ParseNestingMode returns the mode for s, falling back to NestingFirst.
func ParseNestingMode(s string) NestingMode {
	if NestingMode(s) == NestingFull {
		return NestingFull
	}

	return NestingFirst
}
