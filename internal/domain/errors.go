// Package domain implements the source-to-test-scaffold pipeline.
package domain

import "errors"

var (
	// ErrSourceRead means an input file is missing or unreadable. It aborts
	// the current source only.
	ErrSourceRead = errors.New("source read failed")
	// ErrOutsideRoot means an input path escapes the contracts root.
	ErrOutsideRoot = errors.New("path is outside the contracts root")
	// ErrDirectoryCreate means the mirrored test directory could not be
	// created. It aborts the current source only.
	ErrDirectoryCreate = errors.New("directory create failed")
	// ErrStubWrite means one stub file could not be written.
	ErrStubWrite = errors.New("stub write failed")
	// ErrTemplateRender means the stub template failed for one symbol.
	ErrTemplateRender = errors.New("template render failed")
	// ErrSymbolCollision means two symbols share a file name under the
	// fail collision policy.
	ErrSymbolCollision = errors.New("symbol name collision")
	// ErrRunFailed is returned by callers that treat any failed unit as fatal.
	ErrRunFailed = errors.New("one or more sources failed")
	// ErrWatchStopped means the source watcher closed before cancellation.
	ErrWatchStopped = errors.New("source watcher stopped")
)
