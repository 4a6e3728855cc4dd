// Package adapter contains file system, template, report and watcher adapters.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	m "testgen.dev/pkg/testgen/internal/model"
)

// SourceFSAdapter abstracts the file system operations the generator relies
// on: reading contract sources, creating mirrored directories and writing
// stub files. It hides direct `os` access so the domain logic can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents. A missing
	// file yields an error satisfying errors.Is(err, fs.ErrNotExist).
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can check existence.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// MkdirAll creates path and any missing parents. It is a no-op when the
	// directory already exists.
	MkdirAll(ctx context.Context, path m.Path) error

	// AppendFile appends content to path, creating the file if absent.
	AppendFile(ctx context.Context, path m.Path, content []byte) error

	// WriteFile replaces the contents of path, creating the file if absent.
	WriteFile(ctx context.Context, path m.Path, content []byte) error

	// Glob returns the files under root matching a doublestar pattern, as
	// slash-separated paths relative to root, sorted.
	Glob(ctx context.Context, root m.Path, pattern string) ([]m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// LocalSourceFSAdapter implements SourceFSAdapter on top of the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the generator.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is a contract source chosen by the user
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// MkdirAll creates a directory and its parents.
func (a *LocalSourceFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), dirPerm)
}

// AppendFile appends content to a file, creating it when missing.
func (a *LocalSourceFSAdapter) AppendFile(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// #nosec G304 - path is derived from the configured test root
	f, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// WriteFile writes content to a file, truncating any previous contents.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, filePerm)
}

// Glob matches pattern against files under root.
func (a *LocalSourceFSAdapter) Glob(ctx context.Context, root m.Path, pattern string) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(string(root)), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q in %s: %w", pattern, root, err)
	}

	sort.Strings(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
