package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"testgen.dev/pkg/testgen/internal/adapter"
	m "testgen.dev/pkg/testgen/internal/model"
)

// DirectoryMapper derives the mirrored test directory of a source.
type DirectoryMapper interface {
	// Resolve computes the target directory without touching the disk.
	Resolve(ctx context.Context, relPath m.Path, contract m.ContractName) (m.Path, error)
	// Map resolves the target directory and creates it with its parents.
	// An existing directory is not an error.
	Map(ctx context.Context, relPath m.Path, contract m.ContractName) (m.Path, error)
}

type directoryMapper struct {
	fsAdapter adapter.SourceFSAdapter
	testRoot  m.Path
	nesting   m.NestingMode
}

// NewDirectoryMapper creates a DirectoryMapper rooted at testRoot.
func NewDirectoryMapper(fsAdapter adapter.SourceFSAdapter, testRoot m.Path, nesting m.NestingMode) DirectoryMapper {
	return &directoryMapper{
		fsAdapter: fsAdapter,
		testRoot:  testRoot,
		nesting:   nesting,
	}
}

func (d *directoryMapper) Resolve(ctx context.Context, relPath m.Path, contract m.ContractName) (m.Path, error) {
	clean, err := CleanRelPath(relPath)
	if err != nil {
		return "", err
	}

	elems := []string{string(d.testRoot)}
	if folder := FolderOf(clean, d.nesting); folder != "" {
		elems = append(elems, folder)
	}

	// An empty contract name leaves the stubs directly in the folder.
	elems = append(elems, string(contract))

	return d.fsAdapter.JoinPath(ctx, elems...), nil
}

func (d *directoryMapper) Map(ctx context.Context, relPath m.Path, contract m.ContractName) (m.Path, error) {
	target, err := d.Resolve(ctx, relPath, contract)
	if err != nil {
		return "", err
	}

	if err := d.fsAdapter.MkdirAll(ctx, target); err != nil {
		slog.Error("Failed to create test directory", "target", target, "error", err)
		return "", fmt.Errorf("%w: %s: %w", ErrDirectoryCreate, target, err)
	}

	slog.Debug("Test directory ready", "source", relPath, "target", target)

	return target, nil
}

// CleanRelPath normalises a path relative to the contracts root and rejects
// absolute paths and paths climbing out of the root.
func CleanRelPath(relPath m.Path) (m.Path, error) {
	slashed := strings.ReplaceAll(string(relPath), `\`, "/")
	if strings.HasPrefix(slashed, "/") {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, relPath)
	}

	clean := path.Clean(slashed)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, relPath)
	}

	return m.Path(clean), nil
}

// FolderOf returns the folder of a cleaned relative path that is mirrored
// under the test root. With NestingFirst only the first segment is kept,
// so "Vaults/Yield/Vault.sol" maps to "Vaults".
func FolderOf(relPath m.Path, nesting m.NestingMode) string {
	dir := path.Dir(string(relPath))
	if dir == "." || dir == "/" {
		return ""
	}

	if nesting == m.NestingFull {
		return dir
	}

	first, _, _ := strings.Cut(dir, "/")

	return first
}
