package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"testgen.dev/pkg/testgen/internal/adapter"
	m "testgen.dev/pkg/testgen/internal/model"
)

// DefaultExtension is appended to the symbol name to form a stub file name.
const DefaultExtension = "test.ts"

// EmitOptions configures how stubs are named and written.
type EmitOptions struct {
	Extension string
	Mode      m.WriteMode
	Collision m.CollisionPolicy
	// Parallel bounds concurrent writes; zero or less means unbounded.
	Parallel int
}

// EmitResult lists the stub writes of one source.
type EmitResult struct {
	Created  []m.TestStub
	Failures []m.StubFailure
}

// StubEmitter renders and writes one stub per symbol.
type StubEmitter interface {
	// Build names and renders stubs without writing them.
	Build(ctx context.Context, dir m.Path, contract m.ContractName, symbols []m.Symbol) ([]m.TestStub, []m.StubFailure)
	// Emit builds and writes stubs. Write failures are reported per symbol
	// and never stop sibling writes.
	Emit(ctx context.Context, dir m.Path, contract m.ContractName, symbols []m.Symbol) EmitResult
	// Plan builds stubs and diffs them against what is on disk.
	Plan(ctx context.Context, dir m.Path, contract m.ContractName, symbols []m.Symbol) ([]m.StubPlan, []m.StubFailure)
}

type stubEmitter struct {
	fsAdapter adapter.SourceFSAdapter
	renderer  adapter.TemplateRenderer
	opts      EmitOptions
}

// NewStubEmitter creates a StubEmitter.
func NewStubEmitter(fsAdapter adapter.SourceFSAdapter, renderer adapter.TemplateRenderer, opts EmitOptions) StubEmitter {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}

	opts.Extension = strings.TrimPrefix(opts.Extension, ".")

	if opts.Mode == "" {
		opts.Mode = m.WriteAppend
	}

	if opts.Collision == "" {
		opts.Collision = m.CollisionDuplicate
	}

	return &stubEmitter{
		fsAdapter: fsAdapter,
		renderer:  renderer,
		opts:      opts,
	}
}

func (e *stubEmitter) Build(ctx context.Context, dir m.Path, contract m.ContractName, symbols []m.Symbol) ([]m.TestStub, []m.StubFailure) {
	names, failures := e.fileNames(ctx, dir, symbols)

	stubs := make([]m.TestStub, 0, len(symbols))

	for i, symbol := range symbols {
		if names[i] == "" {
			continue
		}

		target := e.fsAdapter.JoinPath(ctx, string(dir), names[i])

		content, err := e.renderer.Render(contract, symbol.Name)
		if err != nil {
			failures = append(failures, m.StubFailure{
				Symbol: symbol.Name,
				Target: target,
				Err:    fmt.Errorf("%w: %w", ErrTemplateRender, err),
			})

			continue
		}

		stubs = append(stubs, m.TestStub{
			Symbol:     symbol,
			FileName:   names[i],
			TargetPath: target,
			Content:    content,
		})
	}

	return stubs, failures
}

// fileNames applies the collision policy. A symbol whose name is "" in the
// returned slice has been turned into a failure.
func (e *stubEmitter) fileNames(ctx context.Context, dir m.Path, symbols []m.Symbol) ([]string, []m.StubFailure) {
	names := make([]string, len(symbols))

	var failures []m.StubFailure

	switch e.opts.Collision {
	case m.CollisionFail:
		counts := map[string]int{}
		for _, symbol := range symbols {
			counts[symbol.Name]++
		}

		for i, symbol := range symbols {
			if counts[symbol.Name] > 1 {
				failures = append(failures, m.StubFailure{
					Symbol: symbol.Name,
					Target: e.fsAdapter.JoinPath(ctx, string(dir), e.fileName(symbol.Name)),
					Err:    fmt.Errorf("%w: %q declared %d times", ErrSymbolCollision, symbol.Name, counts[symbol.Name]),
				})

				continue
			}

			names[i] = e.fileName(symbol.Name)
		}
	case m.CollisionSuffix:
		used := map[string]bool{}

		for i, symbol := range symbols {
			base := symbol.Name
			if used[base] {
				base = symbol.Name + "_" + string(symbol.Visibility)
			}

			for n := 2; used[base]; n++ {
				base = fmt.Sprintf("%s_%s_%d", symbol.Name, symbol.Visibility, n)
			}

			used[base] = true
			names[i] = e.fileName(base)
		}
	default:
		for i, symbol := range symbols {
			names[i] = e.fileName(symbol.Name)
		}
	}

	return names, failures
}

func (e *stubEmitter) fileName(base string) string {
	return base + "." + e.opts.Extension
}

// targetGroup holds the stubs sharing one target file, in source order.
type targetGroup struct {
	target m.Path
	stubs  []m.TestStub
}

func groupByTarget(stubs []m.TestStub) []targetGroup {
	var groups []targetGroup

	index := map[m.Path]int{}

	for _, stub := range stubs {
		i, ok := index[stub.TargetPath]
		if !ok {
			i = len(groups)
			index[stub.TargetPath] = i
			groups = append(groups, targetGroup{target: stub.TargetPath})
		}

		groups[i].stubs = append(groups[i].stubs, stub)
	}

	return groups
}

func (g targetGroup) content() string {
	var b strings.Builder
	for _, stub := range g.stubs {
		b.WriteString(stub.Content)
	}

	return b.String()
}

func (g targetGroup) symbols() []string {
	names := make([]string, 0, len(g.stubs))
	for _, stub := range g.stubs {
		names = append(names, stub.Symbol.Name)
	}

	return names
}

func (e *stubEmitter) Emit(ctx context.Context, dir m.Path, contract m.ContractName, symbols []m.Symbol) EmitResult {
	stubs, failures := e.Build(ctx, dir, contract, symbols)
	groups := groupByTarget(stubs)
	outcomes := make([]error, len(groups))

	var group errgroup.Group
	if e.opts.Parallel > 0 {
		group.SetLimit(e.opts.Parallel)
	}

	for i, g := range groups {
		group.Go(func() error {
			outcomes[i] = e.write(ctx, g)
			return nil
		})
	}

	_ = group.Wait()

	result := EmitResult{Failures: failures}

	for i, g := range groups {
		for _, stub := range g.stubs {
			if outcomes[i] != nil {
				result.Failures = append(result.Failures, m.StubFailure{
					Symbol: stub.Symbol.Name,
					Target: stub.TargetPath,
					Err:    outcomes[i],
				})

				continue
			}

			result.Created = append(result.Created, stub)
		}
	}

	return result
}

func (e *stubEmitter) write(ctx context.Context, g targetGroup) error {
	content := []byte(g.content())

	var err error
	if e.opts.Mode == m.WriteOverwrite {
		err = e.fsAdapter.WriteFile(ctx, g.target, content)
	} else {
		err = e.fsAdapter.AppendFile(ctx, g.target, content)
	}

	if err != nil {
		slog.Warn("Failed to write test stub", "target", g.target, "symbols", g.symbols(), "error", err)
		return fmt.Errorf("%w: %s: %w", ErrStubWrite, g.target, err)
	}

	for _, stub := range g.stubs {
		slog.Info("Test file created", "symbol", stub.Symbol.Name, "kind", stub.Symbol.Kind, "target", g.target)
	}

	return nil
}

func (e *stubEmitter) Plan(ctx context.Context, dir m.Path, contract m.ContractName, symbols []m.Symbol) ([]m.StubPlan, []m.StubFailure) {
	stubs, failures := e.Build(ctx, dir, contract, symbols)
	groups := groupByTarget(stubs)
	plans := make([]m.StubPlan, 0, len(groups))

	for _, g := range groups {
		plan, err := e.plan(ctx, g)
		if err != nil {
			for _, stub := range g.stubs {
				failures = append(failures, m.StubFailure{Symbol: stub.Symbol.Name, Target: g.target, Err: err})
			}

			continue
		}

		plans = append(plans, plan)
	}

	return plans, failures
}

func (e *stubEmitter) plan(ctx context.Context, g targetGroup) (m.StubPlan, error) {
	plan := m.StubPlan{
		Target:  g.target,
		Mode:    e.opts.Mode,
		Symbols: g.symbols(),
	}

	existing, err := e.fsAdapter.ReadFile(ctx, g.target)

	switch {
	case err == nil:
		plan.Exists = true
	case errors.Is(err, fs.ErrNotExist):
		existing = nil
	default:
		return plan, fmt.Errorf("%w: read %s: %w", ErrStubWrite, g.target, err)
	}

	next := g.content()
	if e.opts.Mode == m.WriteAppend {
		next = string(existing) + next
	}

	fromFile := string(g.target)
	if !plan.Exists {
		fromFile = "/dev/null"
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(next),
		FromFile: fromFile,
		ToFile:   string(g.target),
		Context:  3,
	})
	if err != nil {
		return plan, fmt.Errorf("diff %s: %w", g.target, err)
	}

	plan.Diff = diff

	return plan, nil
}
