package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"testgen.dev/pkg/testgen/internal/adapter"
	"testgen.dev/pkg/testgen/internal/controller"
	m "testgen.dev/pkg/testgen/internal/model"
)

// DefaultSourcePattern selects every contract under the contracts root.
const DefaultSourcePattern = "**/*.sol"

// GenerateArgs contains the arguments for one generator invocation.
type GenerateArgs struct {
	ContractsRoot m.Path
	TestRoot      m.Path
	// Sources are paths relative to ContractsRoot, usually from Expand.
	Sources         []m.Path
	Nesting         m.NestingMode
	IncludeInternal bool
	VariableTypes   []string
	// Template is an optional user template file; empty selects the default.
	Template m.Path
	Emit     EmitOptions
	// Report is an optional path for a YAML run report.
	Report m.Path
}

// WatchArgs contains the arguments for watch mode.
type WatchArgs struct {
	GenerateArgs
	// Patterns restricts which changed files are regenerated; empty means all.
	Patterns []string
}

// Generator runs the scaffold pipeline over contract sources.
type Generator interface {
	Expand(ctx context.Context, root m.Path, patterns []string) ([]m.Path, error)
	Generate(ctx context.Context, args GenerateArgs) (m.RunResult, error)
	Plan(ctx context.Context, args GenerateArgs) ([]m.StubPlan, m.RunResult, error)
	Watch(ctx context.Context, args WatchArgs) error
}

type generator struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.SourceWatcher
	controller.UI
}

// NewGenerator creates a Generator with the provided dependencies.
func NewGenerator(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	watcher adapter.SourceWatcher,
	ui controller.UI,
) Generator {
	return &generator{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		SourceWatcher:   watcher,
		UI:              ui,
	}
}

// pipeline is the per-invocation wiring of the four stages.
type pipeline struct {
	extractor SymbolExtractor
	mapper    DirectoryMapper
	emitter   StubEmitter
}

func (g *generator) newPipeline(ctx context.Context, args GenerateArgs) (pipeline, error) {
	var renderer adapter.TemplateRenderer = adapter.NewDefaultTemplateRenderer()

	if args.Template != "" {
		custom, err := adapter.NewTemplateRendererFromFile(ctx, g.SourceFSAdapter, args.Template)
		if err != nil {
			return pipeline{}, err
		}

		renderer = custom
	}

	return pipeline{
		extractor: NewSymbolExtractor(args.VariableTypes...),
		mapper:    NewDirectoryMapper(g.SourceFSAdapter, args.TestRoot, args.Nesting),
		emitter:   NewStubEmitter(g.SourceFSAdapter, renderer, args.Emit),
	}, nil
}

// Expand turns CLI arguments into source paths relative to root. Arguments
// with glob metacharacters are matched with doublestar, directories select
// the .sol files beneath them and no arguments select every .sol file.
func (g *generator) Expand(ctx context.Context, root m.Path, patterns []string) ([]m.Path, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultSourcePattern}
	}

	var sources []m.Path

	seen := map[m.Path]bool{}

	add := func(p m.Path) {
		if !seen[p] {
			seen[p] = true
			sources = append(sources, p)
		}
	}

	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")

		if !isGlob(pattern) {
			info, err := g.FileInfo(ctx, g.JoinPath(ctx, string(root), pattern))
			if err != nil || !info.IsDir() {
				// Missing files are reported per unit by Generate.
				add(m.Path(pattern))
				continue
			}

			pattern = strings.TrimSuffix(pattern, "/") + "/" + DefaultSourcePattern
			if pattern == "./"+DefaultSourcePattern {
				pattern = DefaultSourcePattern
			}
		}

		matches, err := g.Glob(ctx, root, pattern)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			slog.Warn("Pattern matched no contracts", "pattern", pattern, "root", root)
		}

		for _, match := range matches {
			add(match)
		}
	}

	return sources, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// Generate processes every source independently; a failing source never
// stops the others.
func (g *generator) Generate(ctx context.Context, args GenerateArgs) (m.RunResult, error) {
	run := m.RunResult{ID: uuid.NewString(), StartedAt: time.Now()}
	logger := slog.With("run", run.ID)

	p, err := g.newPipeline(ctx, args)
	if err != nil {
		return run, fmt.Errorf("prepare pipeline: %w", err)
	}

	g.Start(ctx, run.ID, len(args.Sources))
	logger.Info("Generating test stubs", "sources", len(args.Sources), "testRoot", args.TestRoot, "mode", args.Emit.Mode)

	for _, source := range args.Sources {
		run.Units = append(run.Units, g.processUnit(ctx, logger, p, args, source))
	}

	run.Finished = time.Now()
	g.DisplaySummary(ctx, run)
	logger.Info("Generation finished", "created", run.Created(), "failed", run.Failed())

	if args.Report != "" {
		if err := g.SaveReport(ctx, args.Report, run); err != nil {
			logger.Error("Failed to save report", "report", args.Report, "error", err)
			return run, fmt.Errorf("save report: %w", err)
		}
	}

	return run, nil
}

func (g *generator) processUnit(ctx context.Context, logger *slog.Logger, p pipeline, args GenerateArgs, source m.Path) m.UnitResult {
	unit, symbols, ok := g.analyse(ctx, logger, p, args, source)
	g.StartUnit(ctx, unit)

	if !ok {
		return unit
	}

	dir, err := p.mapper.Map(ctx, unit.Source, unit.Contract)
	if err != nil {
		unit.Err = err
		g.FinishUnit(ctx, unit)

		return unit
	}

	unit.TargetDir = dir

	result := p.emitter.Emit(ctx, dir, unit.Contract, symbols)
	for _, stub := range result.Created {
		unit.Created = append(unit.Created, stub.TargetPath)
		g.DisplayStub(ctx, stub)
	}

	unit.Failures = result.Failures
	g.FinishUnit(ctx, unit)

	return unit
}

// analyse reads and scans one source. ok is false when the unit was aborted.
func (g *generator) analyse(ctx context.Context, logger *slog.Logger, p pipeline, args GenerateArgs, source m.Path) (m.UnitResult, []m.Symbol, bool) {
	unit := m.UnitResult{Source: source}

	clean, err := CleanRelPath(source)
	if err != nil {
		unit.Err = fmt.Errorf("%w: %w", ErrSourceRead, err)
		logger.Warn("Rejected source path", "source", source, "error", err)

		return unit, nil, false
	}

	unit.Source = clean

	raw, err := g.ReadFile(ctx, g.JoinPath(ctx, string(args.ContractsRoot), string(clean)))
	if err != nil {
		unit.Err = fmt.Errorf("%w: %s: %w", ErrSourceRead, clean, err)
		logger.Warn("Failed to read source", "source", clean, "error", err)

		return unit, nil, false
	}

	su := m.SourceUnit{
		Path:    clean,
		Folder:  FolderOf(clean, args.Nesting),
		RawText: string(raw),
	}

	extraction := p.extractor.Extract(su.RawText)
	su.Contract = extraction.Contract
	su.Pragma = extraction.Pragma
	buckets := Classify(extraction.FunctionBlocks)

	unit.Contract = extraction.Contract
	unit.Pragma = extraction.Pragma
	unit.Found = m.SymbolCounts{
		Variables:       len(extraction.Variables),
		External:        len(buckets.External),
		Public:          len(buckets.Public),
		InternalPrivate: len(buckets.InternalPrivate),
		Unclassified:    buckets.Unclassified,
	}

	if extraction.Contract == "" {
		unit.Warnings = append(unit.Warnings, m.WarnNoContractName)
		logger.Warn("Contract name not found", "source", clean)
	}

	if !extraction.PragmaValid {
		unit.Warnings = append(unit.Warnings, m.WarnUnrecognisedPragma)
		logger.Warn("Unrecognised solidity pragma", "source", clean, "pragma", extraction.Pragma)
	}

	symbols := append([]m.Symbol{}, extraction.Variables...)
	symbols = append(symbols, buckets.Reachable()...)

	if args.IncludeInternal {
		symbols = append(symbols, buckets.InternalPrivate...)
	}

	if len(symbols) == 0 {
		unit.Warnings = append(unit.Warnings, m.WarnNoSymbols)
		logger.Info("No symbols found", "source", clean, "contract", extraction.Contract)
	}

	logger.Debug("Source analysed",
		"source", clean,
		"contract", extraction.Contract,
		"folder", su.Folder,
		"variables", unit.Found.Variables,
		"external", unit.Found.External,
		"public", unit.Found.Public,
		"unclassified", unit.Found.Unclassified,
	)

	return unit, symbols, true
}

// Plan runs the pipeline without creating directories or files and returns
// the diff each target would receive.
func (g *generator) Plan(ctx context.Context, args GenerateArgs) ([]m.StubPlan, m.RunResult, error) {
	run := m.RunResult{ID: uuid.NewString(), StartedAt: time.Now()}
	logger := slog.With("run", run.ID, "dryRun", true)

	p, err := g.newPipeline(ctx, args)
	if err != nil {
		return nil, run, fmt.Errorf("prepare pipeline: %w", err)
	}

	var plans []m.StubPlan

	for _, source := range args.Sources {
		unit, symbols, ok := g.analyse(ctx, logger, p, args, source)
		if !ok {
			run.Units = append(run.Units, unit)
			continue
		}

		dir, err := p.mapper.Resolve(ctx, unit.Source, unit.Contract)
		if err != nil {
			unit.Err = err
			run.Units = append(run.Units, unit)

			continue
		}

		unit.TargetDir = dir

		unitPlans, failures := p.emitter.Plan(ctx, dir, unit.Contract, symbols)
		for i := range unitPlans {
			unitPlans[i].Source = unit.Source
		}

		unit.Failures = failures
		plans = append(plans, unitPlans...)
		run.Units = append(run.Units, unit)
	}

	run.Finished = time.Now()
	g.DisplayPlan(ctx, plans)

	return plans, run, nil
}

// Watch regenerates a contract each time it changes, until ctx is done. It
// fails when the watcher stops on its own.
func (g *generator) Watch(ctx context.Context, args WatchArgs) error {
	changes, errs := g.SourceWatcher.Watch(ctx, args.ContractsRoot)
	g.DisplayWatching(ctx, args.ContractsRoot)

	var lastErr error

	for changes != nil || errs != nil {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			lastErr = err
			slog.Error("Watcher error", "root", args.ContractsRoot, "error", err)
		case changed, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}

			if !matchesAny(args.Patterns, changed) {
				slog.Debug("Ignoring change", "path", changed)
				continue
			}

			genArgs := args.GenerateArgs
			genArgs.Sources = []m.Path{changed}

			if _, err := g.Generate(ctx, genArgs); err != nil {
				slog.Error("Regeneration failed", "path", changed, "error", err)
			}
		}
	}

	if ctx.Err() != nil {
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %w", ErrWatchStopped, lastErr)
	}

	return ErrWatchStopped
}

func matchesAny(patterns []string, path m.Path) bool {
	if len(patterns) == 0 {
		return true
	}

	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(pattern, "./")
		if pattern == string(path) {
			return true
		}

		if ok, err := doublestar.Match(pattern, string(path)); err == nil && ok {
			return true
		}
	}

	return false
}
