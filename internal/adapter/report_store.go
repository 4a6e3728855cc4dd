package adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "testgen.dev/pkg/testgen/internal/model"
)

// ReportStore persists run results so scripts can inspect per-file outcomes.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, run m.RunResult) error
	LoadReport(ctx context.Context, path m.Path) (Report, error)
}

// Report is the serialised form of a run.
type Report struct {
	ID        string       `yaml:"id"`
	StartedAt time.Time    `yaml:"started_at"`
	Finished  time.Time    `yaml:"finished"`
	Created   int          `yaml:"created"`
	Failed    int          `yaml:"failed"`
	Units     []UnitReport `yaml:"units"`
}

// UnitReport is the serialised form of one input file result.
type UnitReport struct {
	Source    string          `yaml:"source"`
	Contract  string          `yaml:"contract"`
	Pragma    string          `yaml:"pragma,omitempty"`
	TargetDir string          `yaml:"target_dir,omitempty"`
	Found     m.SymbolCounts  `yaml:"found"`
	Created   []string        `yaml:"created,omitempty"`
	Failures  []FailureReport `yaml:"failures,omitempty"`
	Warnings  []string        `yaml:"warnings,omitempty"`
	Error     string          `yaml:"error,omitempty"`
}

// FailureReport is the serialised form of a failed stub.
type FailureReport struct {
	Symbol string `yaml:"symbol"`
	Target string `yaml:"target"`
	Error  string `yaml:"error"`
}

// YAMLReportStore writes reports as YAML documents through a SourceFSAdapter.
type YAMLReportStore struct {
	fsAdapter SourceFSAdapter
}

// NewReportStore creates a YAML backed ReportStore.
func NewReportStore(fsAdapter SourceFSAdapter) *YAMLReportStore {
	return &YAMLReportStore{fsAdapter: fsAdapter}
}

// SaveReport writes run to path, replacing any previous report.
func (s *YAMLReportStore) SaveReport(ctx context.Context, path m.Path, run m.RunResult) error {
	if path == "" {
		return errors.New("report path is empty")
	}

	data, err := yaml.Marshal(NewReport(run))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := s.fsAdapter.MkdirAll(ctx, m.Path(dir)); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := s.fsAdapter.WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (s *YAMLReportStore) LoadReport(ctx context.Context, path m.Path) (Report, error) {
	data, err := s.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	return report, nil
}

// NewReport converts a run result into its serialised form.
func NewReport(run m.RunResult) Report {
	report := Report{
		ID:        run.ID,
		StartedAt: run.StartedAt,
		Finished:  run.Finished,
		Created:   run.Created(),
		Failed:    run.Failed(),
		Units:     make([]UnitReport, 0, len(run.Units)),
	}

	for _, unit := range run.Units {
		report.Units = append(report.Units, newUnitReport(unit))
	}

	return report
}

func newUnitReport(unit m.UnitResult) UnitReport {
	ur := UnitReport{
		Source:    string(unit.Source),
		Contract:  string(unit.Contract),
		Pragma:    unit.Pragma,
		TargetDir: string(unit.TargetDir),
		Found:     unit.Found,
	}

	for _, created := range unit.Created {
		ur.Created = append(ur.Created, string(created))
	}

	for _, failure := range unit.Failures {
		ur.Failures = append(ur.Failures, FailureReport{
			Symbol: failure.Symbol,
			Target: string(failure.Target),
			Error:  errString(failure.Err),
		})
	}

	for _, warning := range unit.Warnings {
		ur.Warnings = append(ur.Warnings, string(warning))
	}

	ur.Error = errString(unit.Err)

	return ur
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

// RunResult rebuilds a run result from a loaded report. Errors come back as
// plain messages.
func (r Report) RunResult() m.RunResult {
	run := m.RunResult{
		ID:        r.ID,
		StartedAt: r.StartedAt,
		Finished:  r.Finished,
		Units:     make([]m.UnitResult, 0, len(r.Units)),
	}

	for _, ur := range r.Units {
		unit := m.UnitResult{
			Source:    m.Path(ur.Source),
			Contract:  m.ContractName(ur.Contract),
			Pragma:    ur.Pragma,
			TargetDir: m.Path(ur.TargetDir),
			Found:     ur.Found,
			Err:       errFromString(ur.Error),
		}

		for _, created := range ur.Created {
			unit.Created = append(unit.Created, m.Path(created))
		}

		for _, failure := range ur.Failures {
			unit.Failures = append(unit.Failures, m.StubFailure{
				Symbol: failure.Symbol,
				Target: m.Path(failure.Target),
				Err:    errFromString(failure.Error),
			})
		}

		for _, warning := range ur.Warnings {
			unit.Warnings = append(unit.Warnings, m.Warning(warning))
		}

		run.Units = append(run.Units, unit)
	}

	return run
}

func errFromString(s string) error {
	if s == "" {
		return nil
	}

	return errors.New(s)
}
