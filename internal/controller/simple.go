package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "testgen.dev/pkg/testgen/internal/model"
)

const prefix = "TestGen: "

// SimpleUI implements UI by printing to the cobra command's stdout.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex

	okStyle   lipgloss.Style
	warnStyle lipgloss.Style
	errStyle  lipgloss.Style
	headStyle lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &SimpleUI{
		cmd:       cmd,
		okStyle:   renderer.NewStyle().Foreground(lipgloss.Color("2")),
		warnStyle: renderer.NewStyle().Foreground(lipgloss.Color("3")),
		errStyle:  renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		headStyle: renderer.NewStyle().Bold(true),
	}
}

// Start prints how many sources are about to be analysed.
func (s *SimpleUI) Start(ctx context.Context, runID string, sources int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s%d contracts to analyze (run %s)\n", prefix, sources, runID)
}

// DisplayStub reports one created stub file.
func (s *SimpleUI) DisplayStub(ctx context.Context, stub m.TestStub) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s%s\n", prefix, s.okStyle.Render(fmt.Sprintf("Test file for %s created", stub.Symbol.Name)))
}

// StartUnit prints the unit separator and what was found in the source. An
// unreadable source only gets its skipped line.
func (s *SimpleUI) StartUnit(ctx context.Context, unit m.UnitResult) {
	if ctx.Err() != nil {
		return
	}

	s.printf("========================================================\n")

	if unit.Err != nil {
		s.printUnitErr(unit)
		return
	}

	if unit.Contract != "" {
		s.printf("%s%s\n", prefix, s.headStyle.Render("Contract: "+string(unit.Contract)))
	} else {
		s.printf("%s%s\n", prefix, s.warnStyle.Render("Contract name not found in "+string(unit.Source)))
	}

	s.printf("%sFound %d public variables\n", prefix, unit.Found.Variables)
	s.printf("%sFound %d external functions\n", prefix, unit.Found.External)
	s.printf("%sFound %d public functions\n", prefix, unit.Found.Public)

	for _, warning := range unit.Warnings {
		if warning == m.WarnNoContractName {
			continue
		}

		s.printf("%s%s\n", prefix, s.warnStyle.Render(fmt.Sprintf("warning: %s (%s)", warning, unit.Source)))
	}
}

// FinishUnit prints the abort reason or the failed stubs of a unit.
func (s *SimpleUI) FinishUnit(ctx context.Context, unit m.UnitResult) {
	if ctx.Err() != nil {
		return
	}

	if unit.Err != nil {
		s.printUnitErr(unit)
		return
	}

	for _, failure := range unit.Failures {
		s.printf("%s%s\n", prefix, s.errStyle.Render(fmt.Sprintf("Test file for %s failed: %v", failure.Symbol, failure.Err)))
	}
}

// DisplayUnit replays a finished unit: header, created files, failures.
func (s *SimpleUI) DisplayUnit(ctx context.Context, unit m.UnitResult) {
	s.StartUnit(ctx, unit)

	if ctx.Err() != nil || unit.Err != nil {
		return
	}

	for _, created := range unit.Created {
		s.printf("%s%s\n", prefix, s.okStyle.Render(fmt.Sprintf("Test file %s created", created)))
	}

	s.FinishUnit(ctx, unit)
}

func (s *SimpleUI) printUnitErr(unit m.UnitResult) {
	s.printf("%s%s\n", prefix, s.errStyle.Render(fmt.Sprintf("%s skipped: %v", unit.Source, unit.Err)))
}

// DisplaySummary prints a per-source table with created and failed counts.
func (s *SimpleUI) DisplaySummary(ctx context.Context, run m.RunResult) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(run))

	status := s.okStyle.Render(fmt.Sprintf("%d test files created", run.Created()))
	if run.HasErrors() {
		status += ", " + s.errStyle.Render(fmt.Sprintf("%d failed", run.Failed()))
	}

	s.printf("%s%s\n", prefix, status)
}

func renderSummaryTable(run m.RunResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Contract", "Created", "Failed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, unit := range run.Units {
		failed := len(unit.Failures)
		if unit.Err != nil {
			failed++
		}

		table.Append([]string{
			string(unit.Source),
			string(unit.Contract),
			fmt.Sprintf("%d", len(unit.Created)),
			fmt.Sprintf("%d", failed),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(run.Units)),
		"",
		fmt.Sprintf("%d", run.Created()),
		fmt.Sprintf("%d", run.Failed()),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayPlan prints the unified diff of every planned target.
func (s *SimpleUI) DisplayPlan(ctx context.Context, plans []m.StubPlan) {
	if ctx.Err() != nil {
		return
	}

	for _, plan := range plans {
		state := "new"
		if plan.Exists {
			state = string(plan.Mode)
		}

		s.printf("%s%s\n", prefix, s.headStyle.Render(fmt.Sprintf("%s (%s)", plan.Target, state)))
		s.printf("%s\n", plan.Diff)
	}

	s.printf("%s%d files would change\n", prefix, len(plans))
}

// DisplayWatching announces the watched root.
func (s *SimpleUI) DisplayWatching(ctx context.Context, root m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%sWatching %s for changes (Ctrl+C to stop)\n", prefix, root)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
