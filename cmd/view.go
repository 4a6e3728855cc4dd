package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testgen.dev/pkg/testgen/internal/controller"
	m "testgen.dev/pkg/testgen/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously written run report",
		Long: `View the summary of a YAML run report written with --report. Without an
argument the configured report path is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath := m.Path(viper.GetString(reportConfigKey))
			if len(args) == 1 {
				reportPath = m.Path(args[0])
			}

			if reportPath == "" {
				return fmt.Errorf("no report given: pass a path or set --%s", reportFlagName)
			}

			report, err := reportStore.LoadReport(cmd.Context(), reportPath)
			if err != nil {
				return fmt.Errorf("failed to load report: %w", err)
			}

			run := report.RunResult()
			ui := controller.NewSimpleUI(cmd)

			for _, unit := range run.Units {
				ui.DisplayUnit(cmd.Context(), unit)
			}

			ui.DisplaySummary(cmd.Context(), run)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
