package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [contracts...]",
		Short: "Preview the stubs generate would write",
		Long:  planLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			generator := newGenerator(cmd)
			genArgs := generateArgsFromConfig()

			sources, err := expandArgs(cmd, generator, genArgs.ContractsRoot, args)
			if err != nil {
				return err
			}

			genArgs.Sources = sources

			_, _, err = generator.Plan(cmd.Context(), genArgs)
			if err != nil {
				return fmt.Errorf("failed to plan: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
