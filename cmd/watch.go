package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"testgen.dev/pkg/testgen/internal/domain"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [patterns...]",
		Short: "Regenerate stubs whenever a contract changes",
		Long: `Watch the contracts root and regenerate the stubs of every contract that
is created or saved. Optional doublestar patterns restrict which contracts
are regenerated. Runs until interrupted.

Use --mode overwrite to keep stub files in step with their contracts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return newGenerator(cmd).Watch(ctx, domain.WatchArgs{
				GenerateArgs: generateArgsFromConfig(),
				Patterns:     args,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
