package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate [contracts...]",
		Aliases: []string{"gen"},
		Short:   "Generate test stubs",
		Long:    generateLongDescription,
		RunE:    runGenerate,
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
