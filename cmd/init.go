package cmd

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default testgen.yaml configuration file",
		Long: `Create a testgen.yaml in the current working directory from the current
settings (defaults, environment and flags) and list what was written. An
existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if force {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Println("wrote", targetPath)

			for _, line := range writtenSettings() {
				cmd.Println(" ", line)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing "+configFileName)

	return cmd
}

// writtenSettings lists the generation settings as sorted key = value lines.
// Logging keys are written too but not listed.
func writtenSettings() []string {
	keys := slices.Sorted(slices.Values(viper.AllKeys()))
	lines := make([]string, 0, len(keys))

	for _, key := range keys {
		if strings.HasPrefix(key, "log.") {
			continue
		}

		lines = append(lines, fmt.Sprintf("%s = %v", key, viper.Get(key)))
	}

	return lines
}

func init() {
	rootCmd.AddCommand(initCmd)
}
