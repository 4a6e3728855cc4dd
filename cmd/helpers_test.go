package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testgen.dev/pkg/testgen/internal/domain"
	domainmocks "testgen.dev/pkg/testgen/internal/domain/mocks"
)

// newTestRootCmd returns a root command over fresh viper state, logging into
// a temp file instead of the package directory.
func newTestRootCmd(t *testing.T, out *bytes.Buffer) *cobra.Command {
	t.Helper()

	viper.Reset()
	initConfig()
	t.Cleanup(func() {
		viper.Reset()
		initConfig()
	})

	t.Setenv("TESTGEN_LOG_FILENAME", filepath.Join(t.TempDir(), "testgen.log"))

	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func withMockGenerator(t *testing.T) *domainmocks.MockGenerator {
	t.Helper()

	mockGenerator := domainmocks.NewMockGenerator(t)

	original := newGenerator
	newGenerator = func(*cobra.Command) domain.Generator { return mockGenerator }

	t.Cleanup(func() { newGenerator = original })

	return mockGenerator
}

// withSubcommands attaches every shipped subcommand, as Execute sees them.
func withSubcommands(cmd *cobra.Command) *cobra.Command {
	cmd.AddCommand(
		newGenerateCmd(),
		newPlanCmd(),
		newWatchCmd(),
		newViewCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	return cmd
}
