package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"testgen.dev/pkg/testgen/internal/domain"
	m "testgen.dev/pkg/testgen/internal/model"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newTestRootCmd(t, &bytes.Buffer{})
	assert.Equal(t, "testgen [contracts...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{
		contractsFlagName, testRootFlagName, nestingFlagName, extensionFlagName,
		modeFlagName, collisionFlagName, internalFlagName, templateFlagName,
		variableTypesFlagName, runParallelFlagName, failOnErrorFlagName,
		reportFlagName, verboseFlagName,
	} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	output := &bytes.Buffer{}
	cmd := newTestRootCmd(t, output)

	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "relative to the contracts root")
}

func TestRootCmd_ArgumentsRunGenerate(t *testing.T) {
	mockGenerator := withMockGenerator(t)
	cmd := withSubcommands(newTestRootCmd(t, &bytes.Buffer{}))

	mockGenerator.EXPECT().Expand(mock.Anything, m.Path("src"), []string{"Bank/Bank.sol", "Token.sol"}).
		Return([]m.Path{"Bank/Bank.sol", "Token.sol"}, nil)
	mockGenerator.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.ContractsRoot == "src" &&
			args.TestRoot == "test" &&
			len(args.Sources) == 2 &&
			args.Sources[0] == "Bank/Bank.sol"
	})).Return(m.RunResult{}, nil)

	cmd.SetArgs([]string{"--contracts", "src", "Bank/Bank.sol", "Token.sol"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRootCmd_FindKeepsPositionalContracts(t *testing.T) {
	found, args, err := rootCmd.Find([]string{"Bank/Bank.sol", "Token.sol"})
	require.NoError(t, err)
	assert.Same(t, rootCmd, found)
	assert.Equal(t, []string{"Bank/Bank.sol", "Token.sol"}, args)

	found, _, err = rootCmd.Find([]string{"plan", "Bank.sol"})
	require.NoError(t, err)
	assert.Equal(t, "plan", found.Name())
}

func TestGenerateCmd_FlagsArePassedThrough(t *testing.T) {
	mockGenerator := withMockGenerator(t)
	cmd := newTestRootCmd(t, &bytes.Buffer{})
	cmd.AddCommand(newGenerateCmd())

	mockGenerator.EXPECT().Expand(mock.Anything, m.Path("contracts"), mock.Anything).Return([]m.Path{"Bank.sol"}, nil)
	mockGenerator.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.TestRoot == "tests" &&
			args.Nesting == m.NestingFull &&
			args.IncludeInternal &&
			args.Report == "out/report.yaml" &&
			args.Emit.Mode == m.WriteOverwrite &&
			args.Emit.Collision == m.CollisionSuffix &&
			args.Emit.Extension == "spec.ts" &&
			args.Emit.Parallel == 4
	})).Return(m.RunResult{}, nil)

	cmd.SetArgs([]string{
		"generate",
		"--test", "tests",
		"--nesting", "full",
		"--internal",
		"--report", "out/report.yaml",
		"--mode", "overwrite",
		"--collision", "suffix",
		"--extension", "spec.ts",
		"--parallel", "4",
	})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestGenerateCmd_FailuresExitZeroByDefault(t *testing.T) {
	mockGenerator := withMockGenerator(t)
	cmd := newTestRootCmd(t, &bytes.Buffer{})
	cmd.AddCommand(newGenerateCmd())

	failed := m.RunResult{Units: []m.UnitResult{{Source: "Missing.sol", Err: domain.ErrSourceRead}}}
	mockGenerator.EXPECT().Expand(mock.Anything, mock.Anything, mock.Anything).Return([]m.Path{"Missing.sol"}, nil)
	mockGenerator.EXPECT().Generate(mock.Anything, mock.Anything).Return(failed, nil)

	cmd.SetArgs([]string{"generate", "Missing.sol"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestGenerateCmd_FailOnError(t *testing.T) {
	mockGenerator := withMockGenerator(t)
	cmd := newTestRootCmd(t, &bytes.Buffer{})
	cmd.AddCommand(newGenerateCmd())

	failed := m.RunResult{Units: []m.UnitResult{{Source: "Missing.sol", Err: domain.ErrSourceRead}}}
	mockGenerator.EXPECT().Expand(mock.Anything, mock.Anything, mock.Anything).Return([]m.Path{"Missing.sol"}, nil)
	mockGenerator.EXPECT().Generate(mock.Anything, mock.Anything).Return(failed, nil)

	cmd.SetArgs([]string{"generate", "--fail-on-error", "Missing.sol"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRunFailed))
}

func TestGenerateCmd_ExpandError(t *testing.T) {
	mockGenerator := withMockGenerator(t)
	cmd := newTestRootCmd(t, &bytes.Buffer{})
	cmd.AddCommand(newGenerateCmd())

	mockGenerator.EXPECT().Expand(mock.Anything, mock.Anything, []string{"[bad"}).Return(nil, errors.New("syntax error in pattern"))

	cmd.SetArgs([]string{"generate", "[bad"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve contracts")
}

func TestExecute(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	Execute()

	// Restore
	rootCmd = originalRootCmd
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	// Parent process: spawn subprocess
	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, sourceWatcher)
	assert.NotNil(t, rootCmd.Commands())
}
