// Package cmd provides the root command and CLI setup for testgen.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"testgen.dev/pkg/testgen/internal/adapter"
	"testgen.dev/pkg/testgen/internal/controller"
	"testgen.dev/pkg/testgen/internal/domain"
	m "testgen.dev/pkg/testgen/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var sourceWatcher adapter.SourceWatcher

var (
	contractsFlag     string
	testRootFlag      string
	nestingFlag       string
	extensionFlag     string
	modeFlag          string
	collisionFlag     string
	internalFlag      bool
	templateFlag      string
	variableTypesFlag []string
	runParallelFlag   int
	failOnErrorFlag   bool
	reportFlag        string
	verboseFlag       bool
)

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	sourceWatcher = adapter.NewSourceWatcher()
}

// newGenerator wires the generator so its output goes to cmd.
var newGenerator = func(cmd *cobra.Command) domain.Generator {
	return domain.NewGenerator(fsAdapter, reportStore, sourceWatcher, controller.NewSimpleUI(cmd))
}

const pathPatternsHelp = `Contracts are given relative to the contracts root (--contracts):
  - Bank/Bank.sol Token.sol   scaffold the listed contracts
  - "Vaults/**/*.sol"         doublestar glob, quote it to stop shell expansion
  - (no arguments)            every .sol file under the contracts root`

const rootLongDescription = `Testgen reads Solidity contract sources, finds their public state
variables and their external and public functions, and writes one skipped
hardhat/mocha test stub per symbol under a test tree mirroring the
contracts tree.

` + pathPatternsHelp

const generateLongDescription = `Generate test stubs for the given contracts (default: all contracts).

` + pathPatternsHelp

const planLongDescription = `Show, as unified diffs, what generate would write. Nothing is created.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testgen [contracts...]",
		Short: "Solidity test scaffolding tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		// Positional contracts must reach runGenerate even though the root
		// command has subcommands.
		Args:         cobra.ArbitraryArgs,
		RunE:         runGenerate,
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&contractsFlag, contractsFlagName, "c", viper.GetString(contractsConfigKey), "contracts root directory")
	bindFlagToConfig(flags.Lookup(contractsFlagName), contractsConfigKey)

	flags.StringVarP(&testRootFlag, testRootFlagName, "t", viper.GetString(testRootConfigKey), "test root directory")
	bindFlagToConfig(flags.Lookup(testRootFlagName), testRootConfigKey)

	flags.StringVar(&nestingFlag, nestingFlagName, viper.GetString(nestingConfigKey), "folder mirroring: first (first segment only) or full")
	bindFlagToConfig(flags.Lookup(nestingFlagName), nestingConfigKey)

	flags.StringVarP(&extensionFlag, extensionFlagName, "e", viper.GetString(extensionConfigKey), "test file extension")
	bindFlagToConfig(flags.Lookup(extensionFlagName), extensionConfigKey)

	flags.StringVarP(&modeFlag, modeFlagName, "m", viper.GetString(modeConfigKey), "write mode: append or overwrite")
	bindFlagToConfig(flags.Lookup(modeFlagName), modeConfigKey)

	flags.StringVar(&collisionFlag, collisionFlagName, viper.GetString(collisionConfigKey), "same-name symbols: duplicate, fail or suffix")
	bindFlagToConfig(flags.Lookup(collisionFlagName), collisionConfigKey)

	flags.BoolVar(&internalFlag, internalFlagName, viper.GetBool(internalConfigKey), "also scaffold internal and private functions")
	bindFlagToConfig(flags.Lookup(internalFlagName), internalConfigKey)

	flags.StringVar(&templateFlag, templateFlagName, viper.GetString(templateConfigKey), "text/template file used instead of the built-in hardhat stub")
	bindFlagToConfig(flags.Lookup(templateFlagName), templateConfigKey)

	flags.StringSliceVar(&variableTypesFlag, variableTypesFlagName, viper.GetStringSlice(variableTypesConfigKey), "type keywords of extracted public variables")
	bindFlagToConfig(flags.Lookup(variableTypesFlagName), variableTypesConfigKey)

	flags.IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of concurrent stub writes per contract")
	bindFlagToConfig(flags.Lookup(runParallelFlagName), runParallelConfigKey)

	flags.BoolVar(&failOnErrorFlag, failOnErrorFlagName, viper.GetBool(failOnErrorConfigKey), "exit non-zero when any contract or stub failed")
	bindFlagToConfig(flags.Lookup(failOnErrorFlagName), failOnErrorConfigKey)

	flags.StringVarP(&reportFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "write a YAML run report to this path")
	bindFlagToConfig(flags.Lookup(reportFlagName), reportConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "debug logging")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// expandArgs resolves positional arguments into contract sources.
func expandArgs(cmd *cobra.Command, generator domain.Generator, root m.Path, args []string) ([]m.Path, error) {
	sources, err := generator.Expand(cmd.Context(), root, args)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contracts: %w", err)
	}

	return sources, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	generator := newGenerator(cmd)
	genArgs := generateArgsFromConfig()

	sources, err := expandArgs(cmd, generator, genArgs.ContractsRoot, args)
	if err != nil {
		return err
	}

	genArgs.Sources = sources

	run, err := generator.Generate(cmd.Context(), genArgs)
	if err != nil {
		return err
	}

	if viper.GetBool(failOnErrorConfigKey) && run.HasErrors() {
		return fmt.Errorf("%w: %d failed", domain.ErrRunFailed, run.Failed())
	}

	return nil
}
