package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"testgen.dev/pkg/testgen/internal/domain"
	m "testgen.dev/pkg/testgen/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "testgen"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	contractsFlagName     = "contracts"
	testRootFlagName      = "test"
	nestingFlagName       = "nesting"
	extensionFlagName     = "extension"
	modeFlagName          = "mode"
	collisionFlagName     = "collision"
	internalFlagName      = "internal"
	templateFlagName      = "template"
	variableTypesFlagName = "variable-types"
	runParallelFlagName   = "parallel"
	failOnErrorFlagName   = "fail-on-error"
	reportFlagName        = "report"
	verboseFlagName       = "verbose"

	contractsConfigKey     = "paths.contracts"
	testRootConfigKey      = "paths.test"
	nestingConfigKey       = "paths.nesting"
	extensionConfigKey     = "emit.extension"
	modeConfigKey          = "emit.mode"
	collisionConfigKey     = "emit.collision"
	internalConfigKey      = "emit.internal"
	templateConfigKey      = "emit.template"
	variableTypesConfigKey = "extract.variable_types"
	runParallelConfigKey   = "run.parallel"
	failOnErrorConfigKey   = "run.fail_on_error"
	reportConfigKey        = "report"

	defaultContractsDir = "contracts"
	defaultTestDir      = "test"
	defaultRunParallel  = 1
	defaultFailOnError  = false
	defaultInternal     = false

	envPrefix = "TESTGEN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".testgen.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	initConfig()
}

// initConfig registers the config file, env binding and defaults with viper.
func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(contractsConfigKey, defaultContractsDir)
	viper.SetDefault(testRootConfigKey, defaultTestDir)
	viper.SetDefault(nestingConfigKey, string(m.NestingFirst))
	viper.SetDefault(extensionConfigKey, domain.DefaultExtension)
	viper.SetDefault(modeConfigKey, string(m.WriteAppend))
	viper.SetDefault(collisionConfigKey, string(m.CollisionDuplicate))
	viper.SetDefault(internalConfigKey, defaultInternal)
	viper.SetDefault(templateConfigKey, "")
	viper.SetDefault(variableTypesConfigKey, domain.DefaultVariableTypes)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(failOnErrorConfigKey, defaultFailOnError)
	viper.SetDefault(reportConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// generateArgsFromConfig collects the generator arguments from flags, env
// and testgen.yaml, in viper's precedence order.
func generateArgsFromConfig() domain.GenerateArgs {
	return domain.GenerateArgs{
		ContractsRoot:   m.Path(viper.GetString(contractsConfigKey)),
		TestRoot:        m.Path(viper.GetString(testRootConfigKey)),
		Nesting:         m.ParseNestingMode(viper.GetString(nestingConfigKey)),
		IncludeInternal: viper.GetBool(internalConfigKey),
		VariableTypes:   viper.GetStringSlice(variableTypesConfigKey),
		Template:        m.Path(viper.GetString(templateConfigKey)),
		Report:          m.Path(viper.GetString(reportConfigKey)),
		Emit: domain.EmitOptions{
			Extension: viper.GetString(extensionConfigKey),
			Mode:      m.ParseWriteMode(viper.GetString(modeConfigKey)),
			Collision: m.ParseCollisionPolicy(viper.GetString(collisionConfigKey)),
			Parallel:  viper.GetInt(runParallelConfigKey),
		},
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler).With("tool", configBaseName)
	slog.SetDefault(globalLogger)
}
