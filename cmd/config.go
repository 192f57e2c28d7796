package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"svcdeps.dev/pkg/svcdeps/internal/domain"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "svcdeps"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	blueprintFlagName   = "blueprint"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
	scanParallelFlag    = "parallel"
	scanTimeoutFlag     = "timeout"
	scanFailFastFlag    = "fail-fast"
	scanDryRunFlag      = "dry-run"
	scanRootFlag        = "root"
	metricsFileFlagName = "metrics-file"
	serviceFlagName     = "service"

	blueprintKey          = "blueprint"
	scanParallelKey       = "scan.parallel"
	scanCommandTimeoutKey = "scan.command_timeout"
	scanFailFastKey       = "scan.fail_fast"
	scanDryRunKey         = "scan.dry_run"
	scanRootKey           = "scan.root"
	packageCommandsKey    = "packages.commands"
	controlScriptsKey     = "services.control_scripts"
	metricsFileKey        = "metrics.file"

	defaultBlueprint      = "blueprint.json"
	defaultScanParallel   = 1
	defaultCommandTimeout = 30 * time.Second

	envPrefix = "SVCDEPS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".svcdeps.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// setConfigDefaults points viper at svcdeps.yaml and the SVCDEPS_ environment
// and registers the default of every key.
func setConfigDefaults() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(blueprintKey, defaultBlueprint)
	viper.SetDefault(scanParallelKey, defaultScanParallel)
	viper.SetDefault(scanCommandTimeoutKey, int64(defaultCommandTimeout.Seconds()))
	viper.SetDefault(scanFailFastKey, false)
	viper.SetDefault(scanDryRunKey, false)
	viper.SetDefault(scanRootKey, "")
	viper.SetDefault(metricsFileKey, "")
	viper.SetDefault(packageCommandsKey, formatPackageCommands(domain.DefaultPackageCommands()))
	viper.SetDefault(controlScriptsKey, map[string]string(domain.DefaultControlScripts()))

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// parsePackageCommands splits each configured command line into an argv
// prefix using shell quoting rules.
func parsePackageCommands(raw map[string]string) (map[string][]string, error) {
	commands := make(map[string][]string, len(raw))

	for packageManager, line := range raw {
		argv, err := shlex.Split(line)
		if err != nil {
			return nil, fmt.Errorf("package command for %q: %w", packageManager, err)
		}

		commands[packageManager] = argv
	}

	return commands, nil
}

func formatPackageCommands(commands domain.PackageCommands) map[string]string {
	out := make(map[string]string, len(commands))
	for packageManager, argv := range commands {
		out[packageManager] = strings.Join(argv, " ")
	}

	return out
}

// configuredPackageCommands returns the built-in listing commands extended by config.
func configuredPackageCommands() (domain.PackageCommands, error) {
	parsed, err := parsePackageCommands(viper.GetStringMapString(packageCommandsKey))
	if err != nil {
		return nil, err
	}

	return domain.DefaultPackageCommands().With(parsed), nil
}

func configuredControlScripts() domain.ControlScripts {
	return domain.DefaultControlScripts().With(viper.GetStringMapString(controlScriptsKey))
}

// commandTimeout reads scan.command_timeout as seconds; non-positive values fall back to the default.
func commandTimeout() time.Duration {
	seconds := viper.GetInt64(scanCommandTimeoutKey)
	if seconds <= 0 {
		return defaultCommandTimeout
	}

	return time.Duration(seconds) * time.Second
}

// blueprintPath prefers the positional argument over the --blueprint flag and config.
func blueprintPath(args []string) m.Path {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(blueprintKey))
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

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs a rotating file logger as the slog default.
//
// It logs at the configured level, or Debug when verbose is set.
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

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
