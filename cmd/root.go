// Package cmd provides the root command and CLI setup for svcdeps.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"svcdeps.dev/pkg/svcdeps/internal/adapter"
	"svcdeps.dev/pkg/svcdeps/internal/controller"
	"svcdeps.dev/pkg/svcdeps/internal/domain"
)

var blueprintStore adapter.BlueprintStore
var workflow domain.Workflow
var ui controller.UI

// blueprintFlag is a root-level flag naming the blueprint file commands operate on.
var blueprintFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	blueprintStore = adapter.NewFileBlueprintStore()
	workflow = domain.NewWorkflow(blueprintStore, ui)
}

const blueprintHelp = `The blueprint is read from the first positional argument, the --blueprint
flag, or the "blueprint" key of svcdeps.yaml, in that order. Files ending in
.json are written back as JSON, anything else as YAML.`

const rootLongDescription = `svcdeps infers which files and source directories each service in a
configuration blueprint depends on. It lists the files installed by the
packages a service declares, scans the service's configuration files for
pathnames, and records every tracked file or source directory it finds.

` + blueprintHelp

const scanLongDescription = `Scan every service in the blueprint and record the files and source
directories it depends on. The blueprint is written back unless --dry-run is
set or nothing new was found.

` + blueprintHelp

const listLongDescription = `List the services in the blueprint with their declared packages, files,
sources and implied control script.

` + blueprintHelp

const viewLongDescription = `Show the recorded file and source dependencies of each service, optionally
restricted with --service NAME or --service MANAGER/NAME.

` + blueprintHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "svcdeps",
		Short: "Service dependency inference for configuration blueprints",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

// newRootCmd builds a fresh root command with its persistent flags, without subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&blueprintFlag, blueprintFlagName, "b",
			viper.GetString(blueprintKey),
			"blueprint file to read and update",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(blueprintFlagName), blueprintKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
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
// This is called by main.main(). An interrupt cancels the running command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
