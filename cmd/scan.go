package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svcdeps.dev/pkg/svcdeps/internal/domain"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

var scanParallelFlagValue uint
var scanTimeoutFlagValue int64
var scanFailFastFlagValue bool
var scanDryRunFlagValue bool
var scanRootFlagValue string
var metricsFileFlagValue string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [blueprint]",
		Short: "Infer service dependencies and record them in the blueprint",
		Long:  scanLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commands, err := configuredPackageCommands()
			if err != nil {
				return err
			}

			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				Blueprint:      blueprintPath(args),
				Threads:        viper.GetUint(scanParallelKey),
				CommandTimeout: commandTimeout(),
				FailFast:       viper.GetBool(scanFailFastKey),
				DryRun:         viper.GetBool(scanDryRunKey),
				Root:           viper.GetString(scanRootKey),
				MetricsFile:    m.Path(viper.GetString(metricsFileKey)),
				Commands:       commands,
				ControlScripts: configuredControlScripts(),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().UintVarP(&scanParallelFlagValue, scanParallelFlag, "p", viper.GetUint(scanParallelKey), "number of services resolved in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(scanParallelFlag), scanParallelKey)

	cmd.Flags().Int64Var(&scanTimeoutFlagValue, scanTimeoutFlag, viper.GetInt64(scanCommandTimeoutKey), "seconds a single package query may run")
	bindFlagToConfig(cmd.Flags().Lookup(scanTimeoutFlag), scanCommandTimeoutKey)

	cmd.Flags().BoolVar(&scanFailFastFlagValue, scanFailFastFlag, viper.GetBool(scanFailFastKey), "abort the scan on the first unreadable file")
	bindFlagToConfig(cmd.Flags().Lookup(scanFailFastFlag), scanFailFastKey)

	cmd.Flags().BoolVar(&scanDryRunFlagValue, scanDryRunFlag, viper.GetBool(scanDryRunKey), "report new dependencies without writing the blueprint")
	bindFlagToConfig(cmd.Flags().Lookup(scanDryRunFlag), scanDryRunKey)

	cmd.Flags().StringVar(&scanRootFlagValue, scanRootFlag, viper.GetString(scanRootKey), "directory dependency files are read beneath (e.g. a mounted image)")
	bindFlagToConfig(cmd.Flags().Lookup(scanRootFlag), scanRootKey)

	cmd.Flags().StringVar(&metricsFileFlagValue, metricsFileFlagName, viper.GetString(metricsFileKey), "write scan metrics in Prometheus textfile format")
	bindFlagToConfig(cmd.Flags().Lookup(metricsFileFlagName), metricsFileKey)
}
