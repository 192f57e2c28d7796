package cmd

import (
	"github.com/spf13/cobra"

	"svcdeps.dev/pkg/svcdeps/internal/domain"
)

var viewServicesFlag []string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [blueprint]",
		Short: "View the recorded dependencies of each service",
		Long:  viewLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Blueprint:      blueprintPath(args),
				ControlScripts: configuredControlScripts(),
				Services:       viewServicesFlag,
			})
		},
	}

	cmd.Flags().StringArrayVarP(&viewServicesFlag, serviceFlagName, "s", nil, "only show this service, as NAME or MANAGER/NAME (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
