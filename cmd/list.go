package cmd

import (
	"github.com/spf13/cobra"

	"svcdeps.dev/pkg/svcdeps/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [blueprint]",
		Short: "List services and their declared dependencies",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				Blueprint:      blueprintPath(args),
				ControlScripts: configuredControlScripts(),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
