// Package sheet implements the commands that read the pass worksheet back:
// a condensed terminal view and an XLSX export for spreadsheet tooling.
package sheet

import (
	"github.com/spf13/cobra"
)

// Command creates the sheet command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Inspect and export the pass worksheet",
		Long:  `Inspect the logged passes and export them to other formats.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newShowCommand(),
		newExportCommand(),
	)

	return cmd
}
