// Package catalog implements the commands that display the material presets
// and tool type codes available to a worksheet session.
package catalog

import (
	"github.com/spf13/cobra"
)

// Command creates the catalog command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the material and tooling catalogs",
		Long:  `Inspect the built-in material presets and tool type codes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newMaterialsCommand(),
		newToolsCommand(),
	)

	return cmd
}
