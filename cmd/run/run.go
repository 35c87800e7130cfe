// Package run implements the interactive worksheet session command.
package run

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moatteya/Turning-worksheet/cmd/common"
	"github.com/moatteya/Turning-worksheet/internal/machining"
	"github.com/moatteya/Turning-worksheet/internal/session"
	internalsheet "github.com/moatteya/Turning-worksheet/internal/sheet"
)

// Command creates the run command.
func Command() *cobra.Command {
	var sheetPath string
	var variant string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an interactive worksheet session",
		Long: `Run prompts for workpiece geometry, material, tooling, and per-pass
cutting parameters, computes machining times and per-part costs, and appends
one row per pass to the worksheet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			if sheetPath != "" {
				deps.Config.Sheet.Path = sheetPath
			}
			if variant != "" {
				if _, parseErr := machining.ParseVariant(variant); parseErr != nil {
					return parseErr
				}
				deps.Config.Formulas.Variant = variant
			}

			store := internalsheet.NewStore(deps.Config.Sheet.Path)
			worker := session.New(os.Stdin, cmd.OutOrStdout(), store, deps.Config,
				deps.Logger.WithComponent("session"))
			if err := worker.Start(cmd.Context()); err != nil {
				deps.Logger.WithError(err).Error("session failed")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sheetPath, "sheet", "o", "", "worksheet CSV path (overrides config)")
	cmd.Flags().StringVar(&variant, "variant", "", "formula variant: per-op or simplified")

	return cmd
}
