package sheet

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/moatteya/Turning-worksheet/cmd/common"
	internalsheet "github.com/moatteya/Turning-worksheet/internal/sheet"
)

// newExportCommand creates the XLSX export command.
func newExportCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the worksheet to an XLSX workbook",
		Long: `Export writes the logged passes to an XLSX workbook with the same
column order as the CSV worksheet, numeric cells typed as numbers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			store := internalsheet.NewStore(deps.Config.Sheet.Path)
			rows, err := store.List()
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					fmt.Fprintf(cmd.OutOrStdout(),
						"No worksheet at %q yet; nothing to export.\n", store.Path())
					return nil
				}
				return fmt.Errorf("failed to read worksheet: %w", err)
			}

			if err := internalsheet.ExportXLSX(rows, outPath); err != nil {
				deps.Logger.WithError(err).Error("worksheet export failed")
				return fmt.Errorf("failed to export worksheet: %w", err)
			}
			deps.Logger.Info("worksheet exported", "rows", len(rows), "out", outPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %q.\n", len(rows), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "turning_sheet.xlsx", "output workbook path")

	return cmd
}
