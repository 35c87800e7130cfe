package sheet

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/moatteya/Turning-worksheet/cmd/common"
	"github.com/moatteya/Turning-worksheet/internal/logger"
	internalsheet "github.com/moatteya/Turning-worksheet/internal/sheet"
)

// TableRenderer handles the display of worksheet rows in a table format.
type TableRenderer struct {
	logger logger.Interface
	out    io.Writer
}

// NewTableRenderer creates a new TableRenderer instance.
func NewTableRenderer(log logger.Interface, out io.Writer) *TableRenderer {
	return &TableRenderer{
		logger: log,
		out:    out,
	}
}

// RenderTable formats and displays the logged passes in condensed columns.
func (r *TableRenderer) RenderTable(rows []internalsheet.Row) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Pass", "Operation", "Material", "Tool", "lw", "da", "db", "t'm (s)"})
	for _, row := range rows {
		t.AppendRow(table.Row{
			row.Pass,
			row.Operation,
			row.Material,
			row.ToolType,
			row.Length,
			row.DimensionA,
			row.DimensionB,
			fmt.Sprintf("%.2f", row.TravelCorrected),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "rows", len(rows)})
	t.Render()
	return nil
}

// newShowCommand creates the worksheet listing command.
func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the logged passes",
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
						"No worksheet at %q yet. Run \"turning-sheet run\" to create one.\n", store.Path())
					return nil
				}
				return fmt.Errorf("failed to read worksheet: %w", err)
			}
			if len(rows) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Worksheet %q has no rows.\n", store.Path())
				return nil
			}

			renderer := NewTableRenderer(deps.Logger, cmd.OutOrStdout())
			return renderer.RenderTable(rows)
		},
	}
}
