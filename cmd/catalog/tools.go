package catalog

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/moatteya/Turning-worksheet/cmd/common"
	internalcatalog "github.com/moatteya/Turning-worksheet/internal/catalog"
	"github.com/moatteya/Turning-worksheet/internal/logger"
)

// ToolsRenderer handles the display of tool type codes in a table format.
type ToolsRenderer struct {
	logger logger.Interface
	out    io.Writer
}

// NewToolsRenderer creates a new ToolsRenderer instance.
func NewToolsRenderer(log logger.Interface, out io.Writer) *ToolsRenderer {
	return &ToolsRenderer{
		logger: log,
		out:    out,
	}
}

// RenderTable formats and displays the tool types.
func (r *ToolsRenderer) RenderTable(tools []internalcatalog.ToolType) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Code", "Tooling"})
	for _, tool := range tools {
		t.AppendRow(table.Row{tool.Code, tool.Name})
	}
	t.Render()
	return nil
}

// newToolsCommand creates the tool type listing command.
func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tool type codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			renderer := NewToolsRenderer(deps.Logger, cmd.OutOrStdout())
			return renderer.RenderTable(internalcatalog.ToolTypes())
		},
	}
}
