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

// MaterialsRenderer handles the display of material presets in a table format.
type MaterialsRenderer struct {
	logger logger.Interface
	out    io.Writer
}

// NewMaterialsRenderer creates a new MaterialsRenderer instance.
func NewMaterialsRenderer(log logger.Interface, out io.Writer) *MaterialsRenderer {
	return &MaterialsRenderer{
		logger: log,
		out:    out,
	}
}

// RenderTable formats and displays the material presets.
func (r *MaterialsRenderer) RenderTable(materials []internalcatalog.Material) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "Material", "Density (lb/in^3)", "p_s (hp min/in^3)"})
	for i, m := range materials {
		t.AppendRow(table.Row{i + 1, m.Name, m.Density, m.CuttingEnergy})
	}
	t.Render()

	fmt.Fprintf(r.out, "Plus %q: both values prompted during the session.\n", internalcatalog.CustomMaterial)
	return nil
}

// newMaterialsCommand creates the materials listing command.
func newMaterialsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the built-in material presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			renderer := NewMaterialsRenderer(deps.Logger, cmd.OutOrStdout())
			return renderer.RenderTable(internalcatalog.Materials())
		},
	}
}
