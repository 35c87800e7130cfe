package sheet

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// worksheetName is the tab the export writes into.
const worksheetName = "Passes"

// ExportXLSX writes the logged passes to an xlsx workbook at path, keeping
// the CSV column order. Numeric cells are written as numbers so spreadsheet
// formulas can consume them directly; unresolved times become the text "NaN".
func ExportXLSX(rows []Row, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", worksheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(worksheetName, cell, title); err != nil {
			return fmt.Errorf("write header cell %s: %w", cell, err)
		}
	}

	for i, row := range rows {
		for col, value := range row.cells() {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(worksheetName, cell, value); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// cells returns the row in column order with numeric fields typed as float64.
func (r Row) cells() []any {
	num := func(v float64) any {
		if math.IsNaN(v) {
			return "NaN"
		}
		return v
	}
	return []any{
		r.ToolType,
		num(r.SetupHours),
		num(r.LoadUnloadSeconds),
		num(r.PositioningSeconds),
		num(r.Length),
		num(r.DimensionA),
		num(r.DimensionB),
		num(r.Volume),
		num(r.CuttingEnergy),
		num(r.Power),
		num(r.PowerLimited),
		num(r.SurfaceRate),
		"",
		num(r.Area),
		num(r.Recommended),
		num(r.WearCorrected),
		num(r.TravelCorrected),
		r.Pass,
		r.Operation,
		r.Material,
		r.Notes,
	}
}
