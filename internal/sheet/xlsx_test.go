package sheet

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turning_sheet.xlsx")
	require.NoError(t, ExportXLSX([]Row{roughRow(), finishRow()}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Passes")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Tool Type (HCD)", rows[0][0])
	assert.Equal(t, "Notes", rows[0][20])

	got, err := f.GetCellValue("Passes", "A2")
	require.NoError(t, err)
	assert.Equal(t, "C", got)

	got, err = f.GetCellValue("Passes", "R3")
	require.NoError(t, err)
	assert.Equal(t, "Finish", got)

	got, err = f.GetCellValue("Passes", "E2")
	require.NoError(t, err)
	assert.Equal(t, "6", got)
}

func TestExportXLSXKeepsNaNReadable(t *testing.T) {
	row := roughRow()
	row.PowerLimited = math.NaN()
	row.WearCorrected = math.NaN()

	path := filepath.Join(t.TempDir(), "turning_sheet.xlsx")
	require.NoError(t, ExportXLSX([]Row{row}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Passes", "K2")
	require.NoError(t, err)
	assert.Equal(t, "NaN", got)

	got, err = f.GetCellValue("Passes", "P2")
	require.NoError(t, err)
	assert.Equal(t, "NaN", got)
}

func TestExportXLSXEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turning_sheet.xlsx")
	require.NoError(t, ExportXLSX(nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Passes")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
