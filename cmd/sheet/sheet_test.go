package sheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalsheet "github.com/moatteya/Turning-worksheet/internal/sheet"
)

func seedWorksheet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "turning_sheet.csv")
	store := internalsheet.NewStore(path)
	require.NoError(t, store.Append(
		internalsheet.Row{
			ToolType: "C", Length: 6, DimensionA: 2, DimensionB: 1.9,
			TravelCorrected: 94.94, Pass: "Rough", Operation: "turn/thread",
			Material: "alloy steel",
		},
		internalsheet.Row{
			ToolType: "C", Length: 6, DimensionA: 1.9, DimensionB: 1.8,
			TravelCorrected: 90.22, Pass: "Finish", Operation: "turn/thread",
			Material: "alloy steel",
		},
	))
	return path
}

func TestShowCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("sheet.path", seedWorksheet(t))

	cmd := Command()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"show"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Rough")
	assert.Contains(t, out.String(), "Finish")
	assert.Contains(t, out.String(), "turn/thread")
	assert.Contains(t, out.String(), "94.94")
}

func TestShowCommandMissingWorksheet(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("sheet.path", filepath.Join(t.TempDir(), "absent.csv"))

	cmd := Command()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"show"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "No worksheet at")
}

func TestExportCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("sheet.path", seedWorksheet(t))
	outPath := filepath.Join(t.TempDir(), "turning_sheet.xlsx")

	cmd := Command()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"export", "--out", outPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Exported 2 rows")

	_, err := os.Stat(outPath)
	require.NoError(t, err)
}
