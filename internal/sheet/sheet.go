package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// header is the fixed legacy column order consumed by spreadsheet tooling.
// The feed-speed column is reserved and always written empty.
var header = []string{
	"Tool Type (HCD)",
	"Setup Time Per batch (hr)",
	"Load and Unload Time (s)",
	"Tool Positioning Time (s)",
	"Dimension (in.) lw",
	"Dimension (in.) da",
	"Dimension (in.) db",
	"Volume (in.^3) vm",
	"Specific Cutting Energy (hp min/in.^3) ps",
	"Available Power (hp) Pm",
	"Machining Time Max Power (s) tmp",
	"Rate of Surface Generation (in.^2/min) vf",
	"Milling Feed Speed (in./min) vt",
	"Area (in.^2) Am",
	"Machining Time Recommended conditions (s) tmc",
	"Time Corrected for Tool Wear (s) tm",
	"Time Corrected for Extra Tool Travel (s) t'm",
	"Pass",
	"Operation",
	"Material",
	"Notes",
}

// Row is one logged pass.
type Row struct {
	ToolType           string
	SetupHours         float64
	LoadUnloadSeconds  float64
	PositioningSeconds float64
	Length             float64
	DimensionA         float64
	DimensionB         float64
	Volume             float64
	CuttingEnergy      float64
	Power              float64
	PowerLimited       float64
	SurfaceRate        float64
	Area               float64
	Recommended        float64
	WearCorrected      float64
	TravelCorrected    float64
	Pass               string
	Operation          string
	Material           string
	Notes              string
}

// Store appends pass rows to a CSV worksheet.
type Store struct {
	path string
}

// NewStore returns a store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the worksheet location.
func (s *Store) Path() string { return s.path }

// Append writes the given rows to the worksheet. The header is written only
// when the file does not exist yet; appending to an existing file, even an
// empty one, never repeats it.
func (s *Store) Append(rows ...Row) error {
	needHeader := false
	if _, err := os.Stat(s.path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat worksheet: %w", err)
		}
		needHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open worksheet: %w", err)
	}

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(header); err != nil {
			f.Close()
			return fmt.Errorf("write worksheet header: %w", err)
		}
	}
	for _, row := range rows {
		if err := w.Write(row.record()); err != nil {
			f.Close()
			return fmt.Errorf("write worksheet row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush worksheet: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close worksheet: %w", err)
	}
	return nil
}

// List reads every logged pass back from the worksheet.
func (s *Store) List() ([]Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open worksheet: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}

	rows := make([]Row, 0, len(records))
	for i, record := range records {
		if i == 0 && len(record) > 0 && record[0] == header[0] {
			continue
		}
		row, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("parse worksheet row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r Row) record() []string {
	return []string{
		r.ToolType,
		formatFloat(r.SetupHours),
		formatFloat(r.LoadUnloadSeconds),
		formatFloat(r.PositioningSeconds),
		formatFloat(r.Length),
		formatFloat(r.DimensionA),
		formatFloat(r.DimensionB),
		formatFloat(r.Volume),
		formatFloat(r.CuttingEnergy),
		formatFloat(r.Power),
		formatFloat(r.PowerLimited),
		formatFloat(r.SurfaceRate),
		"", // reserved feed-speed column
		formatFloat(r.Area),
		formatFloat(r.Recommended),
		formatFloat(r.WearCorrected),
		formatFloat(r.TravelCorrected),
		r.Pass,
		r.Operation,
		r.Material,
		r.Notes,
	}
}

func parseRecord(record []string) (Row, error) {
	if len(record) != len(header) {
		return Row{}, fmt.Errorf("expected %d columns, got %d", len(header), len(record))
	}

	row := Row{
		ToolType:  record[0],
		Pass:      record[17],
		Operation: record[18],
		Material:  record[19],
		Notes:     record[20],
	}

	numeric := []struct {
		idx int
		dst *float64
	}{
		{1, &row.SetupHours},
		{2, &row.LoadUnloadSeconds},
		{3, &row.PositioningSeconds},
		{4, &row.Length},
		{5, &row.DimensionA},
		{6, &row.DimensionB},
		{7, &row.Volume},
		{8, &row.CuttingEnergy},
		{9, &row.Power},
		{10, &row.PowerLimited},
		{11, &row.SurfaceRate},
		{13, &row.Area},
		{14, &row.Recommended},
		{15, &row.WearCorrected},
		{16, &row.TravelCorrected},
	}
	for _, col := range numeric {
		v, err := strconv.ParseFloat(record[col.idx], 64)
		if err != nil {
			return Row{}, fmt.Errorf("column %q: %w", header[col.idx], err)
		}
		*col.dst = v
	}
	return row, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
