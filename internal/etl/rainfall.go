package etl

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/agrovista/agriquery/internal/dataset"
)

// RainfallRow is one cleaned row of the offline rainfall dataset.
type RainfallRow struct {
	State      string
	Year       int
	RainfallMM float64
}

// ReadRainfallCSV loads the offline rainfall file. The source layout uses
// SUBDIVISION/YEAR/ANNUAL columns, which map to state/year/rainfall_mm.
// State names are title-cased and trimmed, rainfall defaults to 0 when
// unparseable, and rows without a valid year are dropped.
func ReadRainfallCSV(path string) ([]RainfallRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rainfall file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse rainfall file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("rainfall file is empty")
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, name := range []string{"SUBDIVISION", "YEAR", "ANNUAL"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("rainfall file missing column %q", name)
		}
	}

	rows := make([]RainfallRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) <= cols["ANNUAL"] {
			continue
		}
		year, err := strconv.Atoi(rec[cols["YEAR"]])
		if err != nil {
			continue
		}
		rain, err := strconv.ParseFloat(rec[cols["ANNUAL"]], 64)
		if err != nil {
			rain = 0
		}
		rows = append(rows, RainfallRow{
			State:      dataset.TitleCase(rec[cols["SUBDIVISION"]]),
			Year:       year,
			RainfallMM: rain,
		})
	}
	return rows, nil
}
