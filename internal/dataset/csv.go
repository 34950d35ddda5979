package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvHeader is the column layout of the integrated dataset on disk,
// matching the merged table schema.
var csvHeader = []string{"state", "district", "year", "season", "crop", "production_tonnes", "rainfall_mm"}

// ReadCSV loads an integrated dataset from a CSV file written by WriteCSV.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset file: %w", err)
	}
	if len(records) == 0 {
		return NewTable(nil), nil
	}

	// Map header names to positions so column order does not matter.
	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset file missing column %q", name)
		}
	}

	rows := make([]Record, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Record{
			State:            rec[cols["state"]],
			District:         rec[cols["district"]],
			Year:             parseYear(rec[cols["year"]]),
			Season:           rec[cols["season"]],
			Crop:             rec[cols["crop"]],
			ProductionTonnes: parseFloat(rec[cols["production_tonnes"]]),
			RainfallMM:       parseFloat(rec[cols["rainfall_mm"]]),
		})
	}
	return NewTable(rows), nil
}

// WriteCSV saves the table as a CSV file with the integrated dataset layout.
func WriteCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		year := ""
		if r.HasYear() {
			year = strconv.Itoa(r.Year)
		}
		row := []string{
			r.State,
			r.District,
			year,
			r.Season,
			r.Crop,
			strconv.FormatFloat(r.ProductionTonnes, 'f', -1, 64),
			strconv.FormatFloat(r.RainfallMM, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// parseYear coerces a year field, returning MissingYear when unparseable.
func parseYear(s string) int {
	y, err := strconv.Atoi(s)
	if err != nil {
		return MissingYear
	}
	return y
}

// parseFloat coerces a numeric field, defaulting to 0 when unparseable.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
