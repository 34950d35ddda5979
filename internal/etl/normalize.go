// Package etl turns raw data.gov.in records and the offline rainfall CSV
// into the integrated dataset the query engine runs on.
package etl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agrovista/agriquery/internal/datagov"
	"github.com/agrovista/agriquery/internal/dataset"
)

// AgriRow is a cleaned crop production row, before the rainfall merge.
type AgriRow struct {
	State            string
	District         string
	Year             int
	Season           string
	Crop             string
	ProductionTonnes float64
}

// NormalizeAgri standardizes raw API records: source columns are renamed by
// substring of their lower-cased name, state is title-cased and trimmed,
// year is coerced to an integer (invalid -> missing), production to a float
// (invalid -> 0). Rows without a state are dropped.
func NormalizeAgri(records []datagov.RawRecord) []AgriRow {
	rows := make([]AgriRow, 0, len(records))
	for _, rec := range records {
		var row AgriRow
		for col, val := range rec {
			switch canonicalColumn(col) {
			case "state":
				row.State = dataset.TitleCase(toString(val))
			case "district":
				row.District = toString(val)
			case "year":
				row.Year = toYear(val)
			case "season":
				row.Season = strings.TrimSpace(toString(val))
			case "crop":
				row.Crop = strings.TrimSpace(toString(val))
			case "production_tonnes":
				row.ProductionTonnes = toFloat(val)
			}
		}
		if row.State == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// canonicalColumn maps a source column name to its integrated-schema name,
// or "" if the column is not part of the schema. Match order mirrors the
// rename precedence of the original dataset: state before year before crop.
func canonicalColumn(col string) string {
	cl := strings.ToLower(col)
	switch {
	case strings.Contains(cl, "state"):
		return "state"
	case strings.Contains(cl, "district"):
		return "district"
	case strings.Contains(cl, "year"):
		return "year"
	case strings.Contains(cl, "season"):
		return "season"
	case strings.Contains(cl, "crop"):
		return "crop"
	case strings.Contains(cl, "production"):
		return "production_tonnes"
	}
	return ""
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", s)
	}
}

func toYear(v any) int {
	switch y := v.(type) {
	case float64:
		return int(y)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(y))
		if err != nil {
			return dataset.MissingYear
		}
		return n
	default:
		return dataset.MissingYear
	}
}

func toFloat(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
