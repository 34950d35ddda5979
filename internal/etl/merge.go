package etl

import (
	"github.com/agrovista/agriquery/internal/dataset"
)

type stateYear struct {
	state string
	year  int
}

// Merge inner-joins production rows with rainfall rows on (state, year).
// Agriculture rows without a matching rainfall entry (or without a year)
// are dropped, as are rainfall entries for states that grow nothing.
func Merge(agri []AgriRow, rain []RainfallRow) *dataset.Table {
	rainfall := make(map[stateYear]float64, len(rain))
	for _, r := range rain {
		rainfall[stateYear{r.State, r.Year}] = r.RainfallMM
	}

	merged := make([]dataset.Record, 0, len(agri))
	for _, a := range agri {
		if a.Year == dataset.MissingYear {
			continue
		}
		mm, ok := rainfall[stateYear{a.State, a.Year}]
		if !ok {
			continue
		}
		merged = append(merged, dataset.Record{
			State:            a.State,
			District:         a.District,
			Year:             a.Year,
			Season:           a.Season,
			Crop:             a.Crop,
			ProductionTonnes: a.ProductionTonnes,
			RainfallMM:       mm,
		})
	}
	return dataset.NewTable(merged)
}
