package etl

import (
	"testing"

	"github.com/agrovista/agriquery/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	agri := []AgriRow{
		{State: "Tamil Nadu", District: "Salem", Year: 2004, Season: "Kharif", Crop: "Rice", ProductionTonnes: 100},
		{State: "Tamil Nadu", District: "Erode", Year: 2004, Season: "Rabi", Crop: "Wheat", ProductionTonnes: 50},
		{State: "Kerala", District: "Idukki", Year: 2005, Season: "Kharif", Crop: "Coconut", ProductionTonnes: 75},
		// No rainfall entry for this (state, year): dropped by the inner join.
		{State: "Punjab", District: "Ludhiana", Year: 2004, Season: "Rabi", Crop: "Wheat", ProductionTonnes: 200},
		// Missing year never joins.
		{State: "Tamil Nadu", District: "Salem", Year: dataset.MissingYear, Season: "Kharif", Crop: "Rice", ProductionTonnes: 10},
	}
	rain := []RainfallRow{
		{State: "Tamil Nadu", Year: 2004, RainfallMM: 950.2},
		{State: "Kerala", Year: 2005, RainfallMM: 2800.5},
		// Rainfall for a state with no production rows contributes nothing.
		{State: "Goa", Year: 2004, RainfallMM: 3000},
	}

	table := Merge(agri, rain)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, dataset.Record{
		State:            "Tamil Nadu",
		District:         "Salem",
		Year:             2004,
		Season:           "Kharif",
		Crop:             "Rice",
		ProductionTonnes: 100,
		RainfallMM:       950.2,
	}, table.Row(0))

	// Both Tamil Nadu rows share the 2004 rainfall value.
	assert.Equal(t, 950.2, table.Row(1).RainfallMM)
	assert.Equal(t, "Kerala", table.Row(2).State)
}

func TestMergeEmptyInputs(t *testing.T) {
	assert.Equal(t, 0, Merge(nil, nil).Len())
	assert.Equal(t, 0, Merge([]AgriRow{{State: "Kerala", Year: 2005}}, nil).Len())
}
