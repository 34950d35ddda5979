package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	rows := []Record{
		{State: "Tamil Nadu", District: "Salem", Year: 2004, Season: "Kharif", Crop: "Rice", ProductionTonnes: 123.45, RainfallMM: 950.2},
		{State: "Kerala", District: "Idukki", Year: MissingYear, Season: "Rabi", Crop: "Coconut", ProductionTonnes: 0, RainfallMM: 2800},
	}
	path := filepath.Join(t.TempDir(), "integrated_dataset.csv")

	require.NoError(t, WriteCSV(path, NewTable(rows)))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, len(rows), got.Len())
	for i, want := range rows {
		assert.Equal(t, want, got.Row(i))
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("state,year\nKerala,2004\n"), 0o644))

	_, err := ReadCSV(path)
	assert.ErrorContains(t, err, "missing column")
}

func TestReadCSVCoercesBadNumerics(t *testing.T) {
	content := "state,district,year,season,crop,production_tonnes,rainfall_mm\n" +
		"Kerala,Idukki,notayear,Kharif,Rice,NA,2800\n"
	path := filepath.Join(t.TempDir(), "coerce.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, MissingYear, got.Row(0).Year)
	assert.Equal(t, 0.0, got.Row(0).ProductionTonnes)
	assert.Equal(t, 2800.0, got.Row(0).RainfallMM)
}
