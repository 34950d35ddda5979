package etl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRainfallFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "climate.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRainfallCSV(t *testing.T) {
	path := writeRainfallFixture(t, `SUBDIVISION,YEAR,JAN,ANNUAL
TAMIL NADU,2004,12.1,950.2
kerala,2005,80.0,2800.5
`)

	rows, err := ReadRainfallCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, RainfallRow{State: "Tamil Nadu", Year: 2004, RainfallMM: 950.2}, rows[0])
	assert.Equal(t, RainfallRow{State: "Kerala", Year: 2005, RainfallMM: 2800.5}, rows[1])
}

func TestReadRainfallCSVDropsBadYears(t *testing.T) {
	path := writeRainfallFixture(t, `SUBDIVISION,YEAR,ANNUAL
Kerala,notayear,2800
Kerala,2005,2900
`)

	rows, err := ReadRainfallCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2005, rows[0].Year)
}

func TestReadRainfallCSVCoercesBadRainfall(t *testing.T) {
	path := writeRainfallFixture(t, `SUBDIVISION,YEAR,ANNUAL
Kerala,2005,NA
`)

	rows, err := ReadRainfallCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].RainfallMM)
}

func TestReadRainfallCSVMissingColumn(t *testing.T) {
	path := writeRainfallFixture(t, "SUBDIVISION,YEAR\nKerala,2005\n")

	_, err := ReadRainfallCSV(path)
	assert.ErrorContains(t, err, "missing column")
}
