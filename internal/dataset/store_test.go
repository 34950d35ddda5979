package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "integrated.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveLoad(t *testing.T) {
	store := openTestStore(t)

	rows := []Record{
		{State: "Tamil Nadu", District: "Salem", Year: 2004, Season: "Kharif", Crop: "Rice", ProductionTonnes: 123.45, RainfallMM: 950.2},
		{State: "Kerala", District: "Idukki", Year: MissingYear, Season: "Rabi", Crop: "Coconut", ProductionTonnes: 10, RainfallMM: 2800},
	}
	require.NoError(t, store.Save(NewTable(rows)))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, len(rows), got.Len())
	for i, want := range rows {
		assert.Equal(t, want, got.Row(i))
	}

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, len(rows), n)
}

func TestStoreSaveReplacesExistingData(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(NewTable([]Record{
		{State: "Punjab", Year: 2000, Crop: "Wheat"},
		{State: "Punjab", Year: 2001, Crop: "Wheat"},
	})))
	require.NoError(t, store.Save(NewTable([]Record{
		{State: "Kerala", Year: 2002, Crop: "Rice"},
	})))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "Kerala", got.Row(0).State)
}

func TestStoreLoadEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
