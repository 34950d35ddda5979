package cmd

import (
	"fmt"

	"github.com/agrovista/agriquery/internal/dataset"
	"github.com/spf13/viper"
)

// loadTable opens the dataset store and reads the integrated table. Ask and
// chat both go through here; the table is loaded once per invocation and
// never mutated afterwards.
func loadTable() (*dataset.Table, error) {
	dbFile := viper.GetString("data.db_file")

	store, err := dataset.OpenStore(dbFile)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	table, err := store.Load()
	if err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("dataset at %s is empty: run 'agriquery sync' first", dbFile)
	}

	if viper.GetBool("debug") {
		fmt.Printf("Loaded %d records from %s\n", table.Len(), dbFile)
	}
	return table, nil
}
