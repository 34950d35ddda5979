package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/agrovista/agriquery/internal/datagov"
	"github.com/agrovista/agriquery/internal/dataset"
	"github.com/agrovista/agriquery/internal/etl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch and merge the integrated dataset",
	Long: `Fetch crop production records from data.gov.in, merge them with the
offline rainfall file on (state, year), and persist the integrated dataset
locally. Run this once before asking questions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := viper.GetString("datagov.api_key")
		if apiKey == "" {
			return fmt.Errorf("data.gov.in API key missing: set API_KEY in .env, datagov.api_key in the config file, or pass --api-key")
		}

		debug := viper.GetBool("debug")
		exportCSV, _ := cmd.Flags().GetString("export-csv")

		client := datagov.NewClientWithURL(
			apiKey,
			viper.GetString("datagov.resource_id"),
			viper.GetString("datagov.base_url"),
			debug,
		)
		client.SetPageSize(viper.GetInt("datagov.page_size"))

		fmt.Println("Fetching agriculture data from data.gov.in...")
		records, err := client.FetchAll(context.Background())
		if err != nil {
			return fmt.Errorf("failed to fetch agriculture data: %w", err)
		}
		if len(records) == 0 {
			return fmt.Errorf("no records fetched: check the API key and resource ID")
		}
		fmt.Printf("Total rows downloaded: %d\n", len(records))

		agri := etl.NormalizeAgri(records)

		fmt.Println("Loading rainfall data...")
		rain, err := etl.ReadRainfallCSV(viper.GetString("data.rainfall_file"))
		if err != nil {
			return fmt.Errorf("failed to load rainfall data: %w", err)
		}

		fmt.Println("Merging agriculture and rainfall datasets...")
		table := etl.Merge(agri, rain)
		if table.Len() == 0 {
			return fmt.Errorf("merge produced no rows: the datasets share no (state, year) pairs")
		}

		if err := os.MkdirAll(viper.GetString("data.dir"), 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		dbFile := viper.GetString("data.db_file")
		store, err := dataset.OpenStore(dbFile)
		if err != nil {
			return fmt.Errorf("failed to open dataset store: %w", err)
		}
		defer store.Close()
		if err := store.Save(table); err != nil {
			return fmt.Errorf("failed to save dataset: %w", err)
		}
		fmt.Printf("Integrated dataset saved at: %s (%d rows)\n", dbFile, table.Len())

		if exportCSV != "" {
			if err := dataset.WriteCSV(exportCSV, table); err != nil {
				return fmt.Errorf("failed to export CSV: %w", err)
			}
			fmt.Printf("CSV export written to: %s\n", exportCSV)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().String("export-csv", "", "also write the integrated dataset to a CSV file")
}
