package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage agriquery configuration",
	Long:  `Configure agriquery settings including the data.gov.in API key and data file locations.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a default configuration file in your home directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configPath := filepath.Join(home, ".agriquery.yaml")

		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Configuration file already exists at %s\n", configPath)
			return nil
		}

		defaultConfig := `# Agriquery Configuration
# Copy this to ~/.agriquery.yaml and customize for your setup

datagov:
  # API key for api.data.gov.in (can also be set via API_KEY in a local .env)
  api_key: ""
  resource_id: 35be999b-0208-4354-b557-f6ca9a5355de
  base_url: https://api.data.gov.in
  page_size: 5000

data:
  dir: data
  rainfall_file: data/climate.csv
  db_file: data/integrated.db
`

		if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("error writing config file: %w", err)
		}

		fmt.Printf("Configuration file created at %s\n", configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long:  `Print the merged configuration (file, environment, flags) as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := viper.AllSettings()

		// Never print the API key itself.
		if dg, ok := settings["datagov"].(map[string]any); ok {
			if key, ok := dg["api_key"].(string); ok && key != "" {
				dg["api_key"] = "(set)"
			}
		}

		out, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("error rendering config: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
