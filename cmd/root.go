package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "agriquery",
	Short: "Natural-language queries over agriculture and rainfall data",
	Long: `Agriquery answers free-text questions about an integrated
agriculture-production/rainfall dataset. Run 'agriquery sync' once to fetch
and merge the data, then ask questions with 'ask' or start a 'chat' session.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.agriquery.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output (shows fetch progress + internal diagnostics)")
	rootCmd.PersistentFlags().String("api-key", "", "data.gov.in API key (or set API_KEY in .env)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("datagov.api_key", rootCmd.PersistentFlags().Lookup("api-key"))

	viper.SetDefault("datagov.base_url", "https://api.data.gov.in")
	viper.SetDefault("datagov.resource_id", "35be999b-0208-4354-b557-f6ca9a5355de")
	viper.SetDefault("datagov.page_size", 5000)
	viper.SetDefault("data.dir", "data")
	viper.SetDefault("data.rainfall_file", "data/climate.csv")
	viper.SetDefault("data.db_file", "data/integrated.db")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// The API key conventionally lives in a local .env file.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".agriquery")
	}

	viper.AutomaticEnv()
	viper.BindEnv("datagov.api_key", "API_KEY")

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}
