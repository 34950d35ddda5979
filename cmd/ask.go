package cmd

import (
	"fmt"
	"strings"

	"github.com/agrovista/agriquery/internal/query"
	"github.com/spf13/cobra"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a natural-language question about the dataset",
	Long: `Ask natural language questions about crop production and rainfall.

Examples:
  agriquery ask "Compare rainfall in Tamil Nadu and Kerala"
  agriquery ask "Top 3 crops in Punjab"
  agriquery ask "Trend of rice in Maharashtra"
  agriquery ask "Recommend paddy vs millet in Rajasthan"
  agriquery ask "Rainfall in Tamil Nadu in 2004"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		table, err := loadTable()
		if err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}

		engine := query.NewEngine(table)
		fmt.Println(engine.ProcessQuestion(question))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
