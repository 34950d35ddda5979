package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/agrovista/agriquery/internal/query"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question session",
	Long:  `Start an interactive loop that answers questions one at a time. Type 'exit' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}

		engine := query.NewEngine(table)

		fmt.Println("System ready for natural-language queries.")
		fmt.Println("Type your question (or 'exit' to quit). Examples:")
		fmt.Println(" - Compare rainfall in Tamil Nadu and Kerala")
		fmt.Println(" - Top 3 crops in Punjab")
		fmt.Println(" - Recommend paddy vs millet in Rajasthan")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\nAsk: ")
			if !scanner.Scan() {
				break
			}
			question := scanner.Text()
			if strings.ToLower(strings.TrimSpace(question)) == "exit" {
				fmt.Println("Exiting system.")
				break
			}
			fmt.Println(engine.ProcessQuestion(question))
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
