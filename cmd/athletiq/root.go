package athletiq

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "athletiq",
	Short: "athletiq turns free-form French coaching text into structured plans",
	Long:  "athletiq is a local-first fitness and nutrition CLI: it parses AI-generated French text into structured workouts, recipes, shopping lists, nutrition estimates, and calorie-burn calculations.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
