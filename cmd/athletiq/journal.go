package athletiq

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
)

var (
	journalDate string
	journalJSON bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the daily intake/burn journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if strings.TrimSpace(journalDate) != "" {
			parsed, err := time.ParseInLocation("2006-01-02", journalDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", journalDate)
			}
			day = parsed
		}
		return withDB(func(sqldb *sql.DB) error {
			summary, err := service.DailyJournal(sqldb, day)
			if err != nil {
				return err
			}
			if journalJSON {
				return printJSON(cmd, summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Journal du %s\n", summary.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Apports : %d kcal (%d repas) — %dg glucides, %dg protéines, %dg lipides\n",
				summary.CaloriesIn, summary.Meals, summary.Carbs, summary.Protein, summary.Fat)
			fmt.Fprintf(cmd.OutOrStdout(), "Dépenses : %d kcal (%d séances)\n", summary.CaloriesOut, summary.Workouts)
			fmt.Fprintf(cmd.OutOrStdout(), "Bilan : %d kcal\n", summary.CaloriesIn-summary.CaloriesOut)
			return nil
		})
	},
}

func init() {
	journalCmd.Flags().StringVar(&journalDate, "date", "", "Day to summarize (YYYY-MM-DD, default today)")
	journalCmd.Flags().BoolVar(&journalJSON, "json", false, "Print the summary as JSON")
	rootCmd.AddCommand(journalCmd)
}
