package athletiq

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
	"github.com/Matt777777777/AthletIQ-sub000/internal/synthesis"
)

var (
	caloriesFile string
	caloriesJSON bool
	caloriesLog  bool
)

var caloriesCmd = &cobra.Command{
	Use:   "calories [text...]",
	Short: "Estimate calories burned by a workout description",
	Long:  "calories reads a workout description and estimates the energy burned using the stored profile. Without a profile it falls back to conservative defaults.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, caloriesFile)
		if err != nil {
			return err
		}

		var calc model.WorkoutCalorieCalculation
		err = withDB(func(sqldb *sql.DB) error {
			profile, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			calc = synthesis.CalculateWorkoutCalories(text, profile)
			if caloriesLog {
				id, err := service.LogWorkout(sqldb, calc, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %d\n", id)
			}
			return nil
		})
		if err != nil {
			return err
		}

		if caloriesJSON {
			return printJSON(cmd, calc)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d kcal — %d min, intensité %s (%s)\n",
			calc.Calories, calc.DurationMin, calc.Intensity, calc.ActivityType)
		return nil
	},
}

func init() {
	caloriesCmd.Flags().StringVar(&caloriesFile, "file", "", "Read input text from a file")
	caloriesCmd.Flags().BoolVar(&caloriesLog, "log", false, "Record the burn in the daily journal")
	caloriesCmd.Flags().BoolVar(&caloriesJSON, "json", false, "Print the calculation as JSON")
	rootCmd.AddCommand(caloriesCmd)
}
