package athletiq

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
	"github.com/Matt777777777/AthletIQ-sub000/internal/synthesis"
)

var (
	synthesizeFile string
	synthesizeJSON bool
	synthesizeSave bool
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Turn free-form coaching text into a structured plan",
}

var synthesizeWorkoutCmd = &cobra.Command{
	Use:   "workout [text...]",
	Short: "Extract a structured workout from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, synthesizeFile)
		if err != nil {
			return err
		}
		workout := synthesis.SynthesizeWorkout(text)

		if synthesizeSave {
			payload, err := json.Marshal(workout)
			if err != nil {
				return fmt.Errorf("marshal workout: %w", err)
			}
			err = withDB(func(sqldb *sql.DB) error {
				id, err := service.SavePlan(sqldb, service.PlanKindWorkout, workout.Title, text, string(payload))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved plan %d\n", id)
				return nil
			})
			if err != nil {
				return err
			}
		}

		if synthesizeJSON {
			return printJSON(cmd, workout)
		}
		fmt.Fprintln(cmd.OutOrStdout(), synthesis.FormatWorkout(workout))
		return nil
	},
}

var synthesizeMealCmd = &cobra.Command{
	Use:   "meal [text...]",
	Short: "Extract a structured recipe from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, synthesizeFile)
		if err != nil {
			return err
		}
		meal := synthesis.SynthesizeMeal(text)

		if synthesizeSave {
			payload, err := json.Marshal(meal)
			if err != nil {
				return fmt.Errorf("marshal meal: %w", err)
			}
			err = withDB(func(sqldb *sql.DB) error {
				id, err := service.SavePlan(sqldb, service.PlanKindMeal, meal.Title, text, string(payload))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved plan %d\n", id)
				return nil
			})
			if err != nil {
				return err
			}
		}

		if synthesizeJSON {
			return printJSON(cmd, meal)
		}
		fmt.Fprintln(cmd.OutOrStdout(), synthesis.FormatMeal(meal))
		return nil
	},
}

func init() {
	synthesizeCmd.PersistentFlags().StringVar(&synthesizeFile, "file", "", "Read input text from a file")
	synthesizeCmd.PersistentFlags().BoolVar(&synthesizeJSON, "json", false, "Print the structured result as JSON")
	synthesizeCmd.PersistentFlags().BoolVar(&synthesizeSave, "save", false, "Persist the result as a plan")
	synthesizeCmd.AddCommand(synthesizeWorkoutCmd)
	synthesizeCmd.AddCommand(synthesizeMealCmd)
	rootCmd.AddCommand(synthesizeCmd)
}
