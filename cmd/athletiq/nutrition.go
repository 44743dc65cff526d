package athletiq

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Matt777777777/AthletIQ-sub000/internal/provider/openfoodfacts"
	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
	"github.com/Matt777777777/AthletIQ-sub000/internal/synthesis"
)

var (
	nutritionFile     string
	nutritionJSON     bool
	nutritionLog      bool
	nutritionMealType string
	nutritionBarcode  bool
)

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Estimate calories and macros from meal text",
}

var nutritionEstimateCmd = &cobra.Command{
	Use:   "estimate [text...]",
	Short: "Estimate a meal's nutrition from its ingredient list",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, nutritionFile)
		if err != nil {
			return err
		}
		nutrition := synthesis.EstimateMealNutrition(text, nutritionMealType)

		if nutritionLog {
			err := withDB(func(sqldb *sql.DB) error {
				id, err := service.LogMeal(sqldb, nutritionMealType, nutrition, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged meal %d\n", id)
				return nil
			})
			if err != nil {
				return err
			}
		}

		if nutritionJSON {
			return printJSON(cmd, nutrition)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Calories : %d kcal\nGlucides : %d g\nProtéines : %d g\nLipides : %d g\n",
			nutrition.Calories, nutrition.Carbs, nutrition.Protein, nutrition.Fat)
		return nil
	},
}

var nutritionLookupCmd = &cobra.Command{
	Use:   "lookup <name or barcode>",
	Short: "Look up per-100g macros on Open Food Facts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &openfoodfacts.Client{}
		query := strings.Join(args, " ")

		var food openfoodfacts.Food
		var err error
		if nutritionBarcode {
			food, err = client.LookupBarcode(cmd.Context(), query)
		} else {
			food, err = client.SearchFood(cmd.Context(), query)
		}
		if err != nil {
			return err
		}

		if nutritionJSON {
			return printJSON(cmd, food)
		}
		name := food.Name
		if food.Brand != "" {
			name += " (" + food.Brand + ")"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s — pour 100 g :\nCalories : %.0f kcal\nGlucides : %.1f g\nProtéines : %.1f g\nLipides : %.1f g\n",
			name, food.Calories, food.Carbs, food.Protein, food.Fat)
		return nil
	},
}

func init() {
	nutritionEstimateCmd.Flags().StringVar(&nutritionFile, "file", "", "Read input text from a file")
	nutritionEstimateCmd.Flags().StringVar(&nutritionMealType, "type", "lunch", "Meal type (breakfast, lunch, dinner, snack)")
	nutritionEstimateCmd.Flags().BoolVar(&nutritionLog, "log", false, "Record the estimate in the daily journal")
	nutritionEstimateCmd.Flags().BoolVar(&nutritionJSON, "json", false, "Print the estimate as JSON")
	nutritionLookupCmd.Flags().BoolVar(&nutritionBarcode, "barcode", false, "Treat the argument as a barcode")
	nutritionLookupCmd.Flags().BoolVar(&nutritionJSON, "json", false, "Print the result as JSON")

	nutritionCmd.AddCommand(nutritionEstimateCmd)
	nutritionCmd.AddCommand(nutritionLookupCmd)
	rootCmd.AddCommand(nutritionCmd)
}
