package athletiq

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
	"github.com/Matt777777777/AthletIQ-sub000/internal/synthesis"
)

var (
	planKind  string
	planLimit int
	planJSON  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage saved workout and meal plans",
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plans, err := service.ListPlans(sqldb, planKind, planLimit)
			if err != nil {
				return err
			}
			if planJSON {
				return printJSON(cmd, plans)
			}
			for _, p := range plans {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d [%s] %s (%s)\n", p.ID, p.Kind, p.Title, p.CreatedAt.Format("2006-01-02"))
			}
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("plan id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.GetPlan(sqldb, id)
			if err != nil {
				return err
			}
			switch p.Kind {
			case service.PlanKindWorkout:
				var w model.SynthesizedWorkout
				if err := json.Unmarshal([]byte(p.Payload), &w); err != nil {
					return fmt.Errorf("decode plan %d payload: %w", p.ID, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), synthesis.FormatWorkout(w))
			case service.PlanKindMeal:
				var m model.SynthesizedMeal
				if err := json.Unmarshal([]byte(p.Payload), &m); err != nil {
					return fmt.Errorf("decode plan %d payload: %w", p.ID, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), synthesis.FormatMeal(m))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), p.Payload)
			}
			return nil
		})
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("plan id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			return service.DeletePlan(sqldb, id)
		})
	},
}

func init() {
	planListCmd.Flags().StringVar(&planKind, "kind", "", "Only list one kind (workout, meal)")
	planListCmd.Flags().IntVar(&planLimit, "limit", 0, "Maximum number of plans to list")
	planListCmd.Flags().BoolVar(&planJSON, "json", false, "Print plans as JSON")

	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planDeleteCmd)
	rootCmd.AddCommand(planCmd)
}
