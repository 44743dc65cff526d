package athletiq

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
)

var (
	profileAge      int
	profileWeight   float64
	profileHeight   float64
	profileGender   string
	profileLevel    string
	profileGoal     string
	profileDiet     string
	profileSessions int
	profileJSON     bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the stored user profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile fields (unset flags keep their stored value)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			stored, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			p := model.Profile{}
			if stored != nil {
				p = *stored
			}

			flags := cmd.Flags()
			if flags.Changed("age") {
				p.Age = profileAge
			}
			if flags.Changed("weight") {
				p.WeightKg = profileWeight
			}
			if flags.Changed("height") {
				p.HeightCm = profileHeight
			}
			if flags.Changed("gender") {
				p.Gender = profileGender
			}
			if flags.Changed("level") {
				p.FitnessLevel = profileLevel
			}
			if flags.Changed("goal") {
				p.Goal = profileGoal
			}
			if flags.Changed("diet") {
				p.Diet = profileDiet
			}
			if flags.Changed("sessions") {
				p.SessionsPerWeek = profileSessions
			}

			if err := service.SaveProfile(sqldb, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile saved yet (use athletiq profile set)")
				return nil
			}
			if profileJSON {
				return printJSON(cmd, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Âge : %d\nPoids : %.1f kg\nTaille : %.0f cm\nGenre : %s\nNiveau : %s\n",
				p.Age, p.WeightKg, p.HeightCm, p.Gender, p.FitnessLevel)
			if p.Goal != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Objectif : %s\n", p.Goal)
			}
			if p.Diet != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Régime : %s\n", p.Diet)
			}
			if p.SessionsPerWeek > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Séances/semaine : %d\n", p.SessionsPerWeek)
			}
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male, female)")
	profileSetCmd.Flags().StringVar(&profileLevel, "level", "", "Fitness level (débutant, intermédiaire, avancé)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Training goal")
	profileSetCmd.Flags().StringVar(&profileDiet, "diet", "", "Dietary preference")
	profileSetCmd.Flags().IntVar(&profileSessions, "sessions", 0, "Training sessions per week")
	profileShowCmd.Flags().BoolVar(&profileJSON, "json", false, "Print the profile as JSON")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
