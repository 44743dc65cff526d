package athletiq

import (
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Matt777777777/AthletIQ-sub000/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the synthesis pipeline over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		port := servePort
		if port == "" {
			port = os.Getenv("PORT")
		}
		if port == "" {
			port = "8080"
		}

		return withDB(func(sqldb *sql.DB) error {
			return server.New(sqldb).ListenAndServe(port)
		})
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default $PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}
