package cmd

import (
	"github.com/bookwell/bookwell/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApplication(configPath)
		if err != nil {
			return err
		}
		return application.Run()
	},
}
