package cmd

import (
	"fmt"
	"os"

	"github.com/bookwell/bookwell/internal/app"
	"github.com/bookwell/bookwell/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config/application.yaml"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "bookwell",
	Short: "Bookwell serves appointment views for the mobile shell",
	Long: `bookwell serves the dashboard, calendar, client and worker views consumed by
the mobile shell. The inspection commands print the same views to the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			return nil
		}
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(workersCmd)
}

// loadDependencies builds the same service graph the server uses.
func loadDependencies() (*app.Dependencies, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.RateLimit.Enabled = false
	return app.BuildDependencies(cfg)
}
