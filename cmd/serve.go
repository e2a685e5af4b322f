package main

import (
	"fmt"

	"medrep-visits/cmd/bootstrap"
	"medrep-visits/config"

	"github.com/spf13/cobra"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the booking API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// flag wins over APP_PORT only when given explicitly
		if cmd.Flags().Changed("port") {
			cfg.App.Port = port
		}

		// Initialize application with all dependencies
		app, err := bootstrap.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		// Run the application
		app.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}
