package main

import (
	"fmt"

	"medrep-visits/cmd/bootstrap"
	"medrep-visits/config"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the doctor catalog in the configured store",
	Long:  `Write the sample doctor catalog to the record store unless one is already present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		app, err := bootstrap.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer app.Close()

		count, err := app.Seed(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to seed doctors: %w", err)
		}

		app.Log.Infof("Doctor catalog holds %d doctors", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
