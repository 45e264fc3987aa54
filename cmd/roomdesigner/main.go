package main

import (
	"os"

	"github.com/spf13/cobra"

	"roomdesigner/internal/config"
	"roomdesigner/internal/logger"
)

func main() {
	var configFile string
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:   "roomdesigner",
		Short: "Lay out furniture in a room and view it in 2D and 3D",
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return err
			}
			logger.Init(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration (json or yaml)")

	run := newRunCmd(&cfg)
	rootCmd.RunE = run.RunE
	rootCmd.Flags().AddFlagSet(run.Flags())

	rootCmd.AddCommand(run, newServeCmd(&cfg), newRenderCmd(&cfg), newDesignsCmd(&cfg))

	if err := rootCmd.Execute(); err != nil {
		logger.Log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
