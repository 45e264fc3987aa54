package main

import (
	"github.com/spf13/cobra"

	"roomdesigner/internal/app"
	"roomdesigner/internal/config"
	"roomdesigner/internal/logger"
)

func newRunCmd(cfg *config.Config) *cobra.Command {
	var designID string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the desktop designer (default)",
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			e, err := openEnv(ctx, *cfg)
			if err != nil {
				return err
			}
			defer e.Close()

			a := app.New(app.Config{
				Width:    int32(cfg.Window.Width),
				Height:   int32(cfg.Window.Height),
				Title:    cfg.Window.Title,
				FPS:      int32(cfg.Window.FPS),
				DesignID: designID,
			}, e.store, e.users, logger.Component("app"))
			return a.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&designID, "design", "", "Design id to open after sign-in")
	return cmd
}
