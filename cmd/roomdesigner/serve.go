package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"roomdesigner/internal/api"
	"roomdesigner/internal/auth"
	"roomdesigner/internal/config"
	"roomdesigner/internal/logger"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the design API over HTTP",
		RunE: func(c *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			e, err := openEnv(ctx, *cfg)
			if err != nil {
				return err
			}
			defer e.Close()

			if listen == "" {
				listen = cfg.HTTP.Listen
			}
			tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, "roomdesigner", cfg.Auth.TokenTTL)
			srv := api.New(e.store, e.users, tokens, logger.Component("api"), api.Options{
				ReadTimeout:  cfg.HTTP.ReadTimeout,
				WriteTimeout: cfg.HTTP.WriteTimeout,
				AccessLog:    true,
			})

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Listen(listen) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Log.Info("Shutting down HTTP API")
				if err := srv.Shutdown(); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides http.listen)")
	return cmd
}
