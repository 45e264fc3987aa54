package main

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"roomdesigner/internal/auth"
	"roomdesigner/internal/config"
	"roomdesigner/internal/logger"
	"roomdesigner/internal/storage"
	"roomdesigner/internal/store"
)

// env is the state shared by every subcommand.
type env struct {
	kv    *storage.SQLite
	store *store.Store
	users *auth.Service
}

func openEnv(ctx context.Context, cfg config.Config) (*env, error) {
	db, err := storage.OpenSQLite(cfg.Data.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	kv, err := storage.NewSQLite(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init db: %w", err)
	}

	s := store.New(kv, store.WithLogger(logger.Component("store")))
	if err := s.Load(ctx); err != nil {
		kv.Close()
		return nil, fmt.Errorf("load designs: %w", err)
	}

	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	users, err := auth.NewService(kv, auth.WithBcryptCost(cost), auth.WithLogger(logger.Component("auth")))
	if err != nil {
		kv.Close()
		return nil, err
	}
	if err := users.Load(ctx); err != nil {
		logger.Log.WithError(err).Warn("Ignoring unreadable session")
	}

	logger.Log.WithField("path", cfg.Data.Path).Info("Opened design database")
	return &env{kv: kv, store: s, users: users}, nil
}

func (e *env) Close() error {
	return e.kv.Close()
}
