package main

import (
	"fmt"
	"log/slog"

	"github.com/semanticowl/semowl/internal/config"
	"github.com/semanticowl/semowl/internal/docstore"
	"github.com/semanticowl/semowl/internal/loader"
)

func loadConfig(path *string) (*config.Config, error) {
	cfg, err := config.Load(*path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLoader(cfg *config.Config) (*loader.Loader, error) {
	var policy loader.Policy
	switch cfg.Parse.Policy {
	case config.PolicySkipName:
		policy = loader.PolicySkip
	case config.PolicyFailName:
		policy = loader.PolicyFail
	default:
		return nil, fmt.Errorf("unknown parse policy %q", cfg.Parse.Policy)
	}

	return loader.New(loader.Options{
		Policy:        policy,
		ProgressEvery: cfg.Parse.ProgressEvery,
		Progress: func(lines int) {
			slog.Debug("parsing", slog.Int("lines", lines))
		},
	}), nil
}

func openStore(cfg *config.Config) (*docstore.Store, error) {
	store, err := docstore.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", cfg.Store.Path, err)
	}
	return store, nil
}
