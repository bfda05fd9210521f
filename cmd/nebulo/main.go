// Command nebulo is a terminal front-end for the NebuloHub platform,
// standing in for the mobile UI: it signs in, keeps the session on disk
// between runs and browses the startup catalog.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nebulohub/mobile/core/authgate"
	"github.com/nebulohub/mobile/core/config"
	"github.com/nebulohub/mobile/core/session"
	credbolt "github.com/nebulohub/mobile/integration/credstore/bbolt"
	"github.com/nebulohub/mobile/integration/nebulo"
)

// app bundles the wired client core shared by every command.
type app struct {
	manager *session.Manager
	client  *nebulo.Client
	store   *credbolt.Store
}

func newApp() (*app, error) {
	var apiCfg nebulo.Config
	if err := config.Load(&apiCfg); err != nil {
		return nil, err
	}

	var sessCfg session.Config
	if err := config.Load(&sessCfg); err != nil {
		return nil, err
	}

	storePath := sessCfg.StorePath
	if storePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		storePath = filepath.Join(dir, "nebulohub", "credentials.db")
	}
	if err := os.MkdirAll(filepath.Dir(storePath), 0700); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}

	store, err := credbolt.Open(storePath, nil)
	if err != nil {
		return nil, err
	}

	gate := authgate.New(authgate.WithPublicPaths(nebulo.DefaultPublicPaths()...))
	client := nebulo.NewClient(apiCfg.BaseURL,
		nebulo.WithTransport(gate),
		nebulo.WithTimeout(apiCfg.Timeout),
	)

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	manager := session.NewManager(store, client.Auth, client.Auth, gate,
		session.WithTTL(sessCfg.TTL),
		session.WithLogger(log),
	)

	return &app{manager: manager, client: client, store: store}, nil
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
