package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/devnexus/devnexus/internal/auth"
	"github.com/devnexus/devnexus/internal/catalog"
	"github.com/devnexus/devnexus/internal/config"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/nats"
	"github.com/devnexus/devnexus/internal/project"
	"github.com/devnexus/devnexus/internal/store"
)

// env is what every command works with: the loaded config and the local
// database with the services built on it.
type env struct {
	cfg     *config.Config
	db      *store.Store
	auth    *auth.Service
	catalog *catalog.Provider
	out     io.Writer
}

// openEnv loads the config, applies its logging settings and opens the
// local database.
func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	configureLogger(cfg)

	db, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Editor != "" {
		_ = os.Setenv("EDITOR", cfg.Editor)
	}

	return &env{
		cfg:     cfg,
		db:      db,
		auth:    auth.NewService(db, cfg.Delay),
		catalog: catalog.NewProvider(cfg.Delay),
		out:     newOutput(os.Stdout),
	}, nil
}

// Close closes the database.
func (e *env) Close() {
	if err := e.db.Close(); err != nil {
		logger.Warn("Error closing database: %v", err)
	}
}

func configureLogger(cfg *config.Config) {
	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		logger.Default.SetLevel(level)
	}
	if cfg.LogFile != "" {
		if err := logger.Default.OpenFile(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "devnexus: cannot open log file: %v\n", err)
		}
	}
}

// newOutput wraps w so styled output is downsampled to what the terminal
// supports, or stripped of color with --no-color.
func newOutput(w io.Writer) io.Writer {
	cw := colorprofile.NewWriter(w, os.Environ())
	if rootFlags.noColor {
		cw.Profile = colorprofile.Ascii
	}
	return cw
}

// session returns the signed-in user and the event store owner key for it.
func (e *env) session(ctx context.Context) (*auth.Session, string, error) {
	sess, err := e.auth.Guard(ctx)
	if err != nil {
		return nil, "", err
	}
	return sess, project.OwnerKey(sess.User.Email), nil
}

// openProjects starts the embedded event store. The returned func shuts it
// down.
func (e *env) openProjects(ctx context.Context) (*project.Store, func(), error) {
	emb, err := nats.Start(e.cfg.NATSDir())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start event store: %w", err)
	}
	stream, err := nats.SetupStream(ctx, emb.JS)
	if err != nil {
		_ = emb.Close()
		return nil, nil, fmt.Errorf("failed to set up stream: %w", err)
	}
	cleanup := func() {
		if err := emb.Close(); err != nil {
			logger.Warn("Error stopping event store: %v", err)
		}
	}
	return project.NewStore(emb.JS, stream), cleanup, nil
}
