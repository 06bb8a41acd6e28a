package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/app"
	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/config"
	"github.com/abhisek/quizbox/internal/remote"
	"github.com/abhisek/quizbox/internal/store"
	"github.com/abhisek/quizbox/internal/usage"
)

const flushTimeout = 10 * time.Second

// deps bundles everything a command needs after setup.
type deps struct {
	store   *store.Store
	tracker *usage.Tracker
	catalog *catalog.Catalog
	cfg     config.Config
}

// setup opens the store, loads packs, and builds the tracker for the
// configured account. Callers must call close.
func setup(cmd *cobra.Command) (*deps, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cfg := config.Load()

	// Remote sync is optional; without a URL the tracker runs against
	// the local mirror only.
	var remoteStore remote.Store
	if cfg.RemoteURL != "" {
		remoteStore = remote.WithRetry(
			remote.NewClient(cfg.RemoteURL, cfg.RemoteToken),
			remote.DefaultRetryConfig(),
		)
	}

	tracker := usage.New(usage.Options{
		Remote:        remoteStore,
		Fallback:      st.FallbackRepo(),
		Log:           st.GameRepo(),
		WriteInterval: cfg.WriteInterval,
	})
	tracker.SetAccount(cfg.AccountID)

	packsDir, err := store.DefaultPacksDir()
	if err != nil {
		return nil, fmt.Errorf("resolve packs dir: %w", err)
	}
	cat, err := catalog.LoadDir(packsDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: load question packs:", err)
		cat = &catalog.Catalog{}
	}

	return &deps{store: st, tracker: tracker, catalog: cat, cfg: cfg}, nil
}

// close flushes pending usage writes and releases the store.
func (d *deps) close() {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := d.tracker.Flush(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: flush usage writes:", err)
	}
	if err := d.store.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: close store:", err)
	}
}

// runApp performs setup and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	return app.Run(app.Options{
		Tracker: d.tracker,
		Catalog: d.catalog,
		Games:   d.store.GameRepo(),
	})
}
