package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nandinis/edudeck/internal/app"
	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/config"
	"github.com/nandinis/edudeck/internal/store"
)

// runApp opens the store and catalog and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cat, err := catalog.NewService(cfg.FastCatalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	return app.Run(cat, st)
}
