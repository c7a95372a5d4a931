package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/config"
	"github.com/nandinis/edudeck/internal/server"
	"github.com/nandinis/edudeck/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
			cfg.Addr = flagAddr
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		// The API answers immediately; no simulated latency.
		cat, err := catalog.NewService(true)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", cfg.Addr)
		err = server.New(cat, st).ListenAndServe(ctx, cfg.Addr)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides EDUDECK_ADDR)")
}
