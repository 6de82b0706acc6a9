package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/patternapi/adapters/executor/ws"
	"github.com/kompox/patternapi/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func newCmdServe() *cobra.Command {
	var addr, path string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local mux over websocket",
		Long: `Serve the local mux over websocket so that other patternctl instances can
use it with --server-url. Only describe and audit-log/list have handlers; the
audit log is read from the configured call journal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg := stateFrom(cmd).cfg.Serve
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "serve", cfg.Addr)
			defer func() { cleanup(err) }()
			logger := logging.FromContext(ctx)

			repo, err := buildCallRepo(cmd)
			if err != nil {
				return err
			}
			mux := http.NewServeMux()
			mux.Handle(cfg.Path, ws.NewHandler(buildLocalMux(repo), logger))

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
			logger.Info(ctx, "listening", "addr", ln.Addr().String(), "path", cfg.Path)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Serve(ln) }()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(sctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default 127.0.0.1:8080, env PATTERNCTL_SERVE_ADDR)")
	cmd.Flags().StringVar(&path, "path", "", "Websocket path (default /ws, env PATTERNCTL_SERVE_PATH)")
	return cmd
}
