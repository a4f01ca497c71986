package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bagdasarian/time-worked-alert/internal/handler"
	"github.com/bagdasarian/time-worked-alert/internal/handler/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(e *env) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /healthz, /metrics and POST /check over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := e.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, err := newOverworkService(ctx, cfg, e.logger)
			if err != nil {
				return err
			}

			h := handler.NewHandler(e.logger, svc, cfg.Alert.IncludeWeekends, cfg.DryRun)
			srv := server.NewServer(e.logger, h, cfg.Server.Addr)

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: SERVER_ADDR or :8080)")

	return cmd
}
