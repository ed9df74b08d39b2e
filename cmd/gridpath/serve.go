package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/server"
)

const shutdownGrace = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  `Serves POST /v1/solve and POST /v1/cheats with the grid as request body, plus /healthz and /metrics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listen := a.cfg.Listen
			if cmd.Flags().Changed("listen") {
				listen, _ = cmd.Flags().GetString("listen")
			}

			handler := server.NewHandler(a.svc, a.registry, a.log, server.Defaults{
				MinSaving: a.cfg.MinSaving,
				Tiles:     a.cfg.Tiles,
			})
			srv := &http.Server{
				Addr:              listen,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				a.log.WithFields(logrus.Fields{"listen": listen}).Info("starting gridpath server")
				serverErrors <- srv.ListenAndServe()
			}()

			// Channel to listen for interrupt or terminate signals.
			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(shutdown)

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err

			case sig := <-shutdown:
				a.log.WithField("signal", sig.String()).Info("shutting down")

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					a.log.WithError(err).Warn("graceful shutdown did not complete")
					return srv.Close()
				}
				a.log.Info("server stopped")
				return nil
			}
		},
	}
	cmd.Flags().String("listen", ":8080", "Address to listen on")
	return cmd
}
