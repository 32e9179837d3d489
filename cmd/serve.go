package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/visionpay/fieldops/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sess, err := initSession()
		if err != nil {
			return err
		}

		// Warm the store; a failed initial refresh is not fatal, the
		// frontend can retry through POST /api/refresh.
		if err := sess.Syncer.Refresh(ctx); err != nil {
			zap.L().Warn("initial refresh failed", zap.Error(err))
		}

		handler := server.NewHandler(server.Deps{
			Store:          sess.Store,
			Syncer:         sess.Syncer,
			Drafts:         sess.Drafts,
			Panels:         sess.Panels,
			Settings:       sess.Settings,
			Feed:           sess.Feed,
			Workflows:      sess.Workflows,
			Capture:        sess.Capture,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: handler,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
