package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/visionpay/fieldops/internal/mockapi"
)

var (
	mockPort int
	mockDB   string
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Start a mock walker API with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("mock"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dbPath := mockDB
		if dbPath == "" {
			dbPath = cfg.Mock.DatabasePath
		}

		var data *mockapi.Dataset
		if dbPath != "" {
			d, err := mockapi.NewPersistentDataset(dbPath)
			if err != nil {
				return err
			}
			defer d.Close()
			data = d
			zap.L().Info("mock data persisted", zap.String("path", dbPath))
		} else {
			data = mockapi.NewDataset()
		}

		port := mockPort
		if port == 0 {
			port = cfg.Mock.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mockapi.NewHandler(data),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down mock walker API")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting mock walker API", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "mock listen")
		}

		return nil
	},
}

func init() {
	mockCmd.Flags().IntVar(&mockPort, "port", 0, "mock API port (default from config)")
	mockCmd.Flags().StringVar(&mockDB, "db", "", "SQLite file for persistent demo data")
	rootCmd.AddCommand(mockCmd)
}
