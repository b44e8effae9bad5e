package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voicemap/internal/app"
)

var shutdownTimeout time.Duration

func init() {
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second,
		"How long to wait for in-flight requests when stopping")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the VoiceMap HTTP service",
	Long: `Run the VoiceMap HTTP service.

Configuration comes from .env and the process environment (HOST, PORT,
TRANSCRIPTION_PROVIDER, SUPPORTED_LANGUAGES, LANGUAGE_ERROR_STATUS, ...).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := app.Bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		srv, err := app.InitializeServer(cfg, logger)
		if err != nil {
			logger.Error("Failed to initialize server", zap.Error(err))
			return err
		}

		if err := srv.Start(); err != nil {
			logger.Error("Failed to start server", zap.Error(err))
			return err
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		var serveErr error
		select {
		case sig := <-quit:
			logger.Info("Received signal", zap.String("signal", sig.String()))
		case serveErr = <-srv.Errors():
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
		return serveErr
	},
}
