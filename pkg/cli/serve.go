package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/cli/config"
	controller "github.com/m-mizutani/tubectl/pkg/controller/http"
	"github.com/m-mizutani/tubectl/pkg/infra/display"
	"github.com/m-mizutani/tubectl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe(file *config.File) *cli.Command {
	var (
		serverCfg  config.Server
		backendCfg config.Backend
		notifyCfg  config.Notify
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, backendCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the local control API",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			serverCfg.ApplyFile(c, file)
			backendCfg.ApplyFile(c, file)
			notifyCfg.ApplyFile(c, file)

			logger.Info("Starting tubectl server",
				slog.String("addr", serverCfg.Addr),
				slog.String("backend", backendCfg.Endpoint),
				slog.Any("notify", notifyCfg),
			)

			notifyOpts, closeNotify, err := notifyCfg.Configure()
			if err != nil {
				return err
			}
			defer closeNotify()

			doc := display.NewDocument()
			playbackUC := usecase.NewPlaybackSync(doc, serverCfg.Surface, serverCfg.PlaybackOptions()...)
			playbackUC.Start()
			defer playbackUC.Close()

			submissionUC := usecase.NewSubmissionController(
				backendCfg.Configure(),
				append(backendCfg.SubmissionOptions(), notifyOpts...)...,
			)

			server, err := controller.NewServer(
				ctx,
				submissionUC,
				playbackUC,
				doc,
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			// let an outstanding download report its result before notifiers are flushed
			if _, err := submissionUC.Wait(shutdownCtx); err != nil {
				logger.Warn("Submission still in progress at shutdown", slog.Any("error", err))
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
