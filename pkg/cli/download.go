package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/cli/config"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/m-mizutani/tubectl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdDownload(file *config.File) *cli.Command {
	var (
		optionsCfg config.Options
		backendCfg config.Backend
		notifyCfg  config.Notify
	)

	var flags []cli.Flag
	flags = append(flags, optionsCfg.Flags()...)
	flags = append(flags, backendCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)

	return &cli.Command{
		Name:      "download",
		Aliases:   []string{"d"},
		Usage:     "Submit a download to the backend and wait for the result",
		ArgsUsage: "URL",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			backendCfg.ApplyFile(c, file)
			notifyCfg.ApplyFile(c, file)

			notifyOpts, closeNotify, err := notifyCfg.Configure()
			if err != nil {
				return err
			}
			defer closeNotify()

			uc := usecase.NewSubmissionController(
				backendCfg.Configure(),
				append(backendCfg.SubmissionOptions(), notifyOpts...)...,
			)

			printer := newProgressPrinter(c.Root().Writer)
			unsubscribe := uc.Subscribe(printer.update)
			defer unsubscribe()

			logger.Debug("Submitting download",
				slog.String("backend", backendCfg.Endpoint),
				slog.Any("notify", notifyCfg),
			)

			opts := optionsCfg.DownloadOptions()
			// an unknown download type is reported by Submit as a failed state
			if opts.DownloadType.Valid() {
				if err := opts.ValidateFields(); err != nil {
					return err
				}
			}

			state, err := uc.Submit(ctx, c.Args().First(), opts)
			if err != nil {
				return err
			}
			if state.Status.IsActive() {
				if state, err = uc.Wait(ctx); err != nil {
					return err
				}
			}

			if state.Status == model.SubmissionStatusFailed {
				return goerr.New("download failed", goerr.V("message", state.Message))
			}
			return nil
		},
	}
}
