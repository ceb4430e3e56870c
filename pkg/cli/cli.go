package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/tubectl/pkg/cli/config"
	"github.com/m-mizutani/tubectl/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

// run executes the command line with command output written to w
func run(ctx context.Context, args []string, w io.Writer) error {
	var (
		loggerCfg  config.Logger
		logger     *slog.Logger
		configPath string
	)
	file := &config.File{}

	flags := append(loggerCfg.Flags(), &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to a TOML config file",
		Destination: &configPath,
		Sources:     cli.EnvVars("TUBECTL_CONFIG"),
	})

	app := &cli.Command{
		Name:    types.ServiceName,
		Usage:   "Resolve download options and submit downloads to a yt-dlp backend",
		Version: types.Version,
		Flags:   flags,
		Writer:  w,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			loaded, err := config.LoadFile(configPath)
			if err != nil {
				return nil, err
			}
			*file = *loaded

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(file),
			cmdDownload(file),
			cmdResolve(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
