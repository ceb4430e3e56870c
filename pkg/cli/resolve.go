package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/cli/config"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/m-mizutani/tubectl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdResolve() *cli.Command {
	var (
		optionsCfg config.Options
		asJSON     bool
	)

	flags := append(optionsCfg.Flags(), &cli.BoolFlag{
		Name:        "json",
		Usage:       "Print the arguments as a JSON array",
		Destination: &asJSON,
	})

	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"r"},
		Usage:   "Print the yt-dlp arguments for the given options",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			opts := optionsCfg.DownloadOptions()
			if err := opts.ValidateFields(); err != nil {
				return err
			}

			args := usecase.Resolve(opts)
			w := c.Root().Writer

			if asJSON {
				if args == nil {
					args = model.ArgumentList{}
				}
				if err := json.NewEncoder(w).Encode(args); err != nil {
					return goerr.Wrap(err, "failed to encode arguments")
				}
				return nil
			}

			_, _ = fmt.Fprintln(w, args.String())
			return nil
		},
	}
}
