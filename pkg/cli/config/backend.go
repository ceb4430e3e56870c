package config

import (
	"time"

	"github.com/m-mizutani/tubectl/pkg/domain/interfaces"
	"github.com/m-mizutani/tubectl/pkg/infra/backend"
	"github.com/m-mizutani/tubectl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Backend holds the download backend configuration
type Backend struct {
	Endpoint  string
	OutputDir string
	Timeout   time.Duration
}

// Flags returns CLI flags for the backend connection
func (c *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-endpoint",
			Usage:       "Download endpoint of the backend service",
			Value:       backend.DefaultEndpoint,
			Destination: &c.Endpoint,
			Sources:     cli.EnvVars("TUBECTL_BACKEND_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       `Output directory on the backend host ("default" lets the backend decide)`,
			Value:       usecase.DefaultOutputDir,
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars("TUBECTL_OUTPUT_DIR"),
		},
		&cli.DurationFlag{
			Name:        "backend-timeout",
			Usage:       "Give up on a download request after this long (0 waits indefinitely)",
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("TUBECTL_BACKEND_TIMEOUT"),
		},
	}
}

// ApplyFile fills values not given by flag or environment from the config file
func (c *Backend) ApplyFile(cmd *cli.Command, f *File) {
	if f.Backend.Endpoint != "" && !cmd.IsSet("backend-endpoint") {
		c.Endpoint = f.Backend.Endpoint
	}
	if f.Backend.OutputDir != "" && !cmd.IsSet("output-dir") {
		c.OutputDir = f.Backend.OutputDir
	}
	if f.Backend.Timeout != 0 && !cmd.IsSet("backend-timeout") {
		c.Timeout = time.Duration(f.Backend.Timeout)
	}
}

// Configure returns the backend client
func (c *Backend) Configure() interfaces.BackendClient {
	return backend.New(c.Endpoint)
}

// SubmissionOptions returns controller options derived from the backend settings
func (c *Backend) SubmissionOptions() []usecase.SubmissionOption {
	return []usecase.SubmissionOption{
		usecase.WithOutputDir(c.OutputDir),
		usecase.WithTimeout(c.Timeout),
	}
}
