package config

import (
	"github.com/m-mizutani/tubectl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr         string
	Surface      string
	SurfaceScope bool
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("TUBECTL_ADDR"),
		},
		&cli.StringFlag{
			Name:        "surface",
			Usage:       "Name of the playback surface the fullscreen toggle controls",
			Value:       "player",
			Destination: &c.Surface,
			Sources:     cli.EnvVars("TUBECTL_SURFACE"),
		},
		&cli.BoolFlag{
			Name:        "surface-scope",
			Usage:       "Only treat the playback surface itself being fullscreen as fullscreen",
			Destination: &c.SurfaceScope,
			Sources:     cli.EnvVars("TUBECTL_SURFACE_SCOPE"),
		},
	}
}

// ApplyFile fills values not given by flag or environment from the config file
func (c *Server) ApplyFile(cmd *cli.Command, f *File) {
	if f.Server.Addr != "" && !cmd.IsSet("addr") {
		c.Addr = f.Server.Addr
	}
	if f.Server.Surface != "" && !cmd.IsSet("surface") {
		c.Surface = f.Server.Surface
	}
	if f.Server.SurfaceScope && !cmd.IsSet("surface-scope") {
		c.SurfaceScope = true
	}
}

// PlaybackOptions returns options for the playback sync
func (c *Server) PlaybackOptions() []usecase.PlaybackOption {
	if c.SurfaceScope {
		return []usecase.PlaybackOption{usecase.WithSurfaceScope()}
	}
	return nil
}
