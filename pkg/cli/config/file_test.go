package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tubectl/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

const sampleConfig = `
[server]
addr = "0.0.0.0:9090"
surface = "video"

[backend]
endpoint = "http://media-box:8000/download/"
output_dir = "/srv/media"
timeout = "90s"

[notify]
slack_webhook_url = "https://hooks.slack.com/services/T000/B000/XXXX"
sentry_env = "home"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tubectl.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		f, err := config.LoadFile("")
		gt.NoError(t, err)
		gt.Equal(t, *f, config.File{})
	})

	t.Run("all sections", func(t *testing.T) {
		f, err := config.LoadFile(writeConfig(t, sampleConfig))
		gt.NoError(t, err)
		gt.Equal(t, f.Server.Addr, "0.0.0.0:9090")
		gt.Equal(t, f.Server.Surface, "video")
		gt.Equal(t, f.Backend.Endpoint, "http://media-box:8000/download/")
		gt.Equal(t, f.Backend.OutputDir, "/srv/media")
		gt.Equal(t, time.Duration(f.Backend.Timeout), 90*time.Second)
		gt.Equal(t, f.Notify.SentryEnv, "home")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "none.toml"))
		gt.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := config.LoadFile(writeConfig(t, "[backend]\ntimeout = \"soon\"\n"))
		gt.Error(t, err)
	})
}

func TestApplyFile_Precedence(t *testing.T) {
	f, err := config.LoadFile(writeConfig(t, sampleConfig))
	gt.NoError(t, err)

	run := func(t *testing.T, args ...string) (config.Backend, config.Server, config.Notify) {
		t.Helper()
		var (
			backendCfg config.Backend
			serverCfg  config.Server
			notifyCfg  config.Notify
		)
		var flags []cli.Flag
		flags = append(flags, backendCfg.Flags()...)
		flags = append(flags, serverCfg.Flags()...)
		flags = append(flags, notifyCfg.Flags()...)

		cmd := &cli.Command{
			Name:  "test",
			Flags: flags,
			Action: func(ctx context.Context, c *cli.Command) error {
				backendCfg.ApplyFile(c, f)
				serverCfg.ApplyFile(c, f)
				notifyCfg.ApplyFile(c, f)
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
		return backendCfg, serverCfg, notifyCfg
	}

	t.Run("file overrides defaults", func(t *testing.T) {
		b, s, n := run(t)
		gt.Equal(t, b.Endpoint, "http://media-box:8000/download/")
		gt.Equal(t, b.OutputDir, "/srv/media")
		gt.Equal(t, b.Timeout, 90*time.Second)
		gt.Equal(t, s.Addr, "0.0.0.0:9090")
		gt.Equal(t, s.Surface, "video")
		gt.Equal(t, n.SlackWebhookURL, "https://hooks.slack.com/services/T000/B000/XXXX")
		gt.Equal(t, n.SentryEnv, "home")
	})

	t.Run("flags override file", func(t *testing.T) {
		b, s, _ := run(t, "--output-dir", "/tmp/out", "--addr", "localhost:1234", "--backend-timeout", "5s")
		gt.Equal(t, b.OutputDir, "/tmp/out")
		gt.Equal(t, b.Timeout, 5*time.Second)
		gt.Equal(t, b.Endpoint, "http://media-box:8000/download/")
		gt.Equal(t, s.Addr, "localhost:1234")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("TUBECTL_BACKEND_ENDPOINT", "http://env-host:8000/download/")
		b, _, _ := run(t)
		gt.Equal(t, b.Endpoint, "http://env-host:8000/download/")
		gt.Equal(t, b.OutputDir, "/srv/media")
	})
}
