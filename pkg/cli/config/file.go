package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML config file. Its values sit between environment
// variables and built-in defaults.
type File struct {
	Server  FileServer  `toml:"server"`
	Backend FileBackend `toml:"backend"`
	Notify  FileNotify  `toml:"notify"`
}

// FileServer is the [server] section
type FileServer struct {
	Addr         string `toml:"addr"`
	Surface      string `toml:"surface"`
	SurfaceScope bool   `toml:"surface_scope"`
}

// FileBackend is the [backend] section
type FileBackend struct {
	Endpoint  string   `toml:"endpoint"`
	OutputDir string   `toml:"output_dir"`
	Timeout   Duration `toml:"timeout"`
}

// FileNotify is the [notify] section
type FileNotify struct {
	SlackWebhookURL string `toml:"slack_webhook_url" masq:"secret"`
	SentryDSN       string `toml:"sentry_dsn" masq:"secret"`
	SentryEnv       string `toml:"sentry_env"`
}

// Duration decodes a TOML string such as "30s" or "5m"
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return goerr.Wrap(err, "invalid duration", goerr.V("value", string(text)))
	}
	*d = Duration(v)
	return nil
}

// LoadFile reads the config file at path. An empty path yields an empty config.
func LoadFile(path string) (*File, error) {
	var f File
	if path == "" {
		return &f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}

	return &f, nil
}
