package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/infra/sentry"
	"github.com/m-mizutani/tubectl/pkg/infra/slack"
	"github.com/m-mizutani/tubectl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Notify holds the result notification configuration
type Notify struct {
	SlackWebhookURL string `masq:"secret"`
	SentryDSN       string `masq:"secret"`
	SentryEnv       string
}

// Flags returns CLI flags for notifications
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL receiving download results",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("TUBECTL_SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN receiving failed downloads",
			Destination: &c.SentryDSN,
			Sources:     cli.EnvVars("TUBECTL_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment name",
			Value:       "production",
			Destination: &c.SentryEnv,
			Sources:     cli.EnvVars("TUBECTL_SENTRY_ENV"),
		},
	}
}

// ApplyFile fills values not given by flag or environment from the config file
func (c *Notify) ApplyFile(cmd *cli.Command, f *File) {
	if f.Notify.SlackWebhookURL != "" && !cmd.IsSet("slack-webhook-url") {
		c.SlackWebhookURL = f.Notify.SlackWebhookURL
	}
	if f.Notify.SentryDSN != "" && !cmd.IsSet("sentry-dsn") {
		c.SentryDSN = f.Notify.SentryDSN
	}
	if f.Notify.SentryEnv != "" && !cmd.IsSet("sentry-env") {
		c.SentryEnv = f.Notify.SentryEnv
	}
}

// Configure builds the configured notifiers. The returned function flushes pending
// reports and must be called before exit.
func (c *Notify) Configure() ([]usecase.SubmissionOption, func(), error) {
	var opts []usecase.SubmissionOption
	closer := func() {}

	if c.SlackWebhookURL != "" {
		opts = append(opts, usecase.WithNotifier(slack.NewNotifier(c.SlackWebhookURL)))
	}

	if c.SentryDSN != "" {
		n, err := sentry.NewNotifier(c.SentryDSN, c.SentryEnv)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to configure sentry notifier")
		}
		opts = append(opts, usecase.WithNotifier(n))
		closer = n.Close
	}

	return opts, closer, nil
}
