package sentry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/m-mizutani/tubectl/pkg/domain/types"
)

const flushTimeout = 2 * time.Second

// Notifier reports failed submissions to Sentry through its own hub
type Notifier struct {
	hub *sentry.Hub
}

// Option customizes the Sentry client options
type Option func(*sentry.ClientOptions)

// WithBeforeSend installs a hook that sees (and may drop) every event
func WithBeforeSend(fn func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event) Option {
	return func(o *sentry.ClientOptions) {
		o.BeforeSend = fn
	}
}

// NewNotifier creates a Sentry notifier for dsn
func NewNotifier(dsn, environment string, opts ...Option) (*Notifier, error) {
	clientOpts := sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     types.ServiceName + "@" + types.Version,
	}
	for _, opt := range opts {
		opt(&clientOpts)
	}

	client, err := sentry.NewClient(clientOpts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sentry client", goerr.V("environment", environment))
	}

	return &Notifier{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Notify captures failed submissions; other states are ignored
func (n *Notifier) Notify(ctx context.Context, state model.SubmissionState) error {
	if state.Status != model.SubmissionStatusFailed {
		return nil
	}

	n.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("submission_id", state.ID)
		scope.SetContext("submission", sentry.Context{
			"url":       state.URL,
			"arguments": []string(state.Arguments),
		})
		n.hub.CaptureMessage(state.Message)
	})
	return nil
}

// Close flushes buffered events
func (n *Notifier) Close() {
	n.hub.Flush(flushTimeout)
}
