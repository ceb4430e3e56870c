package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/domain/interfaces"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/slack-go/slack"
)

type notifier struct {
	webhookURL string
}

// NewNotifier creates a notifier posting submission results to a Slack incoming webhook
func NewNotifier(webhookURL string) interfaces.Notifier {
	return &notifier{webhookURL: webhookURL}
}

// Notify posts one message per terminal state
func (n *notifier) Notify(ctx context.Context, state model.SubmissionState) error {
	if err := slack.PostWebhookContext(ctx, n.webhookURL, buildMessage(state)); err != nil {
		return goerr.Wrap(err, "failed to post slack webhook", goerr.V("id", state.ID))
	}
	return nil
}

func buildMessage(state model.SubmissionState) *slack.WebhookMessage {
	color := "good"
	if state.Status == model.SubmissionStatusFailed {
		color = "danger"
	}

	fields := []slack.AttachmentField{
		{Title: "URL", Value: state.URL},
		{Title: "Arguments", Value: "`" + state.Arguments.String() + "`"},
	}
	if r := state.Result; r != nil {
		if r.Title != "" {
			fields = append(fields, slack.AttachmentField{Title: "Title", Value: r.Title, Short: true})
		}
		if r.Filename != "" {
			fields = append(fields, slack.AttachmentField{Title: "File", Value: r.Filename, Short: true})
		}
	}

	return &slack.WebhookMessage{
		Text: fmt.Sprintf("%s: %s (%s)", state.Status, state.Message, state.URL),
		Attachments: []slack.Attachment{
			{
				Color:  color,
				Fields: fields,
				Footer: "submission " + state.ID,
			},
		},
	}
}
