package interfaces

import (
	"context"

	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

// Notifier receives every terminal submission state
type Notifier interface {
	Notify(ctx context.Context, state model.SubmissionState) error
}
