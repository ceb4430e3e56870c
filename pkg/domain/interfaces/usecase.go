package interfaces

import (
	"context"

	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

// SubmissionUseCase owns the lifecycle of one download request at a time
type SubmissionUseCase interface {
	// Submit validates input and starts the request. Local validation failures are
	// reported through the returned state, not the error.
	Submit(ctx context.Context, url string, options model.DownloadOptions) (model.SubmissionState, error)

	// State returns the current submission state
	State() model.SubmissionState

	// Reset returns to idle; refused while a request is outstanding
	Reset() error

	// Wait blocks until the latest backend request has finished and been notified
	Wait(ctx context.Context) (model.SubmissionState, error)

	// Subscribe registers fn for every state change
	Subscribe(fn func(model.SubmissionState)) (cancel func())
}

// PlaybackUseCase keeps the fullscreen toggle in sync with the display environment
type PlaybackUseCase interface {
	State() model.PlaybackState
	Toggle(ctx context.Context) error
}
