package interfaces

import (
	"context"

	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

// DisplayEnvironment is the host surface that owns the real fullscreen mode
type DisplayEnvironment interface {
	// FullscreenElement returns the surface currently shown fullscreen, or "" if none
	FullscreenElement() string

	// RequestFullscreen asks the environment to show surface fullscreen. The mode
	// changes asynchronously and is announced through OnFullscreenChange.
	RequestFullscreen(ctx context.Context, surface string) error

	// ExitFullscreen asks the environment to leave fullscreen mode
	ExitFullscreen(ctx context.Context) error

	// OnFullscreenChange registers fn for fullscreen change notifications and returns a
	// function that removes it
	OnFullscreenChange(fn func()) (remove func())
}

// FullscreenBridge is the page side of a DisplayEnvironment: the page polls for the
// outstanding request, acknowledges it, and reports the resulting fullscreen element.
type FullscreenBridge interface {
	Pending() model.PendingFullscreen
	Ack()
	Dispatch(element string)
}
