package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/domain/interfaces"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

// PlaybackOption configures a PlaybackSync
type PlaybackOption func(*PlaybackSync)

// WithSurfaceScope makes only the sync's own surface count as fullscreen. By default
// any fullscreen element in the environment does.
func WithSurfaceScope() PlaybackOption {
	return func(p *PlaybackSync) {
		p.surfaceScoped = true
	}
}

// PlaybackSync mirrors the environment's fullscreen mode into PlaybackState.
// The state changes only in response to environment notifications.
type PlaybackSync struct {
	env           interfaces.DisplayEnvironment
	surface       string
	surfaceScoped bool

	// emitMu serializes reading the environment with delivery to listeners
	emitMu sync.Mutex

	mu        sync.Mutex
	state     model.PlaybackState
	remove    func()
	listeners []func(model.PlaybackState)
}

var _ interfaces.PlaybackUseCase = (*PlaybackSync)(nil)

// NewPlaybackSync creates a sync for surface. Call Start to begin listening.
func NewPlaybackSync(env interfaces.DisplayEnvironment, surface string, opts ...PlaybackOption) *PlaybackSync {
	p := &PlaybackSync{
		env:     env,
		surface: surface,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start subscribes to fullscreen change notifications
func (p *PlaybackSync) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.remove != nil {
		return
	}
	p.remove = p.env.OnFullscreenChange(p.handleChange)
}

// Close unsubscribes from the environment
func (p *PlaybackSync) Close() {
	p.mu.Lock()
	remove := p.remove
	p.remove = nil
	p.mu.Unlock()

	if remove != nil {
		remove()
	}
}

func (p *PlaybackSync) handleChange() {
	p.emitMu.Lock()
	defer p.emitMu.Unlock()

	element := p.env.FullscreenElement()
	active := element != ""
	if p.surfaceScoped {
		active = element == p.surface
	}

	p.mu.Lock()
	p.state.IsFullscreen = active
	state := p.state
	listeners := append([]func(model.PlaybackState){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

// State returns the mirrored fullscreen state
func (p *PlaybackSync) State() model.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Subscribe registers fn to be called after each notification. Calls are serial and
// fn must not call Toggle synchronously.
func (p *PlaybackSync) Subscribe(fn func(model.PlaybackState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Toggle asks the environment to enter fullscreen on the surface, or to exit it.
// The direction follows the mirrored state, so with surface scope another element
// being fullscreen still leads to an enter request for the surface.
func (p *PlaybackSync) Toggle(ctx context.Context) error {
	if p.State().IsFullscreen {
		if err := p.env.ExitFullscreen(ctx); err != nil {
			return goerr.Wrap(err, "failed to request fullscreen exit")
		}
		return nil
	}

	if err := p.env.RequestFullscreen(ctx, p.surface); err != nil {
		return goerr.Wrap(err, "failed to request fullscreen", goerr.V("surface", p.surface))
	}
	return nil
}
