package display

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/domain/interfaces"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

// Document is the display environment of a page driven through the control API.
// Fullscreen requests are queued for the page to pick up, and the page reports the
// resulting mode back through Dispatch.
type Document struct {
	mu        sync.Mutex
	element   string
	pending   model.PendingFullscreen
	listeners map[int]func()
	nextID    int
}

var (
	_ interfaces.DisplayEnvironment = (*Document)(nil)
	_ interfaces.FullscreenBridge   = (*Document)(nil)
)

// NewDocument creates a document with no fullscreen element
func NewDocument() *Document {
	return &Document{
		listeners: make(map[int]func()),
	}
}

// FullscreenElement returns the element the page last reported as fullscreen
func (d *Document) FullscreenElement() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.element
}

// RequestFullscreen queues a request to show surface fullscreen
func (d *Document) RequestFullscreen(ctx context.Context, surface string) error {
	if surface == "" {
		return goerr.New("surface is required", goerr.T(model.ErrTagValidation))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = model.PendingFullscreen{
		Request: model.FullscreenRequestEnter,
		Surface: surface,
	}
	return nil
}

// ExitFullscreen queues a request to leave fullscreen
func (d *Document) ExitFullscreen(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = model.PendingFullscreen{Request: model.FullscreenRequestExit}
	return nil
}

// OnFullscreenChange registers fn for change notifications
func (d *Document) OnFullscreenChange(fn func()) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.listeners[id] = fn

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners, id)
	}
}

// Pending returns the request the page has not acknowledged yet
func (d *Document) Pending() model.PendingFullscreen {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Ack clears the outstanding request once the page has acted on it
func (d *Document) Ack() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = model.PendingFullscreen{}
}

// Dispatch records the page's fullscreen element ("" when none) and notifies every
// listener, like a fullscreenchange event.
func (d *Document) Dispatch(element string) {
	d.mu.Lock()
	d.element = element
	listeners := make([]func(), 0, len(d.listeners))
	for _, fn := range d.listeners {
		listeners = append(listeners, fn)
	}
	d.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
