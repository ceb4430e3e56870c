package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/domain/interfaces"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/m-mizutani/tubectl/pkg/utils/async"
)

// User facing messages for local validation failures
const (
	MessageEmptyURL            = "Please enter a YouTube URL"
	MessageInvalidDownloadType = "Invalid download type"
)

// DefaultOutputDir tells the backend to use its own download directory
const DefaultOutputDir = "default"

// ErrSubmissionInProgress is returned when Submit or Reset is called while a request
// is outstanding
var ErrSubmissionInProgress = goerr.New("submission already in progress", goerr.T(model.ErrTagConflict))

// SubmissionOption configures a SubmissionController
type SubmissionOption func(*SubmissionController)

// WithOutputDir sets the output_dir sent to the backend
func WithOutputDir(dir string) SubmissionOption {
	return func(c *SubmissionController) {
		c.outputDir = dir
	}
}

// WithTimeout bounds each backend request. Zero means no limit.
func WithTimeout(d time.Duration) SubmissionOption {
	return func(c *SubmissionController) {
		c.timeout = d
	}
}

// WithNotifier adds a notifier that receives terminal states of backend requests
func WithNotifier(n interfaces.Notifier) SubmissionOption {
	return func(c *SubmissionController) {
		c.notifiers = append(c.notifiers, n)
	}
}

// WithClock replaces time.Now for timestamps
func WithClock(now func() time.Time) SubmissionOption {
	return func(c *SubmissionController) {
		c.now = now
	}
}

type observer struct {
	id int
	fn func(model.SubmissionState)
}

// SubmissionController drives one download request at a time through
// idle -> submitting -> succeeded|failed.
type SubmissionController struct {
	backend   interfaces.BackendClient
	outputDir string
	timeout   time.Duration
	notifiers []interfaces.Notifier
	now       func() time.Time

	// emitMu serializes state changes together with their delivery to observers
	emitMu sync.Mutex

	mu        sync.Mutex
	state     model.SubmissionState
	done      chan struct{}
	observers []observer
	nextObsID int
}

var _ interfaces.SubmissionUseCase = (*SubmissionController)(nil)

// NewSubmissionController creates a controller that sends requests through backend
func NewSubmissionController(backend interfaces.BackendClient, opts ...SubmissionOption) *SubmissionController {
	c := &SubmissionController{
		backend:   backend,
		outputDir: DefaultOutputDir,
		now:       time.Now,
		state:     model.IdleState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit validates url and options, then starts the backend request on its own
// goroutine. The request is not tied to ctx cancellation; only the logger in ctx is
// carried over.
func (c *SubmissionController) Submit(ctx context.Context, url string, options model.DownloadOptions) (model.SubmissionState, error) {
	logger := ctxlog.From(ctx)
	url = strings.TrimSpace(url)
	now := c.now()

	next := model.SubmissionState{
		ID:        uuid.NewString(),
		URL:       url,
		StartedAt: &now,
	}
	switch {
	case url == "":
		next.Status = model.SubmissionStatusFailed
		next.Message = MessageEmptyURL
		next.FinishedAt = &now
	case !options.DownloadType.Valid():
		next.Status = model.SubmissionStatusFailed
		next.Message = MessageInvalidDownloadType
		next.FinishedAt = &now
	default:
		next.Status = model.SubmissionStatusSubmitting
		next.Arguments = Resolve(options)
	}

	var done chan struct{}
	accepted := c.publish(func(s *model.SubmissionState) bool {
		if s.Status.IsActive() {
			return false
		}
		*s = next
		if next.Status.IsActive() {
			done = make(chan struct{})
			c.done = done
		}
		return true
	})
	if !accepted {
		return c.State(), ErrSubmissionInProgress
	}

	if !next.Status.IsActive() {
		logger.Warn("Submission rejected",
			"id", next.ID,
			"message", next.Message,
			"download_type", options.DownloadType,
		)
		return next, nil
	}

	logger.Info("Submitting download",
		"id", next.ID,
		"url", url,
		"arguments", next.Arguments,
		"output_dir", c.outputDir,
	)

	req := &model.DownloadRequest{
		URL:       url,
		Options:   next.Arguments,
		OutputDir: c.outputDir,
	}
	id := next.ID
	async.Dispatch(ctx, func(ctx context.Context) error {
		c.run(ctx, id, req, done)
		return nil
	}, func(recovered any) {
		c.finish(context.Background(), id, done, nil,
			goerr.New("submission aborted unexpectedly", goerr.V("recover", recovered)))
	})

	return next, nil
}

func (c *SubmissionController) run(ctx context.Context, id string, req *model.DownloadRequest, done chan struct{}) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.backend.PostDownload(ctx, req, func(percent int) {
		c.progress(id, percent)
	})
	c.finish(ctx, id, done, resp, err)
}

func (c *SubmissionController) progress(id string, percent int) {
	percent = min(max(percent, 0), 100)

	c.publish(func(s *model.SubmissionState) bool {
		if s.ID != id || !s.Status.IsActive() || percent <= s.Progress {
			return false
		}
		s.Progress = percent
		return true
	})
}

func (c *SubmissionController) finish(ctx context.Context, id string, done chan struct{}, resp *model.DownloadResponse, err error) {
	logger := ctxlog.From(ctx)

	var final model.SubmissionState
	finished := c.publish(func(s *model.SubmissionState) bool {
		if s.ID != id || !s.Status.IsActive() {
			return false
		}
		now := c.now()
		s.FinishedAt = &now
		if err != nil {
			s.Status = model.SubmissionStatusFailed
			s.Message = failureMessage(err)
		} else {
			if resp == nil {
				resp = &model.DownloadResponse{}
			}
			s.Status = model.SubmissionStatusSucceeded
			s.Message = resp.Message
			s.Result = resp
		}
		final = *s
		return true
	})
	if !finished {
		return
	}
	// Wait returns only after notifiers are done so a short lived process does not
	// exit before the result is delivered.
	defer close(done)

	if err != nil {
		logger.Error("Download failed", "id", id, "error", err)
	} else {
		logger.Info("Download completed", "id", id, "message", final.Message)
	}

	notifyCtx := context.WithoutCancel(ctx)
	for _, n := range c.notifiers {
		if err := n.Notify(notifyCtx, final); err != nil {
			logger.Warn("Failed to notify submission result", "id", id, "error", err)
		}
	}
}

// failureMessage prefers the backend's detail and falls back to the error text
func failureMessage(err error) string {
	var remote *model.RemoteError
	if errors.As(err, &remote) {
		return "Download failed: " + remote.Error()
	}
	return "Download failed: " + err.Error()
}

// State returns the current submission state
func (c *SubmissionController) State() model.SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reset returns to idle, clearing message and progress
func (c *SubmissionController) Reset() error {
	refused := false
	c.publish(func(s *model.SubmissionState) bool {
		if s.Status.IsActive() {
			refused = true
			return false
		}
		if s.Status == model.SubmissionStatusIdle {
			return false
		}
		*s = model.IdleState()
		return true
	})
	if refused {
		return ErrSubmissionInProgress
	}
	return nil
}

// Wait blocks until the latest backend request has finished and its result has been
// handed to every notifier
func (c *SubmissionController) Wait(ctx context.Context) (model.SubmissionState, error) {
	c.mu.Lock()
	state, done := c.state, c.done
	c.mu.Unlock()

	if done == nil {
		return state, nil
	}

	select {
	case <-done:
		return c.State(), nil
	case <-ctx.Done():
		return c.State(), goerr.Wrap(ctx.Err(), "gave up waiting for submission", goerr.V("id", state.ID))
	}
}

// Subscribe registers fn for every state change. fn is called serially, in the order
// changes happen, and must not call Submit or Reset.
func (c *SubmissionController) Subscribe(fn func(model.SubmissionState)) (cancel func()) {
	c.mu.Lock()
	id := c.nextObsID
	c.nextObsID++
	c.observers = append(c.observers, observer{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// publish applies update and, if it reports a change, delivers the new state to
// every observer before any later change is applied.
func (c *SubmissionController) publish(update func(s *model.SubmissionState) bool) bool {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	if !update(&c.state) {
		c.mu.Unlock()
		return false
	}
	snapshot := c.state
	observers := make([]observer, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, o := range observers {
		o.fn(snapshot)
	}
	return true
}
