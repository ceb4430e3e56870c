package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/domain/interfaces"
)

// DefaultAddr is the listen address of the control API
const DefaultAddr = "localhost:8080"

// config holds internal HTTP server configuration
type config struct {
	addr     string
	validate bool
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithoutValidation disables OpenAPI request validation of /api routes
func WithoutValidation() Option {
	return func(c *config) {
		c.validate = false
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

type handler struct {
	submission interfaces.SubmissionUseCase
	playback   interfaces.PlaybackUseCase
	bridge     interfaces.FullscreenBridge
}

// NewServer creates the control API server. bridge is the page side of the display
// environment that playback is synced with.
func NewServer(
	ctx context.Context,
	submissionUC interfaces.SubmissionUseCase,
	playbackUC interfaces.PlaybackUseCase,
	bridge interfaces.FullscreenBridge,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr:     DefaultAddr,
		validate: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	h := &handler{
		submission: submissionUC,
		playback:   playbackUC,
		bridge:     bridge,
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", h.handleHealth)

	var validator func(http.Handler) http.Handler
	if cfg.validate {
		v, err := ValidationMiddleware()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to set up request validation")
		}
		validator = v
	}

	router.Route("/api", func(r chi.Router) {
		if validator != nil {
			r.Use(validator)
		}

		r.Get("/options/default", h.handleDefaultOptions)
		r.Post("/resolve", h.handleResolve)

		r.Post("/submissions", h.handleSubmit)
		r.Get("/submission", h.handleGetSubmission)
		r.Delete("/submission", h.handleResetSubmission)

		r.Get("/playback", h.handleGetPlayback)
		r.Post("/playback/toggle", h.handleToggle)
		r.Post("/playback/events", h.handlePlaybackEvent)
		r.Post("/playback/ack", h.handleAck)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
