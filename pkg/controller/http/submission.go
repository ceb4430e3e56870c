package http

import (
	"net/http"

	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/m-mizutani/tubectl/pkg/usecase"
)

type resolveRequest struct {
	Options *model.DownloadOptions `json:"options"`
}

type resolveResponse struct {
	Arguments model.ArgumentList `json:"arguments"`
}

type submitRequest struct {
	URL     string                 `json:"url"`
	Options *model.DownloadOptions `json:"options"`
}

// newDefaultOptions is decoded into so that fields missing from a request keep their defaults
func newDefaultOptions() *model.DownloadOptions {
	opts := model.DefaultDownloadOptions()
	return &opts
}

func (h *handler) handleDefaultOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, model.DefaultDownloadOptions())
}

func (h *handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := resolveRequest{Options: newDefaultOptions()}
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err, errorStatus(err))
		return
	}
	if req.Options == nil {
		req.Options = newDefaultOptions()
	}
	if err := req.Options.ValidateFields(); err != nil {
		writeError(ctx, w, err, errorStatus(err))
		return
	}

	args := usecase.Resolve(*req.Options)
	if args == nil {
		args = model.ArgumentList{}
	}
	writeJSON(ctx, w, http.StatusOK, resolveResponse{Arguments: args})
}

// handleSubmit starts a submission. Locally rejected input is still accepted as a
// request and comes back as a failed state.
func (h *handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := submitRequest{Options: newDefaultOptions()}
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err, errorStatus(err))
		return
	}
	if req.Options == nil {
		req.Options = newDefaultOptions()
	}

	state, err := h.submission.Submit(ctx, req.URL, *req.Options)
	if err != nil {
		writeError(ctx, w, err, errorStatus(err))
		return
	}
	writeJSON(ctx, w, http.StatusAccepted, state)
}

func (h *handler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.submission.State())
}

func (h *handler) handleResetSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.submission.Reset(); err != nil {
		writeError(ctx, w, err, errorStatus(err))
		return
	}
	writeJSON(ctx, w, http.StatusOK, h.submission.State())
}
