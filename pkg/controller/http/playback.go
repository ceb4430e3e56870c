package http

import (
	"net/http"

	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

type playbackResponse struct {
	IsFullscreen bool                    `json:"is_fullscreen"`
	Pending      model.PendingFullscreen `json:"pending"`
}

type playbackEventRequest struct {
	FullscreenElement string `json:"fullscreen_element"`
}

func (h *handler) playbackView() playbackResponse {
	return playbackResponse{
		IsFullscreen: h.playback.State().IsFullscreen,
		Pending:      h.bridge.Pending(),
	}
}

func (h *handler) handleGetPlayback(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.playbackView())
}

// handleToggle queues a fullscreen request. The mirrored state changes only once the
// page reports back through handlePlaybackEvent.
func (h *handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.playback.Toggle(ctx); err != nil {
		writeError(ctx, w, err, errorStatus(err))
		return
	}
	writeJSON(ctx, w, http.StatusAccepted, h.playbackView())
}

func (h *handler) handlePlaybackEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req playbackEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err, errorStatus(err))
		return
	}

	h.bridge.Dispatch(req.FullscreenElement)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleAck(w http.ResponseWriter, r *http.Request) {
	h.bridge.Ack()
	w.WriteHeader(http.StatusNoContent)
}
