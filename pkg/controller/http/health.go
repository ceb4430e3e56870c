package http

import (
	"net/http"

	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/m-mizutani/tubectl/pkg/domain/types"
)

// handleHealth reports liveness together with the current submission status
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := &model.HealthStatus{
		Status:     "healthy",
		Service:    types.ServiceName,
		Version:    types.Version,
		Submission: h.submission.State().Status,
	}
	writeJSON(r.Context(), w, http.StatusOK, status)
}
