package interfaces

import (
	"context"

	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

// BackendClient submits download jobs to the backend service
type BackendClient interface {
	// PostDownload sends req and blocks until the backend replies. onProgress is called
	// with upload progress in percent. It may run on another goroutine but never after
	// PostDownload returns.
	PostDownload(ctx context.Context, req *model.DownloadRequest, onProgress func(percent int)) (*model.DownloadResponse, error)
}
