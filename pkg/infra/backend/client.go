package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/domain/interfaces"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

// DefaultEndpoint is the download job endpoint of a locally running backend
const DefaultEndpoint = "http://localhost:8000/download/"

const maxResponseSize = 1 << 20

type client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures the backend client
type Option func(*client)

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the overall request timeout. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = d
	}
}

// New creates a backend client posting download jobs to endpoint
func New(endpoint string, opts ...Option) interfaces.BackendClient {
	c := &client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostDownload posts req as JSON and reports upload progress through onProgress.
// onProgress may run on the HTTP transport's goroutine but never after PostDownload
// returns.
func (c *client) PostDownload(ctx context.Context, req *model.DownloadRequest, onProgress func(percent int)) (*model.DownloadResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode download request")
	}

	body := &progressReader{
		r:          bytes.NewReader(payload),
		total:      int64(len(payload)),
		onProgress: onProgress,
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("endpoint", c.endpoint))
	}
	httpReq.ContentLength = int64(len(payload))
	// lets the client follow 307/308 redirects (e.g. /download -> /download/); the
	// resent body does not report progress again
	httpReq.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(payload)), nil
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	body.stop()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send download request",
			goerr.V("endpoint", c.endpoint),
			goerr.T(model.ErrTagTransport))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read download response",
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagTransport))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remote := &model.RemoteError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(data),
		}
		return nil, goerr.Wrap(remote, "backend returned error status",
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagRemote))
	}

	var out model.DownloadResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, goerr.Wrap(err, "invalid download response",
			goerr.V("body", truncate(string(data), 256)),
			goerr.T(model.ErrTagRemote))
	}

	return &out, nil
}

// extractDetail returns the "detail" field of an error body. A string detail is
// returned as is; structured details (e.g. validation error lists) as raw JSON.
func extractDetail(data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}
	if string(body.Detail) == "null" {
		return ""
	}
	return string(body.Detail)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "...(truncated)"
}

// progressReader reports the share of the body consumed so far
type progressReader struct {
	r          io.Reader
	total      int64
	onProgress func(int)

	mu      sync.Mutex
	sent    int64
	stopped bool
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent += int64(n)
	if n > 0 && !p.stopped && p.onProgress != nil && p.total > 0 {
		p.onProgress(int(math.Round(float64(p.sent) * 100 / float64(p.total))))
	}
	return n, err
}

// stop waits for an in-flight callback and suppresses later ones
func (p *progressReader) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
}
