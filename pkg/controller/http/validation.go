package http

import (
	"bytes"
	_ "embed"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

//go:embed openapi.yaml
var openapiDocument []byte

// ValidationMiddleware validates requests against the embedded OpenAPI document.
// Requests that match no documented route are passed through unchanged.
func ValidationMiddleware() (func(next http.Handler) http.Handler, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load OpenAPI document")
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, goerr.Wrap(err, "invalid OpenAPI document")
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build OpenAPI router")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			var body []byte
			if r.Body != nil {
				body, err = io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
				if err != nil {
					writeError(r.Context(), w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
					return
				}
				_ = r.Body.Close()
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				writeError(r.Context(), w,
					goerr.Wrap(err, "request does not match API schema",
						goerr.V("path", r.URL.Path),
						goerr.T(model.ErrTagValidation)),
					http.StatusBadRequest)
				return
			}

			if body != nil {
				r.Body = io.NopCloser(bytes.NewReader(body))
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}
