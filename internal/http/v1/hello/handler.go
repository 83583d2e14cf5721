// Package hello serves the fixed greeting.
package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/edp-greeting/internal/platform/logging"
)

// greeting is shared read-only by every request.
var greeting = []byte(Message)

// Register wires the greeting route under prefix (e.g. "/api" for GET /api/hello).
func Register(api huma.API, prefix string) {
	path := prefix + "/hello"
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        path,
		Summary:     "Get the greeting",
		Description: "Returns the constant greeting as plain text. Request headers, query parameters and body are ignored.",
		Tags:        []string{"Hello"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Greeting",
				Content: map[string]*huma.MediaType{
					"text/plain": {
						Schema: &huma.Schema{Type: huma.TypeString, Examples: []any{Message}},
					},
				},
			},
		},
	}, getHandler(path))
}

func getHandler(path string) func(context.Context, *struct{}) (*GetOutput, error) {
	return func(ctx context.Context, _ *struct{}) (*GetOutput, error) {
		applog.LogDebug(ctx, "hello get", zap.String("path", path))
		return &GetOutput{ContentType: contentType, Body: greeting}, nil
	}
}
