package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/edp-greeting/internal/http/v1/hello"
)

// Prefix is the path prefix shared by all API operations.
const Prefix = "/api"

// Register wires all API operations into the provided huma API.
func Register(api huma.API) {
	hello.Register(api, Prefix)
}
