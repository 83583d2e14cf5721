package health

import (
	"encoding/json"
	"net/http"

	"github.com/janisto/edp-greeting/internal/platform/timeutil"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status    string        `json:"status"`
	Version   string        `json:"version"`
	Timestamp timeutil.Time `json:"timestamp"`
}

// Handler returns a plain HTTP handler reporting liveness and the running version.
func Handler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Response{
			Status:    "healthy",
			Version:   version,
			Timestamp: timeutil.Now(),
		})
	}
}
