package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	before := time.Now().Add(-time.Second)
	Handler("1.0.0")(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var h Response
	if err := json.Unmarshal(resp.Body.Bytes(), &h); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if h.Status != "healthy" {
		t.Fatalf("expected status 'healthy', got %s", h.Status)
	}
	if h.Version != "1.0.0" {
		t.Fatalf("expected version 1.0.0, got %s", h.Version)
	}
	if h.Timestamp.Before(before) {
		t.Fatalf("expected current timestamp, got %s", h.Timestamp)
	}
	if !strings.Contains(resp.Body.String(), `Z"`) {
		t.Fatalf("expected UTC timestamp, got %s", resp.Body.String())
	}
}
