package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-report/internal/weather"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *OpenMeteoResolver {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	r := NewOpenMeteoResolver(server.Client()).WithBaseURL(server.URL)
	r.httpCfg.Backoff.MaxRetries = 0
	r.httpCfg.Backoff.InitialInterval = time.Millisecond
	return r
}

func TestOpenMeteoResolver_Resolve(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if q.Get("name") != "London" {
			t.Errorf("name = %q, want London", q.Get("name"))
		}
		if q.Get("count") != "1" {
			t.Errorf("count = %q, want 1", q.Get("count"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"latitude": 51.50853, "longitude": -0.12574, "name": "London"}]}`))
	})

	coords, err := r.Resolve(context.Background(), "London")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if coords.Latitude != 51.50853 || coords.Longitude != -0.12574 {
		t.Errorf("Resolve() = %+v", coords)
	}
}

func TestOpenMeteoResolver_NoMatch(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"generationtime_ms": 0.5}`))
	})

	_, err := r.Resolve(context.Background(), "Atlantis")
	if !errors.Is(err, weather.ErrResolution) {
		t.Fatalf("Resolve() error = %v, want ErrResolution", err)
	}
}

func TestOpenMeteoResolver_ServerError(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := r.Resolve(context.Background(), "London")
	if !errors.Is(err, weather.ErrTransport) {
		t.Fatalf("Resolve() error = %v, want ErrTransport", err)
	}
}
