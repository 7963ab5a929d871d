package mbta

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mcsjb/mbta/config"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.AppConfig{
		API: config.APIConfig{
			BaseURL:    server.URL,
			TimeoutMS:  2000,
			MaxRetries: 3,
			BackoffMS:  1,
			RouteTypes: []int{0, 1},
		},
		APIKey: "test-key",
	}
	return NewClient(cfg), server
}

func TestClient_GetRoutes(t *testing.T) {
	var gotReq *http.Request
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"data": [
			{"id": "Red", "type": "route", "attributes": {"long_name": "Red Line", "type": 1}},
			{"id": "Green-B", "type": "route", "attributes": {"long_name": "Green Line B", "type": 0}}
		]}`))
	}))

	res, err := client.GetRoutes(context.Background(), []int{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotReq.URL.Path != "/routes" {
		t.Errorf("path = %q, want /routes", gotReq.URL.Path)
	}
	if got := gotReq.URL.Query().Get("filter[type]"); got != "0,1" {
		t.Errorf("filter[type] = %q, want 0,1", got)
	}
	if got := gotReq.Header.Get("x-api-key"); got != "test-key" {
		t.Errorf("x-api-key = %q, want test-key", got)
	}
	if got := gotReq.Header.Get("Accept"); got != "application/vnd.api+json" {
		t.Errorf("Accept = %q", got)
	}

	if len(res.Data) != 2 || res.Data[0].ID != "Red" || res.Data[0].Attributes.LongName != "Red Line" {
		t.Errorf("unexpected response: %+v", res)
	}
}

func TestClient_GetStops(t *testing.T) {
	var gotReq *http.Request
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"data": [{"id": "place-alfcl", "attributes": {"name": "Alewife"}}]}`))
	}))

	res, err := client.GetStops(context.Background(), "Red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotReq.URL.Path != "/stops" {
		t.Errorf("path = %q, want /stops", gotReq.URL.Path)
	}
	if got := gotReq.URL.Query().Get("filter[route]"); got != "Red" {
		t.Errorf("filter[route] = %q, want Red", got)
	}
	if len(res.Data) != 1 || res.Data[0].Attributes.Name != "Alewife" {
		t.Errorf("unexpected response: %+v", res)
	}
}

func TestClient_RetriesTransientStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "rate limited", status: http.StatusTooManyRequests},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway},
		{name: "unavailable", status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				if calls <= 2 {
					w.WriteHeader(tt.status)
					return
				}
				_, _ = w.Write([]byte(`{"data": []}`))
			}))

			if _, err := client.GetRoutes(context.Background(), nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if calls != 3 {
				t.Errorf("calls = %d, want 3", calls)
			}
		})
	}
}

func TestClient_RetryExhaustion(t *testing.T) {
	calls := 0
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.GetRoutes(context.Background(), nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want RequestError", err)
	}
	// initial attempt + MaxRetries
	if calls != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	calls := 0
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := client.GetRoutes(context.Background(), nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want RequestError", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	}))

	_, err := client.GetRoutes(context.Background(), nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want RequestError", err)
	}
}

func TestClient_ValidationFailure(t *testing.T) {
	// Well-formed JSON but a stop without a name must be rejected, not
	// fed into the graph as an empty string.
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"id": "place-alfcl", "attributes": {}}]}`))
	}))

	_, err := client.GetStops(context.Background(), "Red")
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetRoutes(ctx, nil)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
