package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func corsWrapped() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/contact", NewContactHandler(&mockContactService{}).Submit)
	mux.HandleFunc("GET /api/health", Health)
	return CORS(mux)
}

func TestCORS_HeadersOnEveryResponse(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"preflight", http.MethodOptions, "/api/contact", ""},
		{"success", http.MethodPost, "/api/contact", `{"name":"Ann","email":"ann@x.com","message":"Hi"}`},
		{"validation failure", http.MethodPost, "/api/contact", `{}`},
		{"parse failure", http.MethodPost, "/api/contact", "{bad"},
		{"health", http.MethodGet, "/api/health", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			corsWrapped().ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "OPTIONS, POST, GET" {
				t.Errorf("Access-Control-Allow-Methods = %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
				t.Errorf("Access-Control-Allow-Headers = %q", got)
			}
		})
	}
}

// TestCORS_PreflightSkipsBodyProcessing verifies OPTIONS returns 200 with
// the fixed envelope even when the body is garbage.
func TestCORS_PreflightSkipsBodyProcessing(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/contact", strings.NewReader("{not json at all"))
	rec := httptest.NewRecorder()
	corsWrapped().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", rec.Code)
	}

	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("preflight body is not a valid envelope: %v", err)
	}
	if env.StatusCode != 200 || env.Message != "OK" {
		t.Errorf("preflight envelope = %+v, want {200 OK}", env)
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("expected ok status in body, got %s", rec.Body.String())
	}
}

func TestRespond_EnvelopeShape(t *testing.T) {
	rec := httptest.NewRecorder()
	respond(rec, http.StatusBadRequest, "nope", nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected transport status 400, got %d", rec.Code)
	}

	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if env.StatusCode != 400 || env.Message != "nope" {
		t.Errorf("envelope = %+v", env)
	}
	// message and data are omitted when empty
	rec = httptest.NewRecorder()
	respond(rec, http.StatusOK, "", nil)
	body := rec.Body.String()
	if strings.Contains(body, "message") || strings.Contains(body, "data") {
		t.Errorf("expected omitted empty fields, got %s", body)
	}
}
