package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	})
}

func TestRequireKey_NoKeysAllowsAll(t *testing.T) {
	h := RequireKey(nil)(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/probes", nil))
	if rec.Code != 200 {
		t.Fatalf("want 200, got %d", rec.Code)
	}
}

func TestRequireKey_RejectsMissingKey(t *testing.T) {
	h := RequireKey([]string{"adm_x"})(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/probes", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d", rec.Code)
	}
}

func TestRequireKey_AcceptsBearerAndHeader(t *testing.T) {
	h := RequireKey([]string{"adm_x"})(okHandler())

	r := httptest.NewRequest("POST", "/api/probes", nil)
	r.Header.Set("Authorization", "Bearer adm_x")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if rec.Code != 200 {
		t.Fatalf("bearer: want 200, got %d", rec.Code)
	}

	r = httptest.NewRequest("POST", "/api/probes", nil)
	r.Header.Set("X-API-Key", "adm_x")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if rec.Code != 200 {
		t.Fatalf("x-api-key: want 200, got %d", rec.Code)
	}
}
