package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "https://a.example", method: http.MethodGet, wantOrigin: "*", wantStatus: http.StatusOK},
		{name: "listed origin", origins: []string{"https://a.example"}, origin: "https://a.example", method: http.MethodGet, wantOrigin: "https://a.example", wantStatus: http.StatusOK},
		{name: "unlisted origin", origins: []string{"https://a.example"}, origin: "https://b.example", method: http.MethodGet, wantOrigin: "", wantStatus: http.StatusOK},
		{name: "preflight", origins: []string{"*"}, origin: "https://a.example", method: http.MethodOptions, wantOrigin: "*", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/v1/health", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			NewCORSMiddleware(tt.origins).Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
