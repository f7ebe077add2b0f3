package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/modelstore/internal/middleware"
	"github.com/ferdiebergado/modelstore/internal/pkg/web"
)

func TestCheckContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		wantCode    int
	}{
		{"JSON content type", web.MimeJSON, http.StatusOK},
		{"Missing content type", "", http.StatusNotAcceptable},
		{"Non-JSON content type", "text/plain", http.StatusNotAcceptable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
			if tt.contentType != "" {
				req.Header.Set(web.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()

			middleware.CheckContentType(handler).ServeHTTP(rec, req)

			gotCode, wantCode := rec.Code, tt.wantCode
			if gotCode != wantCode {
				t.Errorf("rec.Code = %d, want: %d", gotCode, wantCode)
			}
		})
	}
}
