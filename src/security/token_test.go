package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireNotifyToken(t *testing.T) {
	hash, err := HashToken("s3cret")
	if err != nil {
		t.Fatalf("failed to hash token: %v", err)
	}

	tests := []struct {
		name       string
		hash       string
		token      string
		wantStatus int
	}{
		{name: "valid token", hash: hash, token: "s3cret", wantStatus: http.StatusOK},
		{name: "wrong token", hash: hash, token: "guess", wantStatus: http.StatusUnauthorized},
		{name: "missing token", hash: hash, token: "", wantStatus: http.StatusUnauthorized},
		{name: "empty hash disables check", hash: "", token: "", wantStatus: http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := RequireNotifyToken(test.hash)(okHandler())

			req := httptest.NewRequest(http.MethodPost, "/notify/web-monitor", nil)
			if test.token != "" {
				req.Header.Set("X-Notify-Token", test.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != test.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, test.wantStatus)
			}
		})
	}
}
