package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubVerifier struct {
	userID string
	err    error
	seen   string
}

func (s *stubVerifier) Authenticate(token string) (string, error) {
	s.seen = token
	return s.userID, s.err
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		verifier     *stubVerifier
		expectedCode int
		expectedUser string
	}{
		{
			name:         "missing header",
			header:       "",
			verifier:     &stubVerifier{userID: "u1"},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "raw token without scheme",
			header:       "sometoken",
			verifier:     &stubVerifier{userID: "u1"},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "empty bearer value",
			header:       "Bearer ",
			verifier:     &stubVerifier{userID: "u1"},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "verification failure",
			header:       "Bearer sometoken",
			verifier:     &stubVerifier{err: errors.New("expired")},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "valid bearer token",
			header:       "Bearer sometoken",
			verifier:     &stubVerifier{userID: "u1"},
			expectedCode: http.StatusOK,
			expectedUser: "u1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/expenses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			BearerAuth(tt.verifier)(next).ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Errorf("got status %d; want %d", rec.Code, tt.expectedCode)
			}
			if tt.expectedUser != "" && gotUser != tt.expectedUser {
				t.Errorf("got user %q in context; want %q", gotUser, tt.expectedUser)
			}
		})
	}
}

func TestBearerAuth_StripsSchemeBeforeVerify(t *testing.T) {
	verifier := &stubVerifier{userID: "u1"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/expenses", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	BearerAuth(verifier)(next).ServeHTTP(httptest.NewRecorder(), req)

	if verifier.seen != "tok123" {
		t.Errorf("verifier saw %q; want tok123", verifier.seen)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := GetUserIDFromContext(req.Context()); got != "" {
		t.Errorf("got %q; want empty string", got)
	}
}
