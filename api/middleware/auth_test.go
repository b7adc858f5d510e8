package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalstarlog/freightdesk-backend/pkg/auth"
	"github.com/royalstarlog/freightdesk-backend/pkg/config"
)

type stubSessionChecker struct {
	live bool
	err  error
}

func (s *stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.live, s.err
}

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "middleware-test-secret",
		Issuer:            "freightdesk",
		ExpirationMinutes: 30,
	}
}

func mintTestToken(t *testing.T) string {
	t.Helper()
	token, err := auth.MintAccessToken(authTestConfig(), time.Now(), auth.AccessTokenPayload{Email: "ops@freightdesk.test"})
	require.NoError(t, err)
	return token
}

func TestRequireAuthAttachesEmail(t *testing.T) {
	var gotEmail string
	handler := RequireAuth(authTestConfig(), &stubSessionChecker{live: true}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotEmail = UserEmailFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loads", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ops@freightdesk.test", gotEmail)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	handler := RequireAuth(authTestConfig(), &stubSessionChecker{live: true}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loads", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	handler := RequireAuth(authTestConfig(), &stubSessionChecker{live: true}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loads", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsRevokedSession(t *testing.T) {
	handler := RequireAuth(authTestConfig(), &stubSessionChecker{live: false}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loads", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthSessionLookupFailure(t *testing.T) {
	handler := RequireAuth(authTestConfig(), &stubSessionChecker{err: assert.AnError}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loads", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
