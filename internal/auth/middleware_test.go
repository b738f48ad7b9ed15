package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/fittrack/internal/session"
)

// unreachableStore simulates a session backend that cannot be reached.
type unreachableStore struct{}

func (unreachableStore) Issue(ctx context.Context, userID int64) (session.Session, error) {
	return session.Session{}, errors.New("session store: connection refused")
}

func (unreachableStore) Resolve(ctx context.Context, token string) (*session.Session, error) {
	return nil, errors.New("session store: connection refused")
}

func (unreachableStore) Revoke(ctx context.Context, token string) error {
	return errors.New("session store: connection refused")
}

func TestRequireAuthPassesUserThrough(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	_, sess, err := svc.Login(ctx, "alice@example.com", "pw")
	require.NoError(t, err)

	var seenID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		seenID = user.ID
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.Token})
	rr := httptest.NewRecorder()

	NewMiddleware(svc).RequireAuth(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, registered.ID, seenID)
}

func TestRequireAuthRejectsMissingCookie(t *testing.T) {
	svc, _ := newTestService()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rr := httptest.NewRecorder()

	NewMiddleware(svc).RequireAuth(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.JSONEq(t, `{"type":"unauthorized","detail":"missing or invalid session"}`, rr.Body.String())
}

func TestRequireAuthReportsStoreFailureAs500(t *testing.T) {
	svc := NewService(newFakeUserRepo(), unreachableStore{}, PlaintextVerifier{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "some-token"})
	rr := httptest.NewRecorder()

	NewMiddleware(svc).RequireAuth(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.JSONEq(t, `{"type":"server_error","detail":"session lookup failed"}`, rr.Body.String())
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	svc, _ := newTestService()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "stale-token"})
	rr := httptest.NewRecorder()

	NewMiddleware(svc).RequireAuth(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
