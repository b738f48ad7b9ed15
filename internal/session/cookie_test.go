package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetCookieAttributes(t *testing.T) {
	rr := httptest.NewRecorder()
	SetCookie(rr, Session{Token: "abc"}, time.Hour, CookieOptions{Secure: true})

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	require.Equal(t, CookieName, c.Name)
	require.Equal(t, "abc", c.Value)
	require.Equal(t, "/", c.Path)
	require.Equal(t, 3600, c.MaxAge)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestClearCookieExpiresImmediately(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearCookie(rr, CookieOptions{})

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Less(t, cookies[0].MaxAge, 0)
}
