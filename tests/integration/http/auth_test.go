package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/device-sessions/internal/config"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

func loginUser(t *testing.T, ts *httptest.Server, email, password string) []*http.Cookie {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/token", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", testUserAgent)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return resp.Cookies()
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthRoutes(t *testing.T) {
	ts, conf, cleanup := setupTestServer()
	t.Cleanup(func() {
		cleanup(t)
	})

	seedInternalUser(t, conf, "auth@example.com", "password123")

	// Wrong password is rejected
	body, err := json.Marshal(map[string]string{
		"email":    "auth@example.com",
		"password": "wrong",
	})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/token", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid credentials open a tracked session
	cookies := loginUser(t, ts, "auth@example.com", "password123")
	access := cookieByName(cookies, config.AccessCookieName)
	refresh := cookieByName(cookies, config.RefreshCookieName)
	sid := cookieByName(cookies, config.SessionCookieName)
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	require.NotNil(t, sid)

	// Access token grants access to protected routes
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/protected", nil)
	require.NoError(t, err)
	req.AddCookie(access)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Without it access is denied
	resp, err = http.Get(ts.URL + "/protected")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Refresh reissues the access token from the cookie alone
	req, err = http.NewRequest(http.MethodPost, ts.URL+"/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(refresh)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	newAccess := cookieByName(resp.Cookies(), config.AccessCookieName)
	require.NotNil(t, newAccess)
	assert.NotEmpty(t, newAccess.Value)

	// The refresh token itself is not a valid access token
	req, err = http.NewRequest(http.MethodGet, ts.URL+"/protected", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: config.AccessCookieName, Value: refresh.Value})

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
