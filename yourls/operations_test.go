package yourls

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a static-auth client pointed at a fake backend that
// records the request form and replies with body.
func newTestClient(t *testing.T, body string) (*Client, *recordingBackend) {
	t.Helper()
	backend := &recordingBackend{status: http.StatusOK, body: body}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, Auth{Mode: ModeStatic, Username: "admin", Password: "secret"})
	require.NoError(t, err)
	return client, backend
}

func TestClient_Shorten(t *testing.T) {
	client, backend := newTestClient(t, `{"shorturl": "https://s.ex/abc", "status": "success"}`)

	result, err := client.Shorten(context.Background(), "https://long.example/path", "abc", "")
	require.NoError(t, err)

	assert.Equal(t, "https://s.ex/abc", result.ShortURL)
	assert.Equal(t, "https://long.example/path", result.URL)
	assert.Equal(t, "", result.Title)

	require.Len(t, backend.forms, 1)
	form := backend.forms[0]
	assert.Equal(t, "shorturl", form.Get("action"))
	assert.Equal(t, "https://long.example/path", form.Get("url"))
	assert.Equal(t, "abc", form.Get("keyword"))
	// empty optional params must be omitted, not sent as empty strings
	assert.False(t, form.Has("title"))
}

func TestClient_Shorten_OptionalParams(t *testing.T) {
	client, backend := newTestClient(t, `{"shorturl": "https://s.ex/x", "url": "https://a.example", "title": "A page"}`)

	result, err := client.Shorten(context.Background(), "https://a.example", "", "A page")
	require.NoError(t, err)

	assert.Equal(t, "A page", result.Title)
	form := backend.forms[0]
	assert.Equal(t, "A page", form.Get("title"))
	assert.False(t, form.Has("keyword"))
}

func TestClient_Shorten_BackendFailure(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
		wantCode    string
	}{
		{
			name:        "backend message and code",
			body:        `{"status": "fail", "message": "Short URL abc already exists", "code": "error:keyword"}`,
			wantMessage: "Short URL abc already exists",
			wantCode:    "error:keyword",
		},
		{
			name:        "defaults",
			body:        `{}`,
			wantMessage: "Unknown error",
			wantCode:    "unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.body)

			_, err := client.Shorten(context.Background(), "https://a.example", "", "")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestClient_Expand(t *testing.T) {
	client, backend := newTestClient(t, `{"longurl": "https://long.example/path", "shorturl": "https://s.ex/abc"}`)

	result, err := client.Expand(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "https://s.ex/abc", result.ShortURL)
	assert.Equal(t, "https://long.example/path", result.LongURL)
	assert.Equal(t, "", result.Title)

	form := backend.forms[0]
	assert.Equal(t, "expand", form.Get("action"))
	assert.Equal(t, "abc", form.Get("shorturl"))
}

func TestClient_Expand_DefaultShortURL(t *testing.T) {
	client, _ := newTestClient(t, `{"longurl": "https://long.example/path"}`)

	result, err := client.Expand(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", result.ShortURL)
}

func TestClient_URLStats(t *testing.T) {
	body := `{"link": {"shorturl": "https://s.ex/abc"}, "shorturl": "https://s.ex/abc", "clicks": "125", "title": "A page", "url": "https://long.example/path"}`
	client, backend := newTestClient(t, body)

	result, err := client.URLStats(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "https://s.ex/abc", result.ShortURL)
	assert.Equal(t, 125, result.Clicks)
	assert.Equal(t, "A page", result.Title)
	assert.Equal(t, "https://long.example/path", result.LongURL)

	assert.Equal(t, "url-stats", backend.forms[0].Get("action"))
}

func TestClient_URLStats_Defaults(t *testing.T) {
	client, _ := newTestClient(t, `{"link": {}}`)

	result, err := client.URLStats(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", result.ShortURL)
	assert.Equal(t, 0, result.Clicks)
	assert.Equal(t, "", result.Title)
	assert.Equal(t, "", result.LongURL)
}

func TestClient_DBStats(t *testing.T) {
	client, backend := newTestClient(t, `{"db-stats": {"total_links": "200", "total_clicks": 5000}}`)

	result, err := client.DBStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200, result.TotalLinks)
	assert.Equal(t, 5000, result.TotalClicks)
	assert.Equal(t, "db-stats", backend.forms[0].Get("action"))
}

func TestClient_DBStats_BackendFailure(t *testing.T) {
	client, _ := newTestClient(t, `{"message": "need auth", "code": "error:auth"}`)

	_, err := client.DBStats(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "need auth", apiErr.Message)
	assert.Equal(t, "error:auth", apiErr.Code)
}

func TestIntField(t *testing.T) {
	m := map[string]interface{}{
		"float":  float64(7),
		"string": "42",
		"junk":   "n/a",
		"nil":    nil,
	}
	assert.Equal(t, 7, intField(m, "float", 0))
	assert.Equal(t, 42, intField(m, "string", 0))
	assert.Equal(t, 9, intField(m, "junk", 9))
	assert.Equal(t, 9, intField(m, "nil", 9))
	assert.Equal(t, 9, intField(m, "absent", 9))
}

func TestAuthSign_StaticOverwritesCallerParams(t *testing.T) {
	form := url.Values{}
	form.Set("username", "spoof")
	Auth{Mode: ModeStatic, Username: "admin", Password: "secret"}.sign(form, time.Unix(1700000000, 0))
	assert.Equal(t, "admin", form.Get("username"))
	assert.Equal(t, "secret", form.Get("password"))
}
