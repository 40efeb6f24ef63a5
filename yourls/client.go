package yourls

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client talks to a single YOURLS API endpoint. It is immutable after New
// and safe for concurrent use – each call builds its own request state.
type Client struct {
	endpoint   string
	auth       Auth
	httpClient *http.Client
	now        func() time.Time
}

// Option customises a Client before construction completes.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for outbound calls, e.g. to
// set timeouts or inject a test transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New validates the credential set and returns a ready client. Validation
// failures wrap ErrConfiguration.
func New(endpoint string, auth Auth, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("%w: api endpoint is required", ErrConfiguration)
	}
	if err := auth.validate(); err != nil {
		return nil, err
	}
	if auth.Mode == ModeSigned && auth.SignatureTTL == 0 {
		auth.SignatureTTL = DefaultSignatureTTL
	}
	c := &Client{
		endpoint:   endpoint,
		auth:       auth,
		httpClient: http.DefaultClient,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the configured API endpoint URL.
func (c *Client) Endpoint() string { return c.endpoint }

// call performs one form-encoded POST. The body carries the action, the
// json format selector, the caller's parameters and finally the auth fields.
// A non-2xx status or an undecodable body yields a *TransportError.
func (c *Client) call(ctx context.Context, action string, params url.Values) (map[string]interface{}, error) {
	form := url.Values{}
	form.Set("action", action)
	form.Set("format", "json")
	for key, values := range params {
		for _, value := range values {
			form.Add(key, value)
		}
	}
	c.auth.sign(form, c.now())

	log.Debug().Str("action", action).Str("endpoint", c.endpoint).Msg("yourls api call")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", action, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}
	return parsed, nil
}
