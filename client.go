package yandextranslate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production endpoint of the Translate v2 API.
const DefaultBaseURL = "https://translate.api.cloud.yandex.net/translate/v2"

const (
	schemeAPIKey = "Api-Key"
	schemeBearer = "Bearer"
)

// authMethod is the credential attached to every request. Exactly one of
// the two schemes is held; the Authorization header value is a pure
// function of it.
type authMethod struct {
	scheme string
	secret string
}

func (a authMethod) headerValue() string {
	return a.scheme + " " + a.secret
}

// Client calls the Yandex Translate API with a fixed credential. It holds
// no mutable state after construction and is safe for concurrent use; the
// underlying http.Client pools connections across calls.
type Client struct {
	baseURL string
	auth    authMethod
	client  *http.Client
	logger  zerolog.Logger
}

// NewWithAPIKey creates a Client authenticated with a Yandex Cloud API key.
// The key is sent as "Authorization: Api-Key <key>".
func NewWithAPIKey(key string) (*Client, error) {
	return newClient(authMethod{scheme: schemeAPIKey, secret: key})
}

// NewWithIAMToken creates a Client authenticated with an IAM bearer token.
// The token is sent as "Authorization: Bearer <token>".
func NewWithIAMToken(token string) (*Client, error) {
	return newClient(authMethod{scheme: schemeBearer, secret: token})
}

func newClient(auth authMethod) (*Client, error) {
	if err := validateSecret(auth.secret); err != nil {
		return nil, err
	}

	return &Client{
		baseURL: DefaultBaseURL,
		auth:    auth,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  zerolog.Nop(),
	}, nil
}

func validateSecret(secret string) error {
	if strings.TrimSpace(secret) == "" {
		return ErrEmptyCredential
	}
	for i := 0; i < len(secret); i++ {
		if secret[i] < 0x21 || secret[i] == 0x7f {
			return ErrInvalidCredential
		}
	}
	return nil
}

// WithBaseURL overrides the API endpoint. Useful for mocks and proxies.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// WithHTTPClient replaces the underlying HTTP client. The replacement owns
// all transport policy: timeouts, proxies, connection pooling.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.client = httpClient
	return c
}

// WithLogger attaches a logger for debug-level request traces. The default
// is zerolog.Nop(); errors are always returned to the caller, never logged.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	c.logger = logger
	return c
}

// post issues one POST to baseURL+path and decodes the JSON response into
// out. Exactly one attempt is made; all failures map to the typed errors
// in errors.go.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.auth.headerValue())

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request complete")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
