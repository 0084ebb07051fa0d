// Package blocking exposes the Yandex Translate client without a context
// parameter, for synchronous callers such as CLI tools and scripts. Each
// call blocks the calling goroutine for the full HTTP round trip; the two
// client flavors are otherwise the same contract and are never needed
// together in one program.
package blocking

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	yandextranslate "github.com/savannstm/yandex-translate"
)

// Client wraps the context-aware client, supplying context.Background()
// on every call. Like the wrapped client it is safe for concurrent use.
type Client struct {
	inner *yandextranslate.Client
}

// NewWithAPIKey creates a blocking Client authenticated with an API key.
func NewWithAPIKey(key string) (*Client, error) {
	inner, err := yandextranslate.NewWithAPIKey(key)
	if err != nil {
		return nil, err
	}
	return &Client{inner: inner}, nil
}

// NewWithIAMToken creates a blocking Client authenticated with an IAM token.
func NewWithIAMToken(token string) (*Client, error) {
	inner, err := yandextranslate.NewWithIAMToken(token)
	if err != nil {
		return nil, err
	}
	return &Client{inner: inner}, nil
}

// WithBaseURL overrides the API endpoint.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.inner.WithBaseURL(baseURL)
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.inner.WithHTTPClient(httpClient)
	return c
}

// WithLogger attaches a logger for debug-level request traces.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	c.inner.WithLogger(logger)
	return c
}

// Translate translates the request texts, blocking until the response
// arrives or the transport gives up.
func (c *Client) Translate(req *yandextranslate.TranslateRequest) (*yandextranslate.TranslateResponse, error) {
	return c.inner.Translate(context.Background(), req)
}

// Detect returns the language code of the request text.
func (c *Client) Detect(req *yandextranslate.DetectRequest) (string, error) {
	return c.inner.Detect(context.Background(), req)
}

// Languages returns the list of supported languages.
func (c *Client) Languages(folderID string) ([]yandextranslate.Language, error) {
	return c.inner.Languages(context.Background(), folderID)
}
