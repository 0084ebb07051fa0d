package yandextranslate

import (
	"context"
	"fmt"
)

// Detect asks the API which language the request text is written in and
// returns its language code.
func (c *Client) Detect(ctx context.Context, req *DetectRequest) (string, error) {
	if req.Text == "" {
		return "", fmt.Errorf("%w: text is empty", ErrEmptyInput)
	}

	var resp detectResponse
	if err := c.post(ctx, "/detect", req, &resp); err != nil {
		return "", err
	}
	if resp.LanguageCode == "" {
		return "", fmt.Errorf("%w: missing languageCode", ErrMalformedResponse)
	}
	return resp.LanguageCode, nil
}
