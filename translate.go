package yandextranslate

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Translate sends the request texts for translation and returns one result
// per text, in input order. Validation failures are returned before any
// network I/O; exactly one HTTP attempt is made per call.
func (c *Client) Translate(ctx context.Context, req *TranslateRequest) (*TranslateResponse, error) {
	if len(req.Texts) == 0 {
		return nil, fmt.Errorf("%w: texts is empty", ErrEmptyInput)
	}
	for i, text := range req.Texts {
		if text == "" {
			return nil, fmt.Errorf("%w: texts[%d] is empty", ErrEmptyInput, i)
		}
	}
	if err := validateLanguageCode(req.TargetLanguageCode); err != nil {
		return nil, err
	}

	var resp TranslateResponse
	if err := c.post(ctx, "/translate", req, &resp); err != nil {
		return nil, err
	}

	// The API contract promises positional correspondence with the input
	// texts; verify rather than assume.
	if len(resp.Translations) != len(req.Texts) {
		return nil, fmt.Errorf("%w: got %d translations for %d texts",
			ErrMalformedResponse, len(resp.Translations), len(req.Texts))
	}

	return &resp, nil
}

func validateLanguageCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: target language code is required", ErrInvalidArgument)
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("%w: target language code %q: %v", ErrInvalidArgument, code, err)
	}
	return nil
}
