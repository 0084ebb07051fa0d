package yandextranslate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestDetect_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/detect" {
			t.Errorf("expected path '/detect', got %q", r.URL.Path)
		}
		var req DetectRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Text != "Hello world" {
			t.Errorf("expected text 'Hello world', got %q", req.Text)
		}
		w.Write([]byte(`{"languageCode":"en"}`))
	})

	code, err := client.Detect(context.Background(), &DetectRequest{
		FolderID: "f1",
		Text:     "Hello world",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "en" {
		t.Errorf("expected 'en', got %q", code)
	}
}

func TestDetect_SendsLanguageCodeHints(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req DetectRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.LanguageCodeHints) != 2 {
			t.Errorf("expected 2 hints, got %v", req.LanguageCodeHints)
		}
		w.Write([]byte(`{"languageCode":"uk"}`))
	})

	code, err := client.Detect(context.Background(), &DetectRequest{
		Text:              "Привіт",
		LanguageCodeHints: []string{"uk", "ru"},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "uk" {
		t.Errorf("expected 'uk', got %q", code)
	}
}

func TestDetect_EmptyText_NoNetworkCall(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := client.Detect(context.Background(), &DetectRequest{FolderID: "f1"})

	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected zero HTTP calls, got %d", calls)
	}
}

func TestDetect_MissingLanguageCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.Detect(context.Background(), &DetectRequest{Text: "Hello"})

	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestDetect_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":16,"message":"The provided API key is invalid"}`))
	})

	_, err := client.Detect(context.Background(), &DetectRequest{Text: "Hello"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}
}
