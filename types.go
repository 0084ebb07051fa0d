package yandextranslate

// TranslateRequest is the payload of one translation call. The caller owns
// it; the client reads it and never modifies it.
//
// FolderID identifies the Yandex Cloud folder the request is billed to and
// is passed through unchecked. Leaving SourceLanguageCode empty omits the
// field from the request body, which asks the API to detect the source
// language per text.
type TranslateRequest struct {
	FolderID           string   `json:"folderId"`
	Texts              []string `json:"texts"`
	TargetLanguageCode string   `json:"targetLanguageCode"`
	SourceLanguageCode string   `json:"sourceLanguageCode,omitempty"`
}

// Translation is the result for one input text. DetectedLanguageCode is set
// only when the request left the source language empty.
type Translation struct {
	Text                 string `json:"text"`
	DetectedLanguageCode string `json:"detectedLanguageCode,omitempty"`
}

// TranslateResponse holds one Translation per input text, in input order.
type TranslateResponse struct {
	Translations []Translation `json:"translations"`
}

// DetectRequest is the payload of one language-detection call.
// LanguageCodeHints optionally narrows the languages the API considers.
type DetectRequest struct {
	FolderID          string   `json:"folderId"`
	Text              string   `json:"text"`
	LanguageCodeHints []string `json:"languageCodeHints,omitempty"`
}

type detectResponse struct {
	LanguageCode string `json:"languageCode"`
}

// Language describes one language supported by the API.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

type languagesRequest struct {
	FolderID string `json:"folderId,omitempty"`
}

type languagesResponse struct {
	Languages []Language `json:"languages"`
}
