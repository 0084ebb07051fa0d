// Package yandextranslate is a client for the Yandex Cloud Translate v2
// HTTP API.
//
// A client is created with one of two credential forms: a long-lived API
// key or a short-lived IAM bearer token. Exactly one is supplied, via
// [NewWithAPIKey] or [NewWithIAMToken]:
//
//	client, err := yandextranslate.NewWithAPIKey("my-api-key")
//	if err != nil {
//		// empty or malformed credential
//	}
//
//	resp, err := client.Translate(ctx, &yandextranslate.TranslateRequest{
//		FolderID:           "b1gexample",
//		Texts:              []string{"Hello world"},
//		TargetLanguageCode: "ru",
//	})
//
// Leaving SourceLanguageCode empty asks the API to detect the source
// language; each returned [Translation] then carries the detected code.
// Translations come back in the same order as the input texts.
//
// Failures are reported through typed errors: precondition failures
// ([ErrEmptyInput], [ErrInvalidArgument]) are returned before any network
// I/O, remote rejections as [*APIError], network failures as
// [*TransportError], and unparseable success bodies as
// [ErrMalformedResponse]. Use errors.Is and errors.As to distinguish them.
//
// The client performs exactly one HTTP attempt per call and never retries;
// retry, backoff and timeout policy belong to the caller, either through
// the context or through an injected [net/http.Client]. A Client is safe
// for concurrent use.
//
// The blocking subpackage offers the same operations without a context
// parameter for synchronous callers.
package yandextranslate
