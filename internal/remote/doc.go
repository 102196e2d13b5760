// Package remote fetches the translation payload over HTTP.
//
// # Client Usage
//
//	client, err := remote.NewClient("https://example.com/v2/translations/en-us")
//	if err != nil {
//		return err
//	}
//	entries, err := client.FetchTranslations(ctx)
//
// The endpoint is a single URL answering GET with a JSON object that maps
// each translation key to {"base": "...", "<locale>": "..."}. Entries come
// back in document order.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json
//   - Include User-Agent: locedit/<version>
//   - Are bounded by the client timeout (10 seconds unless configured)
//
// # Error Handling
//
// Errors are wrapped with the step that failed:
//
//   - "create request: ..." for a request that could not be built
//   - "execute request: ..." for network failures, timeouts and cancellation
//   - "api <url> returned status N" for any status outside 2xx
//   - "read response: ..." and "decode response: ..." for body failures
//
// There is no retry; callers decide whether to fall back to other data.
package remote
