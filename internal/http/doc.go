// Package http provides the HTTP client used to talk to the studycafe API.
//
// The Client in this package handles:
//   - User-Agent and X-Request-ID headers
//   - Timeout handling
//   - JSON decoding of successful responses
//   - StatusError for non-200 responses, carrying the server's "detail" message
//
// # Basic Usage
//
//	client := http.NewClient(http.WithTimeout(30 * time.Second))
//
//	var payload struct{ Artists []model.Artist `json:"artists"` }
//	err := client.GetJSON(ctx, baseURL+"/api/artists", &payload)
//
// # Error Handling
//
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) && statusErr.NotFound() {
//	    // the server answered 404
//	}
package http
