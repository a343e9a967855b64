package http

import (
	"net/http"
	"time"
)

// HTTPClient interface abstracts HTTP client operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient creates an HTTP client for the short-lived API calls this
// tool makes.
func NewHTTPClient() HTTPClient {
	return &http.Client{
		Timeout: 30 * time.Second,
	}
}
