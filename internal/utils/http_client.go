package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// so outbound adapters can configure base URLs, timeouts and headers
// through one shared type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new instance of HTTPClient
// with a default-configured underlying resty.Client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
