package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the sync client to the remote case API.
const UserAgent = "go-case-sync"

// HTTPClient embeds *resty.Client so adapters can use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client bound to baseURL that sends JSON and
// gives up on a request after timeout. A zero timeout means no limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
