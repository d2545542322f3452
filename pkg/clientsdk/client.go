package clientsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to one clients service instance.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
