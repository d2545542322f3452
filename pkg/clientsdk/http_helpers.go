package clientsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// url builds a complete URL by appending the path and query to the base URL.
func (c *SDKClient) url(path string, query url.Values) string {
	if len(query) == 0 {
		return c.BaseURL + path
	}
	return c.BaseURL + path + "?" + query.Encode()
}

// doRequest sends a request, JSON-encoding body when it is not nil.
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// decodeJSON decodes the response into target when the status matches
// expectedStatus and returns an *APIError otherwise.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// checkStatusNoContent returns a typed error if the response status is not 204 No Content.
func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}

	return nil
}
