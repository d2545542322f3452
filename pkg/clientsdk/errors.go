package clientsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Body       StandardError
}

func (e *APIError) Error() string {
	if e.Body.Message != "" {
		return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, e.Body.Error, e.Body.Message)
	}
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, e.Body.Error)
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool { return statusOf(err) == http.StatusNotFound }

// IsValidation reports whether err is a 422 from the service.
func IsValidation(err error) bool { return statusOf(err) == http.StatusUnprocessableEntity }

// IsConflict reports whether err is a 409 from the service.
func IsConflict(err error) bool { return statusOf(err) == http.StatusConflict }

// IsRateLimited reports whether err is a 429 from the service.
func IsRateLimited(err error) bool { return statusOf(err) == http.StatusTooManyRequests }

// parseErrorResponse builds an *APIError from a non-2xx response. Bodies that
// are not a StandardError still produce an error carrying the status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &apiErr.Body); err != nil || apiErr.Body.Error == "" {
		apiErr.Body = StandardError{
			Status: resp.StatusCode,
			Error:  http.StatusText(resp.StatusCode),
		}
	}
	return apiErr
}
