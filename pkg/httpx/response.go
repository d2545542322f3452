package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxBodyBytes bounds request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

var ErrBadBody = errors.New("malformed request body")

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorBody for the request path.
func WriteError(w http.ResponseWriter, r *http.Request, code int, errText, message string) {
	WriteJSON(w, code, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    code,
		Error:     errText,
		Message:   message,
		Path:      r.URL.Path,
	})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON reads a single JSON value from the request body into v. Unknown
// fields are tolerated, trailing data and oversized bodies are not. Every
// failure wraps ErrBadBody.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrBadBody)
		}
		return fmt.Errorf("%w: %v", ErrBadBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrBadBody)
	}
	return nil
}
