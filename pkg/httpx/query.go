package httpx

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
)

var ErrBadQuery = errors.New("invalid query parameter")

// QueryString returns the trimmed query parameter, or def when it is absent
// or blank.
func QueryString(r *http.Request, name, def string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(name)); v != "" {
		return v
	}
	return def
}

// QueryInt parses an integer query parameter, returning def when absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrBadQuery, name)
	}
	return n, nil
}

// QueryFloat parses a finite decimal query parameter, returning def when absent.
func QueryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s must be a number", ErrBadQuery, name)
	}
	return f, nil
}

// RequiredQueryFloat is QueryFloat for a parameter that must be present.
func RequiredQueryFloat(r *http.Request, name string) (float64, error) {
	if strings.TrimSpace(r.URL.Query().Get(name)) == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrBadQuery, name)
	}
	return QueryFloat(r, name, 0)
}

// PathInt64 parses a path wildcard registered on the ServeMux pattern.
func PathInt64(r *http.Request, name string) (int64, error) {
	n, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrBadQuery, name)
	}
	return n, nil
}
