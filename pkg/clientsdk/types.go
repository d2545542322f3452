package clientsdk

import (
	"net/url"
	"strconv"
	"time"
)

// ============================================================================
// Client Types
// ============================================================================

// ClientDTO is the JSON representation of a client record.
type ClientDTO struct {
	// ID is assigned by the service and ignored on create and update
	ID int64 `json:"id"`

	Name string `json:"name"`

	// CPF is the Brazilian taxpayer number, unique per client
	CPF string `json:"cpf"`

	Income float64 `json:"income"`

	// BirthDate is an RFC 3339 instant in UTC
	BirthDate time.Time `json:"birthDate"`

	Children int `json:"children"`
}

// UpdateClientRequest is the body of PUT /clients/{id}. Nil fields are left
// unchanged.
type UpdateClientRequest struct {
	Name      *string    `json:"name,omitempty"`
	CPF       *string    `json:"cpf,omitempty"`
	Income    *float64   `json:"income,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Children  *int       `json:"children,omitempty"`
}

// ============================================================================
// Paging Types
// ============================================================================

// Page is one page of a sorted, filtered result set.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// PageParams are the paging query parameters. Zero values fall back to the
// server defaults: page 0, 12 lines, ASC, ordered by name.
type PageParams struct {
	Page         int
	LinesPerPage int
	Direction    string // "ASC" or "DESC"
	OrderBy      string // id, name, cpf, income, birthDate or children
}

// Values encodes the non-zero parameters as a query string.
func (p PageParams) Values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.LinesPerPage > 0 {
		v.Set("linesPerPage", strconv.Itoa(p.LinesPerPage))
	}
	if p.Direction != "" {
		v.Set("direction", p.Direction)
	}
	if p.OrderBy != "" {
		v.Set("orderBy", p.OrderBy)
	}
	return v
}

// ============================================================================
// Error Types
// ============================================================================

// Values of StandardError.Error.
const (
	ErrorResourceNotFound = "Resource not found"
	ErrorValidation       = "Validation exception"
	ErrorBadRequest       = "Bad request"
	ErrorDatabase         = "Database exception"
	ErrorInternal         = "Internal server error"
	ErrorTooManyRequests  = "Too many requests"
)

// FieldMessage names one rejected field of a request body.
type FieldMessage struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// StandardError is the body of every non-2xx response.
type StandardError struct {
	Timestamp time.Time      `json:"timestamp"`
	Status    int            `json:"status"`
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Path      string         `json:"path"`
	Errors    []FieldMessage `json:"errors,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	// Database indicates the store connection status
	Database string `json:"database"`
}
