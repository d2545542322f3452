package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/service"
	"github.com/iftm/clients/pkg/clientsdk"
	"github.com/iftm/clients/pkg/httpx"
	"github.com/iftm/clients/pkg/slogx"
)

func writeStandardError(w http.ResponseWriter, body clientsdk.StandardError) {
	body.Timestamp = time.Now().UTC()
	httpx.WriteJSON(w, body.Status, body)
}

// writeClientError is writeError for operations addressing one client; a
// missing client is reported against its canonical path.
func writeClientError(w http.ResponseWriter, r *http.Request, id int64, err error) {
	if errors.Is(err, service.ErrClientNotFound) {
		writeStandardError(w, clientsdk.StandardError{
			Status:  http.StatusNotFound,
			Error:   clientsdk.ErrorResourceNotFound,
			Message: err.Error(),
			Path:    clientPath(id),
		})
		return
	}
	writeError(w, r, err)
}

// writeError maps a handler or service error to its HTTP response. Unknown
// errors are logged and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := clientsdk.StandardError{Path: r.URL.Path, Message: err.Error()}

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		body.Status = http.StatusUnprocessableEntity
		body.Error = clientsdk.ErrorValidation
		body.Errors = make([]clientsdk.FieldMessage, len(verr.Fields))
		for i, f := range verr.Fields {
			body.Errors[i] = clientsdk.FieldMessage{FieldName: f.Field, Message: f.Message}
		}
	case errors.Is(err, service.ErrClientNotFound):
		body.Status = http.StatusNotFound
		body.Error = clientsdk.ErrorResourceNotFound
	case errors.Is(err, service.ErrCPFTaken):
		body.Status = http.StatusConflict
		body.Error = clientsdk.ErrorDatabase
	case errors.Is(err, httpx.ErrBadQuery),
		errors.Is(err, httpx.ErrBadBody),
		errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, domain.ErrInvalidSortField),
		errors.Is(err, domain.ErrInvalidDirection):
		body.Status = http.StatusBadRequest
		body.Error = clientsdk.ErrorBadRequest
	default:
		slogx.FromContext(r.Context()).Error("unhandled error", "error", err)
		body.Status = http.StatusInternalServerError
		body.Error = clientsdk.ErrorInternal
		body.Message = "unexpected error"
	}

	writeStandardError(w, body)
}

// notFound answers requests that match no route.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeStandardError(w, clientsdk.StandardError{
		Status:  http.StatusNotFound,
		Error:   clientsdk.ErrorResourceNotFound,
		Message: "no such route",
		Path:    r.URL.Path,
	})
}
