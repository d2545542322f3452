package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/iftm/clients/pkg/slogx"
)

type Middleware func(http.Handler) http.Handler

// Chain wraps h with the given middlewares. The first middleware is the
// outermost, so it sees the request first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Recover turns a panicking handler into a 500 response. http.ErrAbortHandler
// is re-raised so the server can drop the connection.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slogx.FromContext(r.Context()).Error("panic serving request",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteError(w, r, http.StatusInternalServerError, "Internal server error", "unexpected error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
