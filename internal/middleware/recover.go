package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"planets-explorer/internal/shared/errors"
	"planets-explorer/internal/shared/response"
)

// Recover turns a panic in a handler into a 500 with the generic error body.
// http.ErrAbortHandler is re-raised so the server can drop the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger := slog.With("middleware", "recover", "stack", string(debug.Stack()))
			response.Error(w, r, logger, errors.WrapInternal("handler panicked", fmt.Errorf("%v", rec)))
		}()

		next.ServeHTTP(w, r)
	})
}
