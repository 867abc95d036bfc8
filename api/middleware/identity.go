package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/meridianhq/meridian/api/handlers"
	"github.com/meridianhq/meridian/identity"
)

// Authorize resolves the caller from the identity header and propagates
// it within the request context.
// Use `identity.FromContext` to get the caller back out.
func Authorize(authorizer identity.Authorizer, headerKey string, logger log.Logger) mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			email := r.Header.Get(headerKey)
			if email == "" {
				handlers.WriteJSONError(rw, http.StatusBadRequest, fmt.Sprintf("identity header %q is empty", headerKey))
				return
			}

			role, err := authorizer.Authorize(email)
			if err != nil {
				logger.Warn("error resolving caller role", "email", email, "error", err)
				handlers.WriteJSONError(rw, http.StatusInternalServerError, "error resolving caller role")
				return
			}

			ctx := identity.NewContext(r.Context(), identity.Identity{Email: email, Role: role})
			r = r.WithContext(ctx)
			h.ServeHTTP(rw, r)
		})
	}
}
