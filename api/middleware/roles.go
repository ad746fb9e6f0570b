package middleware

import (
	"net/http"

	"github.com/storelinkhq/storelink-backend/api/responses"
	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
	"github.com/storelinkhq/storelink-backend/pkg/logger"
)

// RequireOwner rejects requests whose actor is not a store owner.
func RequireOwner(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromContext(r.Context()) != "owner" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "Owner access required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
