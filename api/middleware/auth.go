package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/storelinkhq/storelink-backend/api/responses"
	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
	"github.com/storelinkhq/storelink-backend/pkg/logger"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
	headerUsername = "X-Username"
)

// AccountStatusChecker verifies that the identified account may act.
// Implementations return typed errors carrying the user-facing message.
type AccountStatusChecker interface {
	EnsureActive(ctx context.Context, userID uuid.UUID) error
}

// Identity reads the trusted identity headers set by the edge proxy and seeds
// the request context. It does not validate signatures; the gateway in front
// of this service owns authentication.
func Identity(checker AccountStatusChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := strings.TrimSpace(r.Header.Get(headerUserID))
			if rawID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "User information missing"))
				return
			}

			userID, err := uuid.Parse(rawID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "Invalid user ID"))
				return
			}

			role := strings.TrimSpace(r.Header.Get(headerUserRole))
			username := strings.TrimSpace(r.Header.Get(headerUsername))

			if checker != nil {
				if err := checker.EnsureActive(r.Context(), userID); err != nil {
					responses.WriteError(r.Context(), logg, w, err)
					return
				}
			}

			ctx := WithUserID(r.Context(), userID.String())
			ctx = WithRole(ctx, role)
			ctx = WithUsername(ctx, username)

			if logg != nil {
				fields := map[string]any{
					"user_id":    userID.String(),
					"actor_role": role,
				}
				ctx = logg.WithFields(ctx, fields)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
