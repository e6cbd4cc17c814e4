package middlewarex

import (
	"net/http"

	"deal_market/pkg/contextx"
	"deal_market/pkg/logx"
)

const headerNameUserID = "X-User-Id"

// UserID picks up the caller identity from the request header, if any,
// and attaches it to the context and the request-scoped logger.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerNameUserID)
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := contextx.WithUserID(r.Context(), contextx.UserID(userID))
		ctx = contextx.WithLogger(
			ctx,
			logger(ctx).With(logx.Stringer(logx.FieldUserID, contextx.UserID(userID))),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
