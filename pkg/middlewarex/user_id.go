package middlewarex

import (
	"net/http"

	"cardwise/pkg/contextx"
)

const headerNameUserID = "X-User-Id"

// UserID carries the opaque user id resolved by the upstream auth layer.
// Nothing here authenticates; the id is propagated for logging only.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get(headerNameUserID); userID != "" {
			r = r.WithContext(contextx.WithUserID(r.Context(), contextx.UserID(userID)))
		}

		next.ServeHTTP(w, r)
	})
}
