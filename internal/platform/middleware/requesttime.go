package middleware

import (
	"net/http"
	"time"

	"fisc/pkg/requestcontext"
)

// RequestTime captures the current time at the start of the request so
// every timestamp recorded during one operation agrees: the stored record,
// the emitted event, and the log line all carry the same "now".
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
