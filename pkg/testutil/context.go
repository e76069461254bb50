package testutil

import (
	"net/http"
	"time"

	id "fisc/pkg/domain"
	"fisc/pkg/requestcontext"
)

// WithPrincipal attaches an authenticated principal to the request
// context, simulating what the auth middleware does for a valid bearer
// token.
func WithPrincipal(req *http.Request, principal id.Principal) *http.Request {
	return req.WithContext(requestcontext.WithPrincipal(req.Context(), principal))
}

// WithRequestTime pins the request time so handlers record deterministic
// timestamps.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
