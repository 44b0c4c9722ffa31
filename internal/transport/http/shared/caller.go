package shared

import (
	"context"
	"net/http"

	"sipeka/internal/domain/identity"
	"sipeka/internal/transport/http/api"
	"sipeka/internal/transport/http/middleware"
)

type CallerResolver interface {
	ResolveCaller(ctx context.Context, tokenIdentifier string) (identity.User, error)
}

// Caller resolves the authenticated user for the request. A missing
// session token yields 401; a token with no matching user yields the
// resolver's error. Returns false when a response has been written.
func Caller(w http.ResponseWriter, r *http.Request, resolver CallerResolver) (identity.User, bool) {
	reqID := middleware.GetRequestID(r.Context())
	token := middleware.GetTokenIdentifier(r.Context())
	if token == "" {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "anda belum login", reqID)
		return identity.User{}, false
	}
	caller, err := resolver.ResolveCaller(r.Context(), token)
	if err != nil {
		api.Problem(w, err, "caller_resolve_failed", reqID)
		return identity.User{}, false
	}
	return caller, true
}
