package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/platform/logging"
	"github.com/photostreak/streak-service/internal/ports"
)

const bearerPrefix = "bearer "

// identityKey is the context key for the authenticated caller.
type identityKey struct{}

// WithIdentity returns a new context carrying the authenticated caller.
func WithIdentity(ctx context.Context, id *ports.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the authenticated caller, or nil outside
// an Authenticate-wrapped handler.
func IdentityFromContext(ctx context.Context) *ports.Identity {
	id, _ := ctx.Value(identityKey{}).(*ports.Identity)
	return id
}

// Authenticate returns middleware that requires an Authorization: Bearer
// token accepted by verifier. The caller's identity is stored in the request
// context, added to the request logger as user_id and published to the
// request state for the access log and trace. Requests without a valid token
// get an RFC 9457 401 response.
//
// This middleware must run after Logging so the enriched logger replaces the
// request logger.
func Authenticate(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, r)
				return
			}

			id, err := verifier.VerifyToken(ctx, token)
			if err != nil {
				if errors.Is(err, domain.ErrUnavailable) {
					dto.WriteErrorResponse(w, r, err)
					return
				}
				logging.FromContext(ctx).InfoContext(ctx, "token rejected", slog.Any("error", err))
				unauthorized(w, r)
				return
			}

			requestStateFrom(ctx).setUser(id.UserID)
			ctx = WithIdentity(ctx, id)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.String("user_id", id.UserID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if len(h) <= len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(h[len(bearerPrefix):])
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="streak-service"`)
	dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
}

// RequireAdmin returns middleware that only admits identities listed in
// admins. It must run after Authenticate.
func RequireAdmin(admins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		allowed[a] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := IdentityFromContext(r.Context())
			if id == nil {
				unauthorized(w, r)
				return
			}
			if _, ok := allowed[id.UserID]; !ok {
				dto.WriteErrorResponse(w, r, domain.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
