package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/service"
	"github.com/ivmikh/notes-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// and resolves it to a live identity via [service.AuthService.VerifyIdentity];
// on success it stores the user ID, the identity summary and the raw token in
// the request context before delegating to the next handler. Resolving the
// identity (not just checking the signature) means account deactivation takes
// effect immediately, even for tokens that are still cryptographically valid.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token has expired ([service.ErrTokenExpired]) — reported as such so
//     the client can show "session expired" instead of "please log in again".
//   - The token is malformed, otherwise invalid, or belongs to an inactive
//     account.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.VerifyIdentity(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, service.ErrTokenExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during token verification")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the verified identity in the context so that downstream
		// handlers can retrieve it without re-verifying the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, identity.ID)
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)
		ctx = context.WithValue(ctx, utils.BearerTokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
