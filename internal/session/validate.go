package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ivmikh/notes-keeper/internal/service"
	"github.com/ivmikh/notes-keeper/models"
)

// State is the outcome class of a cookie validation attempt.
type State int

const (
	// StateMissing means no cookie was presented. No side effect.
	StateMissing State = iota

	// StateRejected means the cookie is tampered, structurally malformed or
	// past its expiry. The cookie must be deleted so it does not linger.
	StateRejected

	// StateIncomplete means the signature and expiry are fine but a required
	// field is absent. The cookie is left in place: a transient read anomaly
	// should not destroy a potentially valid artifact.
	StateIncomplete

	// StateUnverified means the live identity check did not confirm the
	// wrapped token. DeleteCookie tells apart a definitive rejection from a
	// transient verification failure.
	StateUnverified

	// StateAuthenticated means every check passed and Session is populated.
	StateAuthenticated
)

// Session is the authenticated state restored from a valid cookie.
type Session struct {
	// Token is the wrapped bearer access token.
	Token string

	// Identity is the summary returned by the live identity check, which may
	// be fresher than the one embedded in the cookie.
	Identity models.IdentitySummary

	// ViewState is the UI snapshot to restore.
	ViewState models.ViewState

	// ExpiresAt is the cookie expiry.
	ExpiresAt time.Time
}

// Validation is the result of [Manager.Validate].
type Validation struct {
	State State

	// DeleteCookie instructs the caller to expire the cookie on the client.
	DeleteCookie bool

	// Session is populated only when State is [StateAuthenticated].
	Session Session
}

// Authenticated reports whether the validation restored a usable session.
func (v Validation) Authenticated() bool {
	return v.State == StateAuthenticated
}

// Validate checks a presented cookie value and, when everything holds,
// restores the wrapped session. Checks run in order:
//
//  1. absent cookie — not authenticated, no side effect;
//  2. bad signature or malformed structure — not authenticated, delete;
//  3. expired — not authenticated, delete;
//  4. missing required field — not authenticated, cookie kept;
//  5. live re-verification of the wrapped token against the identity store;
//  6. re-verification failed — not authenticated; the cookie is deleted only
//     when the rejection is definitive (expired, malformed or invalid token,
//     inactive account), and kept when the failure looks transient, so a
//     flaky verification call does not log out a legitimate user.
//
// The live check is bounded by the manager's verify timeout and holds no
// locks while in flight.
func (m *Manager) Validate(ctx context.Context, cookieValue string) Validation {
	if cookieValue == "" {
		return Validation{State: StateMissing}
	}

	claims := &cookieClaims{}
	_, err := jwt.ParseWithClaims(cookieValue, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return []byte(m.signKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			m.logger.Debug().Msg("session cookie expired")
		} else {
			m.logger.Warn().Err(err).Msg("session cookie rejected")
		}
		return Validation{State: StateRejected, DeleteCookie: true}
	}

	if claims.BearerToken == "" || claims.ExpiresAt == nil || claims.UserID == 0 || claims.Username == "" {
		m.logger.Warn().Msg("session cookie is missing required fields")
		return Validation{State: StateIncomplete}
	}

	verifyCtx, cancel := context.WithTimeout(ctx, m.verifyTimeout)
	defer cancel()

	identity, err := m.verifier.VerifyIdentity(verifyCtx, claims.BearerToken)
	if err != nil {
		if isDefinitiveRejection(err) {
			m.logger.Info().Err(err).Msg("session cookie token rejected by identity check")
			return Validation{State: StateUnverified, DeleteCookie: true}
		}
		m.logger.Warn().Err(err).Msg("session cookie identity check failed transiently")
		return Validation{State: StateUnverified}
	}

	return Validation{
		State: StateAuthenticated,
		Session: Session{
			Token:     claims.BearerToken,
			Identity:  identity,
			ViewState: claims.ViewState,
			ExpiresAt: claims.ExpiresAt.Time,
		},
	}
}

// isDefinitiveRejection tells a rejection of the wrapped token apart from a
// transient verification failure such as an unreachable identity store.
func isDefinitiveRejection(err error) bool {
	return errors.Is(err, service.ErrTokenExpired) ||
		errors.Is(err, service.ErrTokenMalformed) ||
		errors.Is(err, service.ErrTokenInvalid) ||
		errors.Is(err, service.ErrInactiveUser)
}
