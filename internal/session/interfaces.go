// Package session implements the reauthentication cookie: a long-lived signed
// artifact that lets a returning client skip the login form. The cookie wraps
// the bearer access token, a minimal identity summary and a snapshot of UI
// view-state, and is signed with a key distinct from the access-token key.
package session

import (
	"context"

	"github.com/ivmikh/notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_verifier_mock.go -package=mock

// IdentityVerifier resolves a bearer token to a live identity. This is a real
// lookup against the identity store, not just a local signature check: the
// cookie can legitimately outlive revocation of the wrapped token (shorter
// token TTL, deactivated account), so a cookie restore must always re-verify.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, token string) (models.IdentitySummary, error)
}
