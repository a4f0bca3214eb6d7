package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// wrapped into a reauthentication cookie.
//
// UserID is a cached, parsed copy of the "sub" claim converted to int64. The
// subject is always written as a string to avoid cross-implementation
// numeric-claim ambiguity; UserID spares callers the repeated conversion.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID returns the owner identifier extracted from the "sub" claim when
// the token was generated or parsed.
func (t *Token) GetUserID() int64 {
	return t.UserID
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
