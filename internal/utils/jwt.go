package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ivmikh/notes-keeper/models"
)

// Typed verification failures. Callers must distinguish the three classes:
// an expired token and a malformed one lead to different user-facing copy
// and different cookie cleanup actions at the boundary.
var (
	// ErrTokenExpired is returned when the token's "exp" claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMalformed is returned when the token structure cannot be parsed
	// or the signature does not match.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenInvalid is returned for any other decode fault (wrong issuer,
	// missing subject, unexpected signing method).
	ErrTokenInvalid = errors.New("token is invalid")
)

// SigningMethodFromName resolves a configured algorithm name (TOKEN_ALGORITHM)
// to a jwt.SigningMethod. Only the HMAC family is supported; the signing key
// is a shared secret, not a key pair.
func SigningMethodFromName(name string) (jwt.SigningMethod, error) {
	switch name {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported token algorithm %q", name)
	}
}

// GenerateJWTToken creates a signed JWT access token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a base-10 string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// The subject is always a string, never a numeric claim, so that tokens stay
// unambiguous across JWT implementations.
//
// Returns an error if any parameter is empty or zero, or if signing fails.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string, method jwt.SigningMethod) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}
	if method == nil {
		method = jwt.SigningMethodHS256
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation is a pure function of (token, signKey, issuer, now) — no I/O.
// It verifies the signature, the issuer claim, the expiration claim, and the
// presence of a subject convertible to an int64 user ID.
//
// Failures are normalised to the typed sentinels above:
//   - [ErrTokenExpired]   — "exp" is in the past;
//   - [ErrTokenMalformed] — structure unparseable or signature mismatch;
//   - [ErrTokenInvalid]   — anything else (issuer mismatch, bad subject).
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		default:
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: subject is not a user id: %w", ErrTokenInvalid, err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token string from an Authorization header
// value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
