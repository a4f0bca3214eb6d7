package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/models"
)

// defaultVerifyTimeout bounds the live identity check during cookie
// validation. The check runs on every page load for a returning user, so it
// must never hang on a slow identity store.
const defaultVerifyTimeout = 5 * time.Second

// cookieClaims is the signed payload of the reauthentication cookie.
type cookieClaims struct {
	// BearerToken is the wrapped access token, restored into the session on a
	// successful validate.
	BearerToken string `json:"token,omitempty"`

	// UserID, Username and Email form the minimal identity summary.
	UserID   int64  `json:"user_id,omitempty"`
	Username string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`

	// ViewState is the UI snapshot restored after a page reload.
	ViewState models.ViewState `json:"view_state,omitempty"`

	jwt.RegisteredClaims
}

// Manager encodes and validates reauthentication cookies.
//
// The signing key comes from the startup provisioning gate and is distinct
// from the access-token key: compromising one artifact class must not allow
// forging the other.
type Manager struct {
	signKey string
	method  jwt.SigningMethod
	ttl     time.Duration

	verifier      IdentityVerifier
	verifyTimeout time.Duration

	logger *logger.Logger
}

// NewManager constructs a cookie [Manager]. ttl is the cookie lifetime
// (COOKIE_TTL_DAYS); verifier performs the mandatory live identity check
// during validation.
func NewManager(signKey string, method jwt.SigningMethod, ttl time.Duration, verifier IdentityVerifier, logger *logger.Logger) (*Manager, error) {
	if signKey == "" {
		return nil, fmt.Errorf("empty cookie signing key")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("non-positive cookie ttl")
	}
	if verifier == nil {
		return nil, fmt.Errorf("nil identity verifier")
	}
	if method == nil {
		method = jwt.SigningMethodHS256
	}

	return &Manager{
		signKey:       signKey,
		method:        method,
		ttl:           ttl,
		verifier:      verifier,
		verifyTimeout: defaultVerifyTimeout,
		logger:        logger,
	}, nil
}

// Encode signs a cookie value wrapping bearerToken, the identity summary and
// the view-state snapshot taken at encode time. Returns the cookie value and
// its expiry.
func (m *Manager) Encode(bearerToken string, identity models.IdentitySummary, view models.ViewState) (string, time.Time, error) {
	if bearerToken == "" {
		return "", time.Time{}, fmt.Errorf("empty bearer token")
	}

	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := cookieClaims{
		BearerToken: bearerToken,
		UserID:      identity.ID,
		Username:    identity.Username,
		Email:       identity.Email,
		ViewState:   view,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	value, err := jwt.NewWithClaims(m.method, claims).SignedString([]byte(m.signKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error occurred during signing session cookie: %w", err)
	}

	return value, expiresAt, nil
}

// PeekViewState decodes the view-state snapshot from a cookie value using
// only local checks (signature, expiry). It is used when re-issuing a cookie
// for a request that has already been authenticated by other means, where a
// second live identity check would be wasted work.
func (m *Manager) PeekViewState(cookieValue string) (models.ViewState, bool) {
	if cookieValue == "" {
		return models.ViewState{}, false
	}

	claims := &cookieClaims{}
	_, err := jwt.ParseWithClaims(cookieValue, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return []byte(m.signKey), nil
	})
	if err != nil {
		return models.ViewState{}, false
	}

	return claims.ViewState, true
}
