package session

import (
	"net/http"
	"time"
)

// CookieName is the name of the reauthentication cookie.
const CookieName = "notes_auth"

// NewCookie builds the HTTP cookie carrying a signed session value.
// The cookie is HttpOnly; its payload is signed but not encrypted, so
// confidentiality relies on transport security.
func NewCookie(value string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that instructs the client to drop the
// reauthentication cookie immediately.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
