package http

import (
	"encoding/json"
	"net/http"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/session"
	"github.com/ivmikh/notes-keeper/internal/utils"
	"github.com/ivmikh/notes-keeper/models"
)

// restoreSession rebuilds an authenticated session from the reauthentication
// cookie, so a returning client skips the login form. The validation order
// and the cookie dispositions (delete on tamper or definitive rejection, keep
// on read anomalies and transient failures) are implemented by
// [session.Manager.Validate]; this handler only translates the outcome to
// HTTP.
func (h *Handler) restoreSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var cookieValue string
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		cookieValue = cookie.Value
	}

	v := h.sessions.Validate(r.Context(), cookieValue)
	if v.DeleteCookie {
		http.SetCookie(w, session.ExpiredCookie())
	}
	if !v.Authenticated() {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// Slide the cookie expiry forward on every successful restore.
	h.setSessionCookie(w, r, v.Session.Token, v.Session.Identity, v.Session.ViewState)

	log.Debug().Int64("id", v.Session.Identity.ID).Msg("session restored from cookie")

	utils.WriteJSON(w, models.SessionResponse{
		AccessToken: v.Session.Token,
		TokenType:   "bearer",
		User:        v.Session.Identity,
		ViewState:   v.Session.ViewState,
	}, http.StatusOK)
}

// updateViewState re-issues the reauthentication cookie with a fresh UI
// snapshot, so a page reload resumes on the note the user was viewing.
func (h *Handler) updateViewState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var view models.ViewState
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	token, ok := utils.GetBearerTokenFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.setSessionCookie(w, r, token, identity, view)

	utils.WriteJSON(w, view, http.StatusOK)
}
