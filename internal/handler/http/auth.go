package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/service"
	"github.com/ivmikh/notes-keeper/internal/session"
	"github.com/ivmikh/notes-keeper/internal/store"
	"github.com/ivmikh/notes-keeper/internal/utils"
	"github.com/ivmikh/notes-keeper/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, models.User{Username: req.Username, Email: req.Email}, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			http.Error(w, "username already exists", http.StatusConflict)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, registeredUser.Summary(), http.StatusCreated)
}

// login verifies credentials, issues a bearer token and wraps it into the
// reauthentication cookie so a returning client can skip the login form.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword), errors.Is(err, service.ErrInactiveUser):
			log.Err(err).Msg("invalid credentials")
			http.Error(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, r, token.String(), foundUser.Summary(), models.ViewState{})

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.String(), TokenType: "bearer"}, http.StatusOK)
}

// me returns the verified identity of the presented bearer token and slides
// the reauthentication cookie's expiry forward, keeping the view-state the
// cookie already carries.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		log.Error().Msg("identity is missing from authenticated request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if token, ok := utils.GetBearerTokenFromContext(r.Context()); ok {
		view := models.ViewState{}
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			if peeked, ok := h.sessions.PeekViewState(cookie.Value); ok {
				view = peeked
			}
		}
		h.setSessionCookie(w, r, token, identity, view)
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}

// logout destroys the reauthentication cookie. The bearer token itself is
// stateless and simply ages out.
func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, session.ExpiredCookie())
	w.WriteHeader(http.StatusNoContent)
}

// setSessionCookie encodes and sets the reauthentication cookie, logging and
// skipping the cookie on encoding failure rather than failing the request.
func (h *Handler) setSessionCookie(w http.ResponseWriter, r *http.Request, token string, identity models.IdentitySummary, view models.ViewState) {
	value, expiresAt, err := h.sessions.Encode(token, identity, view)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("session cookie encoding failed")
		return
	}

	http.SetCookie(w, session.NewCookie(value, expiresAt))
}
