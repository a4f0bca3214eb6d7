package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ivmikh/notes-keeper/internal/config"
	"github.com/ivmikh/notes-keeper/internal/crypto"
	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/store"
	"github.com/ivmikh/notes-keeper/internal/utils"
	"github.com/ivmikh/notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// signingMethod is the HMAC variant resolved from TOKEN_ALGORITHM.
	signingMethod jwt.SigningMethod

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	method, err := utils.SigningMethodFromName(cfg.TokenAlgorithm)
	if err != nil {
		return nil, err
	}

	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenTTL(),
		signingMethod:  method,
		logger:         logger,
	}, nil
}

// RegisterUser creates a new user account.
//
// It validates that username, email and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if username, email or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Email == "" || password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and verifies the password against the
// stored bcrypt hash. An unknown username and a wrong password both surface
// as ErrWrongPassword, so the response does not reveal which accounts exist.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrWrongPassword on unknown username or password mismatch.
//   - ErrInactiveUser when the account is soft-disabled.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown username")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := crypto.VerifyPassword(password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("stored password hash is malformed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Int64("id", foundUser.ID).Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if !foundUser.IsActive {
		log.Warn().Int64("id", foundUser.ID).Msg("login attempt for inactive account")
		return models.User{}, ErrInactiveUser
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey, a.signingMethod)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim, and maps the low-level failure to the service-level typed
// sentinels:
//   - ErrTokenExpired   — the "exp" claim is in the past;
//   - ErrTokenMalformed — unparseable structure or signature mismatch;
//   - ErrTokenInvalid   — any other decode fault.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrTokenExpired):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		case errors.Is(err, utils.ErrTokenMalformed):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		default:
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
		}
	}

	return token, nil
}

// VerifyIdentity implements the live identity check behind every protected
// request and every cookie restore. Beyond the signature and expiry checks in
// ParseToken, the account is loaded so revocation (account removal or
// deactivation) takes effect even while a token is still cryptographically
// valid.
func (a *authService) VerifyIdentity(ctx context.Context, tokenString string) (models.IdentitySummary, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.IdentitySummary{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.GetUserID())
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Int64("id", token.GetUserID()).Msg("token subject does not exist")
			return models.IdentitySummary{}, fmt.Errorf("%w: unknown subject", ErrTokenInvalid)
		}
		log.Err(err).Int64("id", token.GetUserID()).Msg("user lookup failed during token verification")
		return models.IdentitySummary{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.IsActive {
		log.Warn().Int64("id", user.ID).Msg("token subject is inactive")
		return models.IdentitySummary{}, ErrInactiveUser
	}

	return user.Summary(), nil
}
