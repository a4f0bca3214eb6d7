package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/mock"
	"github.com/ivmikh/notes-keeper/internal/service"
	"github.com/ivmikh/notes-keeper/models"
)

func newTestManager(t *testing.T) (*Manager, *mock.MockIdentityVerifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	verifier := mock.NewMockIdentityVerifier(ctrl)

	m, err := NewManager("test-cookie-key", jwt.SigningMethodHS256, 24*time.Hour, verifier, logger.Nop())
	require.NoError(t, err)

	return m, verifier
}

func testIdentity() models.IdentitySummary {
	return models.IdentitySummary{ID: 7, Username: "alice", Email: "alice@example.com"}
}

func TestValidate_RoundTrip(t *testing.T) {
	m, verifier := newTestManager(t)

	openNote := int64(42)
	view := models.ViewState{OpenNoteID: &openNote}

	value, expiresAt, err := m.Encode("bearer-token", testIdentity(), view)
	require.NoError(t, err)
	require.NotEmpty(t, value)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	verifier.EXPECT().
		VerifyIdentity(gomock.Any(), "bearer-token").
		Return(testIdentity(), nil)

	v := m.Validate(context.Background(), value)
	require.Equal(t, StateAuthenticated, v.State)
	assert.True(t, v.Authenticated())
	assert.False(t, v.DeleteCookie)

	assert.Equal(t, "bearer-token", v.Session.Token)
	assert.Equal(t, testIdentity(), v.Session.Identity)
	require.NotNil(t, v.Session.ViewState.OpenNoteID)
	assert.Equal(t, int64(42), *v.Session.ViewState.OpenNoteID)
}

func TestValidate_MissingCookie(t *testing.T) {
	m, _ := newTestManager(t)

	v := m.Validate(context.Background(), "")
	assert.Equal(t, StateMissing, v.State)
	assert.False(t, v.DeleteCookie)
}

func TestValidate_TamperedCookie(t *testing.T) {
	m, _ := newTestManager(t)

	value, _, err := m.Encode("bearer-token", testIdentity(), models.ViewState{})
	require.NoError(t, err)

	// Flip the signature segment.
	parts := strings.Split(value, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"

	v := m.Validate(context.Background(), tampered)
	assert.Equal(t, StateRejected, v.State)
	assert.True(t, v.DeleteCookie)
}

func TestValidate_Garbage(t *testing.T) {
	m, _ := newTestManager(t)

	v := m.Validate(context.Background(), "not a cookie at all")
	assert.Equal(t, StateRejected, v.State)
	assert.True(t, v.DeleteCookie)
}

func TestValidate_ExpiredCookie(t *testing.T) {
	m, _ := newTestManager(t)
	m.ttl = -time.Hour

	value, _, err := m.Encode("bearer-token", testIdentity(), models.ViewState{})
	require.NoError(t, err)

	v := m.Validate(context.Background(), value)
	assert.Equal(t, StateRejected, v.State)
	assert.True(t, v.DeleteCookie)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	m, _ := newTestManager(t)

	// Hand-sign a structurally valid cookie with no wrapped token.
	claims := cookieClaims{
		UserID:   7,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-cookie-key"))
	require.NoError(t, err)

	v := m.Validate(context.Background(), value)
	assert.Equal(t, StateIncomplete, v.State)
	// The artifact may still be valid; a read anomaly must not destroy it.
	assert.False(t, v.DeleteCookie)
}

func TestValidate_RevokedToken(t *testing.T) {
	m, verifier := newTestManager(t)

	value, _, err := m.Encode("revoked-token", testIdentity(), models.ViewState{})
	require.NoError(t, err)

	verifier.EXPECT().
		VerifyIdentity(gomock.Any(), "revoked-token").
		Return(models.IdentitySummary{}, service.ErrTokenExpired)

	v := m.Validate(context.Background(), value)
	assert.Equal(t, StateUnverified, v.State)
	assert.True(t, v.DeleteCookie)
}

func TestValidate_InactiveAccount(t *testing.T) {
	m, verifier := newTestManager(t)

	value, _, err := m.Encode("bearer-token", testIdentity(), models.ViewState{})
	require.NoError(t, err)

	verifier.EXPECT().
		VerifyIdentity(gomock.Any(), "bearer-token").
		Return(models.IdentitySummary{}, service.ErrInactiveUser)

	v := m.Validate(context.Background(), value)
	assert.Equal(t, StateUnverified, v.State)
	assert.True(t, v.DeleteCookie)
}

func TestValidate_TransientVerificationFailure(t *testing.T) {
	m, verifier := newTestManager(t)

	value, _, err := m.Encode("bearer-token", testIdentity(), models.ViewState{})
	require.NoError(t, err)

	verifier.EXPECT().
		VerifyIdentity(gomock.Any(), "bearer-token").
		Return(models.IdentitySummary{}, errors.New("identity store unreachable"))

	// A flaky live check must not log the user out for good.
	v := m.Validate(context.Background(), value)
	assert.Equal(t, StateUnverified, v.State)
	assert.False(t, v.DeleteCookie)
}

func TestValidate_LiveCheckIsBounded(t *testing.T) {
	m, verifier := newTestManager(t)
	m.verifyTimeout = 10 * time.Millisecond

	value, _, err := m.Encode("bearer-token", testIdentity(), models.ViewState{})
	require.NoError(t, err)

	verifier.EXPECT().
		VerifyIdentity(gomock.Any(), "bearer-token").
		DoAndReturn(func(ctx context.Context, _ string) (models.IdentitySummary, error) {
			<-ctx.Done()
			return models.IdentitySummary{}, ctx.Err()
		})

	start := time.Now()
	v := m.Validate(context.Background(), value)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, StateUnverified, v.State)
	assert.False(t, v.DeleteCookie)
}

func TestNewManager_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockIdentityVerifier(ctrl)

	_, err := NewManager("", jwt.SigningMethodHS256, time.Hour, verifier, logger.Nop())
	require.Error(t, err)

	_, err = NewManager("key", jwt.SigningMethodHS256, 0, verifier, logger.Nop())
	require.Error(t, err)

	_, err = NewManager("key", jwt.SigningMethodHS256, time.Hour, nil, logger.Nop())
	require.Error(t, err)
}

func TestEncode_EmptyToken(t *testing.T) {
	m, _ := newTestManager(t)

	_, _, err := m.Encode("", testIdentity(), models.ViewState{})
	require.Error(t, err)
}

func TestCookieHelpers(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)
	c := NewCookie("value", expiresAt)
	assert.Equal(t, CookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
	assert.WithinDuration(t, expiresAt, c.Expires, time.Second)

	gone := ExpiredCookie()
	assert.Equal(t, CookieName, gone.Name)
	assert.Equal(t, -1, gone.MaxAge)
	assert.Empty(t, gone.Value)
}
