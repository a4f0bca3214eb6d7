package http

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/service"
	"github.com/ivmikh/notes-keeper/internal/session"
	"github.com/ivmikh/notes-keeper/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn   func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn          func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	verifyIdentityFn func(ctx context.Context, tokenString string) (models.IdentitySummary, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerUserFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) VerifyIdentity(ctx context.Context, tokenString string) (models.IdentitySummary, error) {
	return m.verifyIdentityFn(ctx, tokenString)
}

// mockNotesService implements service.NotesService for unit tests.
type mockNotesService struct {
	createNoteFn         func(ctx context.Context, note models.Note) (models.Note, error)
	getNoteFn            func(ctx context.Context, id, userID int64) (models.Note, error)
	listNotesFn          func(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error)
	updateNoteFn         func(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	deleteNoteFn         func(ctx context.Context, id, userID int64) error
	translateNoteFn      func(ctx context.Context, id, userID int64) (models.Note, error)
	previewTranslationFn func(ctx context.Context, id, userID int64) (string, error)
}

func (m *mockNotesService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return m.createNoteFn(ctx, note)
}

func (m *mockNotesService) GetNote(ctx context.Context, id, userID int64) (models.Note, error) {
	return m.getNoteFn(ctx, id, userID)
}

func (m *mockNotesService) ListNotes(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error) {
	return m.listNotesFn(ctx, userID, skip, limit)
}

func (m *mockNotesService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	return m.updateNoteFn(ctx, update)
}

func (m *mockNotesService) DeleteNote(ctx context.Context, id, userID int64) error {
	return m.deleteNoteFn(ctx, id, userID)
}

func (m *mockNotesService) TranslateNote(ctx context.Context, id, userID int64) (models.Note, error) {
	return m.translateNoteFn(ctx, id, userID)
}

func (m *mockNotesService) PreviewTranslation(ctx context.Context, id, userID int64) (string, error) {
	return m.previewTranslationFn(ctx, id, userID)
}

// newTestHandler wires a Handler around the given mocks. The session manager
// is signed with a fixed test key and uses auth (which also implements the
// identity check) as its live verifier.
func newTestHandler(t *testing.T, auth *mockAuthService, notes *mockNotesService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if notes == nil {
		notes = &mockNotesService{}
	}

	sessions, err := session.NewManager("test-cookie-key", jwt.SigningMethodHS256, 24*time.Hour, auth, logger.Nop())
	require.NoError(t, err)

	return NewHandler(&service.Services{AuthService: auth, NotesService: notes}, sessions, "test", logger.Nop())
}

func signedToken(value string) models.Token {
	return models.Token{SignedString: value, UserID: 7}
}

func testSummary() models.IdentitySummary {
	return models.IdentitySummary{ID: 7, Username: "alice", Email: "alice@example.com"}
}
