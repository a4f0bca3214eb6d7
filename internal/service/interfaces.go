package service

import (
	"context"

	"github.com/ivmikh/notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// VerifyIdentity resolves a bearer token to a live identity: the token is
	// parsed, the account is loaded and its is_active flag checked.
	VerifyIdentity(ctx context.Context, tokenString string) (models.IdentitySummary, error)
}

type NotesService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, id, userID int64) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id, userID int64) error

	// TranslateNote persists a translation; repeating it on an already
	// translated note is a no-op returning the persisted result.
	TranslateNote(ctx context.Context, id, userID int64) (models.Note, error)

	// PreviewTranslation returns a translation of the note's current content
	// without mutating the note.
	PreviewTranslation(ctx context.Context, id, userID int64) (string, error)
}
