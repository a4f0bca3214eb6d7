package store

import (
	"context"

	"github.com/ivmikh/notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// NoteRepository persists notes and their translation state. Every method is
// scoped by the owning user id; a note outside that scope behaves as absent.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, id, userID int64) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id, userID int64) error

	// MarkTranslated atomically records a translation result. The write is
	// conditional on the note still being untranslated; a concurrent winner
	// surfaces as [ErrTranslationAlreadyApplied].
	MarkTranslated(ctx context.Context, id, userID int64, translatedContent, originalContent string) (models.Note, error)
}
