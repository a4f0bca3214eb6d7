package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes note CRUD and the conditional translation write against the
// "notes" table using the embedded [*DB] connection.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note for its owner. A fresh note always starts
// untranslated with a null original_content.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	var created models.Note
	row := r.db.QueryRowContext(ctx, createNote, note.Title, note.Content, note.UserID)

	if err := scanNote(row, &created); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetNote retrieves a note by id within the owner's scope. A note owned by
// someone else is indistinguishable from a missing one.
func (r *noteRepository) GetNote(ctx context.Context, id, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var found models.Note
	row := r.db.QueryRowContext(ctx, getNote, id, userID)

	if err := scanNote(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListNotes returns a page of userID's notes, newest first.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error: query error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = scanNote(rows, &note); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return notes, nil
}

// UpdateNote applies a partial edit. When the edit includes content, the same
// statement resets is_translated and clears original_content, so the note
// invariant holds at every observable point. Title-only edits leave the
// translation state alone.
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(update)
	if err != nil {
		return models.Note{}, err
	}

	var updated models.Note
	row := r.db.QueryRowContext(ctx, query, args...)

	if err = scanNote(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes a note within the owner's scope.
func (r *noteRepository) DeleteNote(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// MarkTranslated implements the compare-and-swap translation write. The
// UPDATE matches only an untranslated row; when it matches nothing the method
// re-reads the note to tell a concurrent winner ([ErrTranslationAlreadyApplied])
// apart from a missing note ([ErrNoteNotFound]).
func (r *noteRepository) MarkTranslated(ctx context.Context, id, userID int64, translatedContent, originalContent string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var updated models.Note
	row := r.db.QueryRowContext(ctx, markTranslated, translatedContent, originalContent, id, userID)

	err := scanNote(row, &updated)
	if err == nil {
		return updated, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*noteRepository.MarkTranslated").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// Zero rows: either the note is gone or another caller already won.
	existing, err := r.GetNote(ctx, id, userID)
	if err != nil {
		return models.Note{}, err
	}
	if existing.IsTranslated {
		return existing, ErrTranslationAlreadyApplied
	}

	return models.Note{}, fmt.Errorf("%w: conditional translation update matched no rows", ErrExecutingQuery)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(&note.ID, &note.Title, &note.Content, &note.IsTranslated, &note.OriginalContent, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
}
