package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ivmikh/notes-keeper/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id, username, email, password_hash, is_active, created_at, updated_at;`

	findUserByUsername = `SELECT id, username, email, password_hash, is_active, created_at, updated_at
	FROM users
	WHERE username = $1;`

	findUserByID = `SELECT id, username, email, password_hash, is_active, created_at, updated_at
	FROM users
	WHERE id = $1;`

	createNote = `INSERT INTO notes (title, content, user_id)
	VALUES ($1, $2, $3)
	RETURNING id, title, content, is_translated, original_content, user_id, created_at, updated_at;`

	getNote = `SELECT id, title, content, is_translated, original_content, user_id, created_at, updated_at
	FROM notes
	WHERE id = $1 AND user_id = $2;`

	deleteNote = `DELETE FROM notes
	WHERE id = $1 AND user_id = $2;`

	// markTranslated is conditional on is_translated = FALSE: the losing side
	// of a concurrent translate affects zero rows instead of overwriting the
	// winner's original_content.
	markTranslated = `UPDATE notes
	SET content = $1, original_content = $2, is_translated = TRUE, updated_at = NOW()
	WHERE id = $3 AND user_id = $4 AND is_translated = FALSE
	RETURNING id, title, content, is_translated, original_content, user_id, created_at, updated_at;`
)

var noteColumns = []string{"id", "title", "content", "is_translated", "original_content", "user_id", "created_at", "updated_at"}

// buildListNotesQuery builds the per-user note listing, newest first.
// skip and limit page through the result; non-positive values are omitted
// from the statement.
func buildListNotesQuery(userID int64, skip, limit int) (string, []any, error) {
	builder := sq.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC, id DESC")

	if skip > 0 {
		builder = builder.Offset(uint64(skip))
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildUpdateNoteQuery dynamically builds the UPDATE for a partial note edit.
// A content change also resets the translation state in the same statement,
// so the is_translated/original_content invariant can never be observed half
// applied.
func buildUpdateNoteQuery(update models.NoteUpdate) (string, []any, error) {
	if update.Title == nil && update.Content == nil {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := sq.Update("notes").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}

	if update.Content != nil {
		builder = builder.
			Set("content", *update.Content).
			Set("is_translated", false).
			Set("original_content", nil)
	}

	return builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING id, title, content, is_translated, original_content, user_id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
