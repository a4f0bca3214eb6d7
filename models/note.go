package models

import "time"

// Note represents a single user-owned note record.
//
// Translation state is the (IsTranslated, OriginalContent, Content) triple:
// IsTranslated == true holds exactly when OriginalContent is non-nil. The
// store layer maintains this invariant by mutating all three fields in a
// single statement.
type Note struct {
	// ID is the internal unique identifier of the note.
	ID int64 `json:"id"`

	// Title is the short display title. Title-only edits do not affect
	// translation state.
	Title string `json:"title"`

	// Content is the note body shown to the user. After a persisted
	// translation it holds the provider result.
	Content string `json:"content"`

	// IsTranslated marks whether Content currently holds a persisted
	// translation of OriginalContent.
	IsTranslated bool `json:"is_translated"`

	// OriginalContent holds the pre-translation body while IsTranslated is
	// true, and is nil otherwise.
	OriginalContent *string `json:"original_content"`

	// UserID is the identifier of the owning user. Notes are never visible
	// across users.
	UserID int64 `json:"user_id"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last note mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate carries a partial note mutation. Nil fields are left untouched.
// A non-nil Content resets translation state in the same statement.
type NoteUpdate struct {
	ID      int64   `json:"-"`
	UserID  int64   `json:"-"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
