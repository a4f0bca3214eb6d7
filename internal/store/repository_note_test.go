package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/models"
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &noteRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func noteRows(note models.Note, now time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "title", "content", "is_translated", "original_content", "user_id", "created_at", "updated_at"}).
		AddRow(note.ID, note.Title, note.Content, note.IsTranslated, note.OriginalContent, note.UserID, now, now)
}

func TestCreateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	note := models.Note{Title: "groceries", Content: "milk", UserID: 7}
	saved := note
	saved.ID = 1

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(note.Title, note.Content, note.UserID).
		WillReturnRows(noteRows(saved, time.Now()))

	created, err := repo.CreateNote(context.Background(), note)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.IsTranslated {
		t.Error("a fresh note must start untranslated")
	}
	if created.OriginalContent != nil {
		t.Error("a fresh note must have no original content")
	}
}

func TestGetNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WithArgs(int64(42), int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetNote(context.Background(), 42, 7)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestListNotes_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "title", "content", "is_translated", "original_content", "user_id", "created_at", "updated_at"}).
		AddRow(2, "second", "text", false, nil, int64(7), now, now).
		AddRow(1, "first", "text", false, nil, int64(7), now, now)

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	notes, err := repo.ListNotes(context.Background(), 7, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != 2 {
		t.Errorf("expected newest note first, got ID=%d", notes[0].ID)
	}
}

func TestUpdateNote_ContentEditResetsTranslation(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	content := "new text"
	update := models.NoteUpdate{ID: 42, UserID: 7, Content: &content}

	reset := models.Note{ID: 42, Title: "groceries", Content: content, UserID: 7}

	mock.ExpectQuery("UPDATE notes").
		WithArgs(content, false, nil, int64(42), int64(7)).
		WillReturnRows(noteRows(reset, time.Now()))

	updated, err := repo.UpdateNote(context.Background(), update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.IsTranslated {
		t.Error("content edit must reset is_translated")
	}
	if updated.OriginalContent != nil {
		t.Error("content edit must clear original_content")
	}
}

func TestUpdateNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	title := "renamed"
	update := models.NoteUpdate{ID: 42, UserID: 7, Title: &title}

	mock.ExpectQuery("UPDATE notes").
		WithArgs(title, int64(42), int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateNote(context.Background(), update)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestUpdateNote_NoFields(t *testing.T) {
	repo, _, db := newTestNoteRepo(t)
	defer db.Close()

	_, err := repo.UpdateNote(context.Background(), models.NoteUpdate{ID: 42, UserID: 7})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestDeleteNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(int64(42), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteNote(context.Background(), 42, 7)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestMarkTranslated_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	original := "Привет"
	translated := models.Note{
		ID:              42,
		Title:           "greeting",
		Content:         "Hello",
		IsTranslated:    true,
		OriginalContent: &original,
		UserID:          7,
	}

	mock.ExpectQuery("UPDATE notes").
		WithArgs("Hello", original, int64(42), int64(7)).
		WillReturnRows(noteRows(translated, time.Now()))

	note, err := repo.MarkTranslated(context.Background(), 42, 7, "Hello", original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !note.IsTranslated {
		t.Error("expected is_translated to be set")
	}
	if note.OriginalContent == nil || *note.OriginalContent != original {
		t.Errorf("expected original content %q, got %v", original, note.OriginalContent)
	}
}

func TestMarkTranslated_ConcurrentWinner(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	original := "Привет"
	winner := models.Note{
		ID:              42,
		Content:         "Hello",
		IsTranslated:    true,
		OriginalContent: &original,
		UserID:          7,
	}

	// The conditional UPDATE matches nothing, the follow-up read shows the
	// note already translated by a concurrent caller.
	mock.ExpectQuery("UPDATE notes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(42), int64(7)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT (.+) FROM notes").
		WithArgs(int64(42), int64(7)).
		WillReturnRows(noteRows(winner, time.Now()))

	note, err := repo.MarkTranslated(context.Background(), 42, 7, "Hello again", "Привет")
	if !errors.Is(err, ErrTranslationAlreadyApplied) {
		t.Fatalf("expected ErrTranslationAlreadyApplied, got %v", err)
	}
	if note.Content != "Hello" {
		t.Errorf("expected the winner's content to be returned, got %q", note.Content)
	}
}

func TestMarkTranslated_NoteGone(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE notes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(42), int64(7)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT (.+) FROM notes").
		WithArgs(int64(42), int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.MarkTranslated(context.Background(), 42, 7, "Hello", "Привет")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
