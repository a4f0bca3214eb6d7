package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivmikh/notes-keeper/internal/service"
	"github.com/ivmikh/notes-keeper/internal/store"
	"github.com/ivmikh/notes-keeper/internal/translate"
	"github.com/ivmikh/notes-keeper/models"
)

// newNotesRouter wires a router whose auth middleware accepts "access-token"
// as user 7.
func newNotesRouter(t *testing.T, notes *mockNotesService) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		verifyIdentityFn: func(_ context.Context, tokenString string) (models.IdentitySummary, error) {
			if tokenString != "access-token" {
				return models.IdentitySummary{}, service.ErrTokenInvalid
			}
			return testSummary(), nil
		},
	}

	return newTestHandler(t, auth, notes).Init()
}

func doAuthed(t *testing.T, router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer access-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateNote(t *testing.T) {
	t.Run("creates a note for the authenticated user", func(t *testing.T) {
		notes := &mockNotesService{
			createNoteFn: func(_ context.Context, note models.Note) (models.Note, error) {
				assert.Equal(t, int64(7), note.UserID)
				note.ID = 1
				return note, nil
			},
		}
		router := newNotesRouter(t, notes)

		rec := doAuthed(t, router, http.MethodPost, "/api/notes", strings.NewReader(`{"title":"groceries","content":"milk"}`))
		require.Equal(t, http.StatusCreated, rec.Code)

		var got models.Note
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "groceries", got.Title)
		assert.False(t, got.IsTranslated)
	})

	t.Run("rejects invalid data", func(t *testing.T) {
		notes := &mockNotesService{
			createNoteFn: func(_ context.Context, _ models.Note) (models.Note, error) {
				return models.Note{}, service.ErrInvalidDataProvided
			},
		}
		router := newNotesRouter(t, notes)

		rec := doAuthed(t, router, http.MethodPost, "/api/notes", strings.NewReader(`{"title":""}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects broken JSON", func(t *testing.T) {
		router := newNotesRouter(t, &mockNotesService{})

		rec := doAuthed(t, router, http.MethodPost, "/api/notes", strings.NewReader(`{"title"`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListNotes(t *testing.T) {
	t.Run("returns the owner's notes", func(t *testing.T) {
		notes := &mockNotesService{
			listNotesFn: func(_ context.Context, userID int64, _, _ int) ([]models.Note, error) {
				assert.Equal(t, int64(7), userID)
				return []models.Note{
					{ID: 2, Title: "newer", UserID: userID},
					{ID: 1, Title: "older", UserID: userID},
				}, nil
			},
		}
		router := newNotesRouter(t, notes)

		rec := doAuthed(t, router, http.MethodGet, "/api/notes", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []models.Note
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("forwards pagination query parameters", func(t *testing.T) {
		notes := &mockNotesService{
			listNotesFn: func(_ context.Context, _ int64, skip, limit int) ([]models.Note, error) {
				assert.Equal(t, 10, skip)
				assert.Equal(t, 5, limit)
				return []models.Note{}, nil
			},
		}
		router := newNotesRouter(t, notes)

		rec := doAuthed(t, router, http.MethodGet, "/api/notes?skip=10&limit=5", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetNote(t *testing.T) {
	notes := &mockNotesService{
		getNoteFn: func(_ context.Context, id, userID int64) (models.Note, error) {
			if id != 1 {
				return models.Note{}, store.ErrNoteNotFound
			}
			return models.Note{ID: 1, Title: "groceries", UserID: userID}, nil
		},
	}
	router := newNotesRouter(t, notes)

	t.Run("returns an owned note", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodGet, "/api/notes/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Note
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("unknown or foreign note is not found", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodGet, "/api/notes/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodGet, "/api/notes/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateNote(t *testing.T) {
	t.Run("applies a partial update", func(t *testing.T) {
		notes := &mockNotesService{
			updateNoteFn: func(_ context.Context, update models.NoteUpdate) (models.Note, error) {
				assert.Equal(t, int64(1), update.ID)
				assert.Equal(t, int64(7), update.UserID)
				require.NotNil(t, update.Title)
				assert.Nil(t, update.Content)
				return models.Note{ID: 1, Title: *update.Title, UserID: 7}, nil
			},
		}
		router := newNotesRouter(t, notes)

		rec := doAuthed(t, router, http.MethodPut, "/api/notes/1", strings.NewReader(`{"title":"renamed"}`))
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Note
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "renamed", got.Title)
	})

	t.Run("unknown note is not found", func(t *testing.T) {
		notes := &mockNotesService{
			updateNoteFn: func(_ context.Context, _ models.NoteUpdate) (models.Note, error) {
				return models.Note{}, store.ErrNoteNotFound
			},
		}
		router := newNotesRouter(t, notes)

		rec := doAuthed(t, router, http.MethodPut, "/api/notes/99", strings.NewReader(`{"title":"renamed"}`))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		notes := &mockNotesService{
			updateNoteFn: func(_ context.Context, _ models.NoteUpdate) (models.Note, error) {
				return models.Note{}, service.ErrInvalidDataProvided
			},
		}
		router := newNotesRouter(t, notes)

		rec := doAuthed(t, router, http.MethodPut, "/api/notes/1", strings.NewReader(`{}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteNote(t *testing.T) {
	notes := &mockNotesService{
		deleteNoteFn: func(_ context.Context, id, userID int64) error {
			assert.Equal(t, int64(7), userID)
			if id != 1 {
				return store.ErrNoteNotFound
			}
			return nil
		},
	}
	router := newNotesRouter(t, notes)

	t.Run("deletes an owned note", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodDelete, "/api/notes/1", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown note is not found", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodDelete, "/api/notes/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTranslateNote(t *testing.T) {
	t.Run("persists the translation and returns the note", func(t *testing.T) {
		original := "привет"
		notes := &mockNotesService{
			translateNoteFn: func(_ context.Context, id, userID int64) (models.Note, error) {
				assert.Equal(t, int64(1), id)
				assert.Equal(t, int64(7), userID)
				return models.Note{ID: 1, Content: "hello", IsTranslated: true, OriginalContent: &original, UserID: 7}, nil
			},
		}
		router := newNotesRouter(t, notes)

		rec := doAuthed(t, router, http.MethodPost, "/api/notes/1/translate", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Note
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.True(t, got.IsTranslated)
		assert.Equal(t, "hello", got.Content)
		require.NotNil(t, got.OriginalContent)
		assert.Equal(t, original, *got.OriginalContent)
	})

	t.Run("preview returns the text without persisting", func(t *testing.T) {
		notes := &mockNotesService{
			previewTranslationFn: func(_ context.Context, id, userID int64) (string, error) {
				assert.Equal(t, int64(1), id)
				assert.Equal(t, int64(7), userID)
				return "hello", nil
			},
		}
		router := newNotesRouter(t, notes)

		rec := doAuthed(t, router, http.MethodPost, "/api/notes/1/translate?preview=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.TranslationPreviewResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int64(1), got.NoteID)
		assert.Equal(t, "hello", got.TranslatedText)
		assert.Equal(t, translate.SourceLanguage, got.SourceLanguage)
		assert.Equal(t, translate.TargetLanguage, got.TargetLanguage)
	})

	t.Run("maps translation failures to upstream statuses", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{name: "unknown note", err: store.ErrNoteNotFound, wantStatus: http.StatusNotFound},
			{name: "provider timeout", err: translate.ErrTimeout, wantStatus: http.StatusGatewayTimeout},
			{name: "provider unavailable", err: translate.ErrUnavailable, wantStatus: http.StatusBadGateway},
			{name: "malformed provider response", err: translate.ErrMalformedResponse, wantStatus: http.StatusBadGateway},
			{name: "unexpected failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				notes := &mockNotesService{
					translateNoteFn: func(_ context.Context, _, _ int64) (models.Note, error) {
						return models.Note{}, tt.err
					},
				}
				router := newNotesRouter(t, notes)

				rec := doAuthed(t, router, http.MethodPost, "/api/notes/1/translate", nil)
				assert.Equal(t, tt.wantStatus, rec.Code)
			})
		}
	})

	t.Run("invalid note id is rejected before the service is called", func(t *testing.T) {
		router := newNotesRouter(t, &mockNotesService{})

		rec := doAuthed(t, router, http.MethodPost, "/api/notes/0/translate", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
