package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/service"
	"github.com/ivmikh/notes-keeper/internal/store"
	"github.com/ivmikh/notes-keeper/internal/translate"
	"github.com/ivmikh/notes-keeper/internal/utils"
	"github.com/ivmikh/notes-keeper/models"
)

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.NotesService.CreateNote(ctx, models.Note{Title: req.Title, Content: req.Content, UserID: userID})
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during note creation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notes, err := h.services.NotesService.ListNotes(ctx, userID, skip, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "invalid pagination parameters", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during notes listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, noteID, ok := h.noteRequestIDs(w, r)
	if !ok {
		return
	}

	note, err := h.services.NotesService.GetNote(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			http.Error(w, "note not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during note lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, noteID, ok := h.noteRequestIDs(w, r)
	if !ok {
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = noteID
	update.UserID = userID

	updated, err := h.services.NotesService.UpdateNote(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoteNotFound):
			http.Error(w, "note not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during note update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, noteID, ok := h.noteRequestIDs(w, r)
	if !ok {
		return
	}

	if err := h.services.NotesService.DeleteNote(ctx, noteID, userID); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			http.Error(w, "note not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during note deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// translateNote drives both translate variants. With ?preview=true the note
// is left untouched and only the translated text is returned; otherwise the
// translation is persisted (idempotently) and the resulting note returned.
func (h *Handler) translateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, noteID, ok := h.noteRequestIDs(w, r)
	if !ok {
		return
	}

	preview, _ := strconv.ParseBool(r.URL.Query().Get("preview"))

	if preview {
		text, err := h.services.NotesService.PreviewTranslation(ctx, noteID, userID)
		if err != nil {
			h.writeTranslationError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.TranslationPreviewResponse{
			NoteID:         noteID,
			TranslatedText: text,
			SourceLanguage: translate.SourceLanguage,
			TargetLanguage: translate.TargetLanguage,
		}, http.StatusOK)
		return
	}

	note, err := h.services.NotesService.TranslateNote(ctx, noteID, userID)
	if err != nil {
		h.writeTranslationError(w, r, err)
		return
	}

	log.Debug().Int64("note_id", note.ID).Bool("is_translated", note.IsTranslated).Msg("translate action completed")

	utils.WriteJSON(w, note, http.StatusOK)
}

// writeTranslationError maps translation failures to distinct upstream-failure
// responses. None of these paths has mutated the note.
func (h *Handler) writeTranslationError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		http.Error(w, "note not found", http.StatusNotFound)
	case errors.Is(err, translate.ErrTimeout):
		log.Err(err).Msg("translation provider timed out")
		http.Error(w, "translation service timeout", http.StatusGatewayTimeout)
	case errors.Is(err, translate.ErrUnavailable), errors.Is(err, translate.ErrMalformedResponse):
		log.Err(err).Msg("translation provider failed")
		http.Error(w, "translation service unavailable", http.StatusBadGateway)
	default:
		log.Err(err).Msg("unexpected error occurred during translation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// noteRequestIDs resolves the authenticated user and the {id} URL parameter,
// writing the error response itself when either is missing.
func (h *Handler) noteRequestIDs(w http.ResponseWriter, r *http.Request) (userID, noteID int64, ok bool) {
	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, 0, false
	}

	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || noteID <= 0 {
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return 0, 0, false
	}

	return userID, noteID, true
}
