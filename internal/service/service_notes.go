package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/store"
	"github.com/ivmikh/notes-keeper/internal/translate"
	"github.com/ivmikh/notes-keeper/models"
)

// defaultListLimit caps a single listing page.
const defaultListLimit = 100

// notesService is the concrete implementation of NotesService. Plain CRUD
// delegates to the NoteRepository; the translation paths additionally drive
// the untranslated → translated transition through the provider.
type notesService struct {
	noteRepository store.NoteRepository
	provider       translate.Provider

	// providerTimeout bounds every provider call; a timed-out call leaves the
	// note untouched because persistence happens only after a successful
	// response.
	providerTimeout time.Duration

	// locks serialises TranslateNote per note id.
	locks *noteLocks

	logger *logger.Logger
}

// NewNotesService constructs a NotesService wired to the given repository and
// translation provider. providerTimeout is TRANSLATION_TIMEOUT.
func NewNotesService(noteRepository store.NoteRepository, provider translate.Provider, providerTimeout time.Duration, logger *logger.Logger) NotesService {
	return &notesService{
		noteRepository:  noteRepository,
		provider:        provider,
		providerTimeout: providerTimeout,
		locks:           newNoteLocks(),
		logger:          logger,
	}
}

// CreateNote persists a new note for its owner.
//
// Returns ErrInvalidDataProvided when the title is empty or no owner is set.
func (n *notesService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.Title == "" || note.UserID == 0 {
		log.Error().Int64("user_id", note.UserID).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", note.UserID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

func (n *notesService) GetNote(ctx context.Context, id, userID int64) (models.Note, error) {
	return n.noteRepository.GetNote(ctx, id, userID)
}

// ListNotes returns a page of the owner's notes. A negative skip is rejected;
// a non-positive or oversized limit falls back to the default page size.
func (n *notesService) ListNotes(ctx context.Context, userID int64, skip, limit int) ([]models.Note, error) {
	if skip < 0 {
		return nil, ErrInvalidDataProvided
	}
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	return n.noteRepository.ListNotes(ctx, userID, skip, limit)
}

// UpdateNote applies a partial edit. A content change resets the translation
// state in the same repository statement; a title-only edit leaves it alone.
func (n *notesService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if update.Title == nil && update.Content == nil {
		return models.Note{}, ErrInvalidDataProvided
	}
	if update.Title != nil && *update.Title == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	updated, err := n.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		if !errors.Is(err, store.ErrNoteNotFound) {
			log.Err(err).Int64("note_id", update.ID).Msg("note update ended with error")
		}
		return models.Note{}, err
	}

	return updated, nil
}

func (n *notesService) DeleteNote(ctx context.Context, id, userID int64) error {
	return n.noteRepository.DeleteNote(ctx, id, userID)
}

// TranslateNote drives the untranslated → translated transition.
//
// The call is idempotent: an already translated note is returned as is with
// zero provider invocations, which makes the action safe to retry after a
// client timeout. Content without any source-script character is likewise a
// no-op. Otherwise the provider is called once and the result is recorded
// atomically, conditional on the note still being untranslated; when a
// concurrent caller wins that race, the winner's persisted result is returned.
func (n *notesService) TranslateNote(ctx context.Context, id, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	unlock := n.locks.lock(id)
	defer unlock()

	note, err := n.noteRepository.GetNote(ctx, id, userID)
	if err != nil {
		return models.Note{}, err
	}

	if note.IsTranslated {
		log.Debug().Int64("note_id", id).Msg("note already translated, skipping provider call")
		return note, nil
	}
	if !translate.NeedsTranslation(note.Content) {
		log.Debug().Int64("note_id", id).Msg("note content has no source-script characters, skipping provider call")
		return note, nil
	}

	translated, err := n.translateContent(ctx, note.Content)
	if err != nil {
		log.Err(err).Int64("note_id", id).Msg("translation provider call failed")
		return models.Note{}, err
	}

	updated, err := n.noteRepository.MarkTranslated(ctx, id, userID, translated, note.Content)
	if err != nil {
		if errors.Is(err, store.ErrTranslationAlreadyApplied) {
			log.Warn().Int64("note_id", id).Msg("concurrent translation won the race, returning persisted result")
			return updated, nil
		}
		log.Err(err).Int64("note_id", id).Msg("recording translation ended with error")
		return models.Note{}, err
	}

	return updated, nil
}

// PreviewTranslation translates the note's current content without writing
// anything back. The same source-script short-circuit applies, so the preview
// can never disagree with TranslateNote about what is translatable.
func (n *notesService) PreviewTranslation(ctx context.Context, id, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.GetNote(ctx, id, userID)
	if err != nil {
		return "", err
	}

	if !translate.NeedsTranslation(note.Content) {
		return note.Content, nil
	}

	translated, err := n.translateContent(ctx, note.Content)
	if err != nil {
		log.Err(err).Int64("note_id", id).Msg("translation preview failed")
		return "", err
	}

	return translated, nil
}

func (n *notesService) translateContent(ctx context.Context, content string) (string, error) {
	providerCtx, cancel := context.WithTimeout(ctx, n.providerTimeout)
	defer cancel()

	return n.provider.Translate(providerCtx, content)
}
