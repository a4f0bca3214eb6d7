package service

import (
	"github.com/ivmikh/notes-keeper/internal/config"
	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/store"
	"github.com/ivmikh/notes-keeper/internal/translate"
)

type Services struct {
	AuthService  AuthService
	NotesService NotesService
}

func NewServices(storages *store.Storages, provider translate.Provider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:  authService,
		NotesService: NewNotesService(storages.NoteRepository, provider, cfg.Translation.Timeout, logger),
	}, nil
}
