package service

import (
	"context"
	"fmt"

	"praxis/internal/modules/notes/domain"
	notesout "praxis/internal/modules/notes/port/out"
	apperrors "praxis/internal/platform/errors"
)

type NoteService struct {
	store notesout.Store
}

func NewNoteService(store notesout.Store) *NoteService {
	return &NoteService{store: store}
}

func (s *NoteService) List(ctx context.Context) ([]domain.PersonalNote, error) {
	return s.store.List(ctx)
}

func (s *NoteService) Get(ctx context.Context, id string) (domain.PersonalNote, error) {
	if id == "" {
		return domain.PersonalNote{}, fmt.Errorf("%w: note id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

func (s *NoteService) Create(ctx context.Context, note domain.PersonalNote) error {
	return s.store.Create(ctx, note)
}

func (s *NoteService) Update(ctx context.Context, note domain.PersonalNote) error {
	if note.ID == "" {
		return fmt.Errorf("%w: note id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Update(ctx, note)
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: note id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Delete(ctx, id)
}
