package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"praxis/internal/modules/notes/domain"
	"praxis/internal/modules/notes/dto"
	notesin "praxis/internal/modules/notes/port/in"
	"praxis/internal/modules/notes/service"
	apperrors "praxis/internal/platform/errors"
	"praxis/internal/platform/httpapi"
)

type Interactor struct {
	svc      *service.NoteService
	validate *validator.Validate
}

func NewInteractor(svc *service.NoteService) notesin.Usecase {
	return &Interactor{svc: svc, validate: validator.New()}
}

func (i *Interactor) List(ctx context.Context) ([]dto.NoteOutput, error) {
	notes, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoteOutput, len(notes))
	for n, note := range notes {
		out[n] = toOutput(note)
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.NoteOutput, error) {
	note, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return toOutput(note), nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) error {
	if err := i.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Create(ctx, domain.PersonalNote{
		Title:   input.Title,
		Content: input.Content,
	})
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) error {
	if err := i.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Update(ctx, domain.PersonalNote{
		ID:      httpapi.StringID(input.ID),
		Title:   input.Title,
		Content: input.Content,
	})
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func toOutput(n domain.PersonalNote) dto.NoteOutput {
	return dto.NoteOutput{
		ID:        n.ID.String(),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}
