package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"praxis/internal/modules/sessions/domain"
	"praxis/internal/modules/sessions/dto"
	sessionsin "praxis/internal/modules/sessions/port/in"
	"praxis/internal/modules/sessions/service"
	apperrors "praxis/internal/platform/errors"
	"praxis/internal/platform/httpapi"
)

type Interactor struct {
	svc      *service.SessionService
	validate *validator.Validate
}

func NewInteractor(svc *service.SessionService) sessionsin.Usecase {
	return &Interactor{svc: svc, validate: validator.New()}
}

func (i *Interactor) List(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, len(sessions))
	for n, s := range sessions {
		out[n] = toOutput(s)
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.SessionOutput, error) {
	session, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

// Create validates required fields before any network call; a failed check
// costs zero requests.
func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) error {
	if err := i.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: client name and session date are required", apperrors.ErrInvalidInput)
	}
	return i.svc.Create(ctx, domain.ClientSession{
		ClientName:  input.ClientName,
		SessionDate: input.SessionDate,
		Notes:       input.Notes,
	})
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) error {
	if err := i.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: client name and session date are required", apperrors.ErrInvalidInput)
	}
	return i.svc.Update(ctx, domain.ClientSession{
		ID:          httpapi.StringID(input.ID),
		ClientName:  input.ClientName,
		SessionDate: input.SessionDate,
		Notes:       input.Notes,
	})
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func toOutput(s domain.ClientSession) dto.SessionOutput {
	return dto.SessionOutput{
		ID:          s.ID.String(),
		ClientName:  s.ClientName,
		SessionDate: s.SessionDate,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
	}
}
