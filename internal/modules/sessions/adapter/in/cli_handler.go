package in

import (
	"context"

	"praxis/internal/modules/sessions/dto"
	sessionsin "praxis/internal/modules/sessions/port/in"
)

type CLIHandler struct {
	usecase sessionsin.Usecase
}

func NewCLIHandler(usecase sessionsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.SessionOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Create(ctx context.Context, clientName, sessionDate, notes string) error {
	return h.usecase.Create(ctx, dto.CreateInput{
		ClientName:  clientName,
		SessionDate: sessionDate,
		Notes:       notes,
	})
}

func (h CLIHandler) Update(ctx context.Context, id, clientName, sessionDate, notes string) error {
	return h.usecase.Update(ctx, dto.UpdateInput{
		ID:          id,
		ClientName:  clientName,
		SessionDate: sessionDate,
		Notes:       notes,
	})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
