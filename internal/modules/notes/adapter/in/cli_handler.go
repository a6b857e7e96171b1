package in

import (
	"context"

	"praxis/internal/modules/notes/dto"
	notesin "praxis/internal/modules/notes/port/in"
)

type CLIHandler struct {
	usecase notesin.Usecase
}

func NewCLIHandler(usecase notesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.NoteOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.NoteOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Create(ctx context.Context, title, content string) error {
	return h.usecase.Create(ctx, dto.CreateInput{Title: title, Content: content})
}

func (h CLIHandler) Update(ctx context.Context, id, title, content string) error {
	return h.usecase.Update(ctx, dto.UpdateInput{ID: id, Title: title, Content: content})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
