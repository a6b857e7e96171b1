package in

import (
	"context"

	"praxis/internal/modules/notes/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.NoteOutput, error)
	Get(ctx context.Context, id string) (dto.NoteOutput, error)
	Create(ctx context.Context, input dto.CreateInput) error
	Update(ctx context.Context, input dto.UpdateInput) error
	Delete(ctx context.Context, id string) error
}
