package in

import (
	"context"

	"praxis/internal/modules/sessions/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.SessionOutput, error)
	Get(ctx context.Context, id string) (dto.SessionOutput, error)
	Create(ctx context.Context, input dto.CreateInput) error
	Update(ctx context.Context, input dto.UpdateInput) error
	Delete(ctx context.Context, id string) error
}
