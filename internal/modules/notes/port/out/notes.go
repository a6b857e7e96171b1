package out

import (
	"context"

	"praxis/internal/modules/notes/domain"
)

type Store interface {
	List(ctx context.Context) ([]domain.PersonalNote, error)
	Get(ctx context.Context, id string) (domain.PersonalNote, error)
	Create(ctx context.Context, note domain.PersonalNote) error
	Update(ctx context.Context, note domain.PersonalNote) error
	Delete(ctx context.Context, id string) error
}
