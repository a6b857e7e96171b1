package out

import (
	"context"

	"praxis/internal/modules/sessions/domain"
)

// Store is the remote collection. List order is whatever the server
// returns; the client never re-sorts.
type Store interface {
	List(ctx context.Context) ([]domain.ClientSession, error)
	Get(ctx context.Context, id string) (domain.ClientSession, error)
	Create(ctx context.Context, session domain.ClientSession) error
	Update(ctx context.Context, session domain.ClientSession) error
	Delete(ctx context.Context, id string) error
}
