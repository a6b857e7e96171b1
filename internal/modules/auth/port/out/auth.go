package out

import (
	"context"

	"praxis/internal/modules/auth/domain"
)

// Gateway is the remote auth endpoint. Logout must drop the stored
// credential even when the network call fails.
type Gateway interface {
	Check(ctx context.Context) (domain.User, bool, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
	Logout(ctx context.Context) error
}
