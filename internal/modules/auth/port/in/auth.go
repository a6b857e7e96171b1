package in

import (
	"context"

	"praxis/internal/modules/auth/domain"
	"praxis/internal/modules/auth/dto"
)

// Usecase mutates the auth session state. None of these operations let a
// failure escape: a failed check or login resolves to an unauthenticated
// state with a message, and logout always clears.
type Usecase interface {
	CheckStatus(ctx context.Context) dto.StatusOutput
	Login(ctx context.Context, input dto.LoginInput) dto.LoginOutput
	Logout(ctx context.Context)
	Current() domain.State
}
