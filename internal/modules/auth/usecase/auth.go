package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"praxis/internal/modules/auth/domain"
	"praxis/internal/modules/auth/dto"
	authin "praxis/internal/modules/auth/port/in"
	authout "praxis/internal/modules/auth/port/out"
	"praxis/internal/modules/auth/service"
	"praxis/internal/platform/httpapi"
)

type Interactor struct {
	state    *service.SessionState
	gateway  authout.Gateway
	validate *validator.Validate
	log      *zap.Logger
}

func NewInteractor(state *service.SessionState, gateway authout.Gateway, log *zap.Logger) authin.Usecase {
	return &Interactor{
		state:    state,
		gateway:  gateway,
		validate: validator.New(),
		log:      log,
	}
}

// CheckStatus resolves the loading state exactly once per call. Any failure
// collapses to unauthenticated; the cause goes to the log, not the caller.
func (i *Interactor) CheckStatus(ctx context.Context) dto.StatusOutput {
	user, authenticated, err := i.gateway.Check(ctx)
	if err != nil || !authenticated {
		if err != nil {
			i.log.Warn("auth status check failed", zap.Error(err))
		}
		i.state.Clear()
		return dto.StatusOutput{}
	}
	i.state.SetAuthenticated(user)
	return dto.StatusOutput{Authenticated: true, Username: user.Username}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) dto.LoginOutput {
	if err := i.validate.Struct(input); err != nil {
		return dto.LoginOutput{Message: "Both username and password are required"}
	}
	user, err := i.gateway.Login(ctx, input.Username, input.Password)
	if err != nil {
		i.log.Warn("login failed", zap.String("username", input.Username), zap.Error(err))
		return dto.LoginOutput{Message: httpapi.MessageFor(err, "Login failed")}
	}
	i.state.SetAuthenticated(user)
	return dto.LoginOutput{Success: true, Username: user.Username}
}

// Logout clears local state no matter what the server says. A dead network
// must not leave the client looking logged in.
func (i *Interactor) Logout(ctx context.Context) {
	if err := i.gateway.Logout(ctx); err != nil {
		i.log.Warn("logout request failed", zap.Error(err))
	}
	i.state.Clear()
}

func (i *Interactor) Current() domain.State {
	return i.state.Snapshot()
}
