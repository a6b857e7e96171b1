package out

import (
	"context"
	"fmt"
	"net/url"

	"praxis/internal/modules/auth/domain"
	apperrors "praxis/internal/platform/errors"
	"praxis/internal/platform/httpapi"
)

const authPath = "/auth.php"

// APIGateway talks to /auth.php. Response envelopes are checked strictly;
// a success body without the expected fields is a server-format error.
type APIGateway struct {
	api *httpapi.Client
}

func NewAPIGateway(api *httpapi.Client) *APIGateway {
	return &APIGateway{api: api}
}

func (g *APIGateway) Check(ctx context.Context) (domain.User, bool, error) {
	var body struct {
		Authenticated bool         `json:"authenticated"`
		User          *domain.User `json:"user"`
	}
	if err := g.api.Get(ctx, authPath, url.Values{"check": {"1"}}, &body); err != nil {
		return domain.User{}, false, err
	}
	if !body.Authenticated {
		return domain.User{}, false, nil
	}
	if body.User == nil || body.User.Username == "" {
		return domain.User{}, false, fmt.Errorf("%w: authenticated without user", apperrors.ErrBadResponse)
	}
	return *body.User, true, nil
}

func (g *APIGateway) Login(ctx context.Context, username, password string) (domain.User, error) {
	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var body struct {
		User *domain.User `json:"user"`
	}
	if err := g.api.Post(ctx, authPath, nil, payload, &body); err != nil {
		return domain.User{}, err
	}
	if body.User == nil || body.User.Username == "" {
		return domain.User{}, fmt.Errorf("%w: login response missing user", apperrors.ErrBadResponse)
	}
	return *body.User, nil
}

// Logout posts the logout and drops the stored cookie either way.
func (g *APIGateway) Logout(ctx context.Context) error {
	postErr := g.api.Post(ctx, authPath, url.Values{"logout": {"1"}}, nil, nil)
	if err := g.api.ClearCredentials(); err != nil {
		return err
	}
	return postErr
}
