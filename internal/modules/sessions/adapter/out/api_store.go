package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"praxis/internal/modules/sessions/domain"
	apperrors "praxis/internal/platform/errors"
	"praxis/internal/platform/httpapi"
)

const sessionsPath = "/sessions.php"

// APIStore implements the sessions collection over /sessions.php.
// Envelopes: {"sessions": [...]} for the collection, {"session": {...}}
// for a single item. A missing or non-array collection field fails closed.
type APIStore struct {
	api *httpapi.Client
}

func NewAPIStore(api *httpapi.Client) *APIStore {
	return &APIStore{api: api}
}

func (s *APIStore) List(ctx context.Context) ([]domain.ClientSession, error) {
	var body struct {
		Sessions json.RawMessage `json:"sessions"`
	}
	if err := s.api.Get(ctx, sessionsPath, nil, &body); err != nil {
		return nil, err
	}
	if len(body.Sessions) == 0 || string(body.Sessions) == "null" {
		return nil, fmt.Errorf("%w: sessions field missing", apperrors.ErrBadResponse)
	}
	var sessions []domain.ClientSession
	if err := json.Unmarshal(body.Sessions, &sessions); err != nil {
		return nil, fmt.Errorf("%w: sessions field is not an array", apperrors.ErrBadResponse)
	}
	return sessions, nil
}

func (s *APIStore) Get(ctx context.Context, id string) (domain.ClientSession, error) {
	var body struct {
		Session *domain.ClientSession `json:"session"`
	}
	if err := s.api.Get(ctx, sessionsPath, url.Values{"id": {id}}, &body); err != nil {
		return domain.ClientSession{}, err
	}
	if body.Session == nil {
		return domain.ClientSession{}, fmt.Errorf("%w: session field missing", apperrors.ErrBadResponse)
	}
	return *body.Session, nil
}

func (s *APIStore) Create(ctx context.Context, session domain.ClientSession) error {
	return s.api.Post(ctx, sessionsPath, nil, createPayload(session), nil)
}

func (s *APIStore) Update(ctx context.Context, session domain.ClientSession) error {
	return s.api.Put(ctx, sessionsPath, url.Values{"id": {session.ID.String()}}, createPayload(session), nil)
}

func (s *APIStore) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, sessionsPath, url.Values{"id": {id}})
}

func createPayload(session domain.ClientSession) any {
	return struct {
		ClientName  string `json:"client_name"`
		SessionDate string `json:"session_date"`
		Notes       string `json:"notes"`
	}{
		ClientName:  session.ClientName,
		SessionDate: session.SessionDate,
		Notes:       session.Notes,
	}
}
