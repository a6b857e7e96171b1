package service

import (
	"context"
	"fmt"
	"time"

	"praxis/internal/modules/sessions/domain"
	sessionsout "praxis/internal/modules/sessions/port/out"
	apperrors "praxis/internal/platform/errors"
)

// acceptedDateLayouts covers the formats the API has been seen returning
// for session_date across server revisions.
var acceptedDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type SessionService struct {
	store sessionsout.Store
}

func NewSessionService(store sessionsout.Store) *SessionService {
	return &SessionService{store: store}
}

func (s *SessionService) List(ctx context.Context) ([]domain.ClientSession, error) {
	return s.store.List(ctx)
}

func (s *SessionService) Get(ctx context.Context, id string) (domain.ClientSession, error) {
	if id == "" {
		return domain.ClientSession{}, fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	}
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.ClientSession{}, err
	}
	// Edit forms prefill a date field; hand them the canonical form.
	session.SessionDate = NormalizeDate(session.SessionDate)
	return session, nil
}

func (s *SessionService) Create(ctx context.Context, session domain.ClientSession) error {
	return s.store.Create(ctx, session)
}

func (s *SessionService) Update(ctx context.Context, session domain.ClientSession) error {
	if session.ID == "" {
		return fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Update(ctx, session)
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Delete(ctx, id)
}

// NormalizeDate reduces any accepted server date format to YYYY-MM-DD.
// Unparseable values pass through untouched rather than erasing data.
func NormalizeDate(value string) string {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}
