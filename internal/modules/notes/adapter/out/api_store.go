package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"praxis/internal/modules/notes/domain"
	apperrors "praxis/internal/platform/errors"
	"praxis/internal/platform/httpapi"
)

const notesPath = "/personal_notes.php"

// APIStore implements the notes collection over /personal_notes.php.
// Envelopes: {"notes": [...]} and {"note": {...}}.
type APIStore struct {
	api *httpapi.Client
}

func NewAPIStore(api *httpapi.Client) *APIStore {
	return &APIStore{api: api}
}

func (s *APIStore) List(ctx context.Context) ([]domain.PersonalNote, error) {
	var body struct {
		Notes json.RawMessage `json:"notes"`
	}
	if err := s.api.Get(ctx, notesPath, nil, &body); err != nil {
		return nil, err
	}
	if len(body.Notes) == 0 || string(body.Notes) == "null" {
		return nil, fmt.Errorf("%w: notes field missing", apperrors.ErrBadResponse)
	}
	var notes []domain.PersonalNote
	if err := json.Unmarshal(body.Notes, &notes); err != nil {
		return nil, fmt.Errorf("%w: notes field is not an array", apperrors.ErrBadResponse)
	}
	return notes, nil
}

func (s *APIStore) Get(ctx context.Context, id string) (domain.PersonalNote, error) {
	var body struct {
		Note *domain.PersonalNote `json:"note"`
	}
	if err := s.api.Get(ctx, notesPath, url.Values{"id": {id}}, &body); err != nil {
		return domain.PersonalNote{}, err
	}
	if body.Note == nil {
		return domain.PersonalNote{}, fmt.Errorf("%w: note field missing", apperrors.ErrBadResponse)
	}
	return *body.Note, nil
}

func (s *APIStore) Create(ctx context.Context, note domain.PersonalNote) error {
	return s.api.Post(ctx, notesPath, nil, notePayload(note), nil)
}

func (s *APIStore) Update(ctx context.Context, note domain.PersonalNote) error {
	return s.api.Put(ctx, notesPath, url.Values{"id": {note.ID.String()}}, notePayload(note), nil)
}

func (s *APIStore) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, notesPath, url.Values{"id": {id}})
}

func notePayload(note domain.PersonalNote) any {
	return struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}{
		Title:   note.Title,
		Content: note.Content,
	}
}
