package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"praxis/internal/modules/sessions/adapter/out"
	"praxis/internal/modules/sessions/domain"
	apperrors "praxis/internal/platform/errors"
	"praxis/internal/platform/httpapi"
	"praxis/internal/platform/id"
)

func sessionFixture() domain.ClientSession {
	return domain.ClientSession{
		ID:          httpapi.StringID("9"),
		ClientName:  "Ada",
		SessionDate: "2026-08-01",
		Notes:       "n",
	}
}

func newStore(t *testing.T, handler http.Handler) (*out.APIStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := httpapi.New(srv.URL, filepath.Join(t.TempDir(), "cookies.json"), zap.NewNop(), id.UUID{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return out.NewAPIStore(client), srv
}

func TestListPreservesServerOrder(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"sessions":[
			{"id":7,"client_name":"g"},{"id":"3","client_name":"c"},{"id":5,"client_name":"e"},
			{"id":"1","client_name":"a"},{"id":2,"client_name":"b"},{"id":6,"client_name":"f"},
			{"id":"4","client_name":"d"}]}`))
	}))

	sessions, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 7 {
		t.Fatalf("expected 7 sessions, got %d", len(sessions))
	}
	wantIDs := []string{"7", "3", "5", "1", "2", "6", "4"}
	for i, want := range wantIDs {
		if got := sessions[i].ID.String(); got != want {
			t.Fatalf("position %d: got id %q, want %q", i, got, want)
		}
	}
}

func TestListRejectsMissingEnvelope(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	if _, err := store.List(context.Background()); !errors.Is(err, apperrors.ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestListRejectsNonArrayEnvelope(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"sessions":"oops"}`))
	}))
	if _, err := store.List(context.Background()); !errors.Is(err, apperrors.ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestListSurfacesErrorEnvelope(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to fetch sessions"}`))
	}))
	_, err := store.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := httpapi.MessageFor(err, "fallback"); got != "Failed to fetch sessions" {
		t.Fatalf("MessageFor = %q", got)
	}
}

func TestGetRequiresSessionEnvelope(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	if _, err := store.Get(context.Background(), "42"); !errors.Is(err, apperrors.ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse, got %v", err)
	}
}

func TestGetDecodesNumericID(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "42" {
			t.Errorf("expected id=42 query, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"session":{"id":42,"client_name":"Ada","session_date":"2026-08-01","notes":"n"}}`))
	}))
	session, err := store.Get(context.Background(), "42")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if session.ID.String() != "42" || session.ClientName != "Ada" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestUpdateSendsSnakeCasePayload(t *testing.T) {
	t.Parallel()
	var captured map[string]any
	store, _ := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured)
		_, _ = w.Write([]byte(`{}`))
	}))

	err := store.Update(context.Background(), sessionFixture())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if captured["client_name"] != "Ada" || captured["session_date"] != "2026-08-01" {
		t.Fatalf("unexpected payload: %v", captured)
	}
	if _, ok := captured["id"]; ok {
		t.Fatal("id belongs in the query string, not the body")
	}
}

func TestDeleteIssuesSingleRequest(t *testing.T) {
	t.Parallel()
	calls := 0
	store, _ := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodDelete || r.URL.Query().Get("id") != "9" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.String())
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	if err := store.Delete(context.Background(), "9"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
}
