package sessions_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"praxis/internal/modules/sessions/dto"
	apperrors "praxis/internal/platform/errors"
	"praxis/internal/ui/views/sessions"
)

type fakeFormPort struct {
	session     dto.SessionOutput
	getErr      error
	createErr   error
	updateErr   error
	createCalls int
	updateCalls int
	lastUpdate  dto.UpdateInput
}

func (f *fakeFormPort) Get(context.Context, string) (dto.SessionOutput, error) {
	return f.session, f.getErr
}

func (f *fakeFormPort) Create(_ context.Context, input dto.CreateInput) error {
	f.createCalls++
	return f.createErr
}

func (f *fakeFormPort) Update(_ context.Context, input dto.UpdateInput) error {
	f.updateCalls++
	f.lastUpdate = input
	return f.updateErr
}

// step executes one command level and feeds each produced message back into
// the form exactly once. Follow-up commands are returned, not executed, so
// timer-based messages stay under the test's control.
func step(m sessions.FormModel, cmd tea.Cmd) (sessions.FormModel, []tea.Cmd) {
	if cmd == nil {
		return m, nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var followups []tea.Cmd
		for _, c := range batch {
			var more []tea.Cmd
			m, more = step(m, c)
			followups = append(followups, more...)
		}
		return m, followups
	}
	if msg == nil {
		return m, nil
	}
	m, next := m.Update(msg)
	if next != nil {
		return m, []tea.Cmd{next}
	}
	return m, nil
}

func typeInto(m sessions.FormModel, text string) sessions.FormModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestEditPrefillFillsFields(t *testing.T) {
	t.Parallel()
	port := &fakeFormPort{session: dto.SessionOutput{
		ID:          "42",
		ClientName:  "Ada",
		SessionDate: "2026-08-01",
		Notes:       "first visit",
	}}
	m := sessions.NewForm(port, "42")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = step(m, m.Init())

	view := m.View()
	if !strings.Contains(view, "Ada") || !strings.Contains(view, "2026-08-01") {
		t.Fatalf("expected prefilled fields, got:\n%s", view)
	}
	if !strings.Contains(view, "Edit Session") {
		t.Fatalf("expected edit title, got:\n%s", view)
	}
}

func TestEditPrefillFailureBlocksSubmission(t *testing.T) {
	t.Parallel()
	port := &fakeFormPort{getErr: errors.New("gone")}
	m := sessions.NewForm(port, "42")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = step(m, m.Init())

	if !strings.Contains(m.View(), "Failed to load session data") {
		t.Fatalf("expected prefill error, got:\n%s", m.View())
	}

	// A blocked edit form must never fall back to create semantics.
	m, _ = step(m, keyCmd(&m, tea.KeyMsg{Type: tea.KeyCtrlS}))
	if port.createCalls != 0 || port.updateCalls != 0 {
		t.Fatalf("blocked form must not submit, got create=%d update=%d", port.createCalls, port.updateCalls)
	}
}

func TestCreateSuccessClearsFieldsAndSchedulesReturn(t *testing.T) {
	t.Parallel()
	port := &fakeFormPort{}
	m := sessions.NewForm(port, "")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	m = typeInto(m, "Ada")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "2026-08-01")

	var followups []tea.Cmd
	m, followups = step(m, keyCmd(&m, tea.KeyMsg{Type: tea.KeyCtrlS}))
	if port.createCalls != 1 {
		t.Fatalf("expected one create call, got %d", port.createCalls)
	}
	view := m.View()
	if !strings.Contains(view, "Session created successfully.") {
		t.Fatalf("expected success message, got:\n%s", view)
	}
	if strings.Contains(view, "Ada") {
		t.Fatalf("create success must clear fields, got:\n%s", view)
	}
	if len(followups) == 0 {
		t.Fatal("expected a scheduled return to the list")
	}
}

func TestUpdateSuccessKeepsFields(t *testing.T) {
	t.Parallel()
	port := &fakeFormPort{session: dto.SessionOutput{
		ID:          "42",
		ClientName:  "Ada",
		SessionDate: "2026-08-01",
	}}
	m := sessions.NewForm(port, "42")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = step(m, m.Init())

	m, _ = step(m, keyCmd(&m, tea.KeyMsg{Type: tea.KeyCtrlS}))
	if port.updateCalls != 1 || port.lastUpdate.ID != "42" {
		t.Fatalf("expected one update for id 42, got %d (%+v)", port.updateCalls, port.lastUpdate)
	}
	view := m.View()
	if !strings.Contains(view, "Session updated successfully.") {
		t.Fatalf("expected success message, got:\n%s", view)
	}
	if !strings.Contains(view, "Ada") {
		t.Fatalf("update success must keep fields, got:\n%s", view)
	}
}

func TestValidationErrorShowsFieldMessage(t *testing.T) {
	t.Parallel()
	port := &fakeFormPort{createErr: fmt.Errorf("%w: fields", apperrors.ErrInvalidInput)}
	m := sessions.NewForm(port, "")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	m, _ = step(m, keyCmd(&m, tea.KeyMsg{Type: tea.KeyCtrlS}))
	if !strings.Contains(m.View(), "Client name and session date are required.") {
		t.Fatalf("expected validation message, got:\n%s", m.View())
	}
}

func TestStaleSaveResultIsDropped(t *testing.T) {
	t.Parallel()
	port := &fakeFormPort{}
	m := sessions.NewForm(port, "")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = typeInto(m, "Ada")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "2026-08-01")

	// The user leaves the form while the save is still in flight.
	cmd := keyCmd(&m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = m.Leave()

	m, followup := m.Update(cmd())
	if followup != nil {
		t.Fatal("stale save result must not schedule a return to the list")
	}
	view := m.View()
	if strings.Contains(view, "successfully") {
		t.Fatalf("stale save result must not show success, got:\n%s", view)
	}
	if !strings.Contains(view, "Ada") {
		t.Fatalf("stale save result must leave fields intact, got:\n%s", view)
	}
}

func TestEscClosesForm(t *testing.T) {
	t.Parallel()
	m := sessions.NewForm(&fakeFormPort{}, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected close command")
	}
	if _, ok := cmd().(sessions.CloseFormMsg); !ok {
		t.Fatalf("expected CloseFormMsg, got %#v", cmd())
	}
}

// keyCmd applies a key and hands back the resulting command, updating the
// caller's model in place.
func keyCmd(m *sessions.FormModel, key tea.KeyMsg) tea.Cmd {
	next, cmd := m.Update(key)
	*m = next
	return cmd
}
