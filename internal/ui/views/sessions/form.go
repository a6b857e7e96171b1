package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"praxis/internal/modules/sessions/dto"
	apperrors "praxis/internal/platform/errors"
	"praxis/internal/platform/httpapi"
	"praxis/internal/ui/theme"
)

// navigateDelay is how long a success message stays on screen before the
// form closes and the list refreshes.
const navigateDelay = 1500 * time.Millisecond

type FormPort interface {
	Get(ctx context.Context, id string) (dto.SessionOutput, error)
	Create(ctx context.Context, input dto.CreateInput) error
	Update(ctx context.Context, input dto.UpdateInput) error
}

// CloseFormMsg asks the root model to return to the session list. The list
// refetches on every return; the server is authoritative.
type CloseFormMsg struct{}

type prefillMsg struct {
	gen     int
	session dto.SessionOutput
	err     error
}

type savedMsg struct {
	gen int
	err error
}

type navMsg struct{ gen int }

type FormModel struct {
	port FormPort
	id   string // empty in create mode

	clientName textinput.Model
	date       textinput.Model
	notes      textarea.Model
	focusIdx   int

	spinner    spinner.Model
	prefilling bool
	blocked    bool // edit prefill failed; submission stays disabled
	submitting bool
	succeeded  bool
	errMsg     string
	okMsg      string

	gen    int
	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

func NewForm(port FormPort, id string) FormModel {
	clientName := textinput.New()
	clientName.Placeholder = "client name"
	clientName.CharLimit = 200
	clientName.Focus()

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10

	notes := textarea.New()
	notes.Placeholder = "session notes"
	notes.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	m := FormModel{
		port:       port,
		id:         id,
		clientName: clientName,
		date:       date,
		notes:      notes,
		spinner:    sp,
		prefilling: id != "",
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return m
}

func (m FormModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.prefilling {
		cmds = append(cmds, m.prefillCmd(), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.notes.SetWidth(min(m.width-8, 72))
		m.notes.SetHeight(max(m.height-16, 4))
		return m, nil

	case prefillMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.prefilling = false
		if msg.err != nil {
			// No silent fallback to create semantics: the form stays blocked.
			m.blocked = true
			m.errMsg = httpapi.MessageFor(msg.err, "Failed to load session data. Please try again later.")
			return m, nil
		}
		m.clientName.SetValue(msg.session.ClientName)
		m.date.SetValue(msg.session.SessionDate)
		m.notes.SetValue(msg.session.Notes)
		return m, nil

	case savedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrInvalidInput) {
				m.errMsg = "Client name and session date are required."
			} else {
				m.errMsg = httpapi.MessageFor(msg.err, "Failed to save the session. Please try again.")
			}
			return m, nil
		}
		m.succeeded = true
		if m.id == "" {
			m.okMsg = "Session created successfully."
			m.clientName.SetValue("")
			m.date.SetValue("")
			m.notes.SetValue("")
		} else {
			m.okMsg = "Session updated successfully."
		}
		gen := m.gen
		return m, tea.Tick(navigateDelay, func(time.Time) tea.Msg { return navMsg{gen: gen} })

	case navMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m, func() tea.Msg { return CloseFormMsg{} }

	case spinner.TickMsg:
		if m.prefilling {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			m.cancel()
			return m, func() tea.Msg { return CloseFormMsg{} }
		}
		if m.prefilling || m.blocked || m.submitting || m.succeeded {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			step := 1
			if msg.String() == "shift+tab" {
				step = 2 // backwards over three fields
			}
			m.setFocus((m.focusIdx + step) % 3)
			return m, nil
		case "enter":
			// Single-line fields advance; the textarea keeps its newlines.
			if m.focusIdx < 2 {
				m.setFocus(m.focusIdx + 1)
				return m, nil
			}
		case "ctrl+s":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focusIdx {
	case 0:
		m.clientName, cmd = m.clientName.Update(msg)
	case 1:
		m.date, cmd = m.date.Update(msg)
	default:
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

func (m FormModel) View() string {
	if m.prefilling {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading session data…")
	}

	title := "New Session"
	if m.id != "" {
		title = "Edit Session"
	}

	var status string
	switch {
	case m.errMsg != "":
		status = theme.Danger.Render(m.errMsg)
	case m.okMsg != "":
		status = theme.OK.Render(m.okMsg)
	case m.submitting:
		status = theme.Muted.Render("Saving…")
	default:
		status = theme.Muted.Render("tab: next field  ctrl+s: save  esc: cancel")
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(title),
		"",
		theme.FieldLabel.Render("Client Name"),
		m.clientName.View(),
		"",
		theme.FieldLabel.Render("Session Date"),
		m.date.View(),
		"",
		theme.FieldLabel.Render("Session Notes"),
		m.notes.View(),
		"",
		status,
	)
	return theme.Pane.Render(form)
}

// Leave cancels the form's outstanding requests.
func (m FormModel) Leave() FormModel {
	m.cancel()
	m.gen++
	return m
}

func (m *FormModel) setFocus(idx int) {
	m.focusIdx = idx
	m.clientName.Blur()
	m.date.Blur()
	m.notes.Blur()
	switch idx {
	case 0:
		m.clientName.Focus()
	case 1:
		m.date.Focus()
	default:
		m.notes.Focus()
	}
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	m.errMsg = ""
	m.okMsg = ""
	m.submitting = true
	port, ctx, gen, id := m.port, m.ctx, m.gen, m.id
	clientName, date, notes := m.clientName.Value(), m.date.Value(), m.notes.Value()
	return m, func() tea.Msg {
		var err error
		if id == "" {
			err = port.Create(ctx, dto.CreateInput{ClientName: clientName, SessionDate: date, Notes: notes})
		} else {
			err = port.Update(ctx, dto.UpdateInput{ID: id, ClientName: clientName, SessionDate: date, Notes: notes})
		}
		return savedMsg{gen: gen, err: err}
	}
}

func (m FormModel) prefillCmd() tea.Cmd {
	port, ctx, gen, id := m.port, m.ctx, m.gen, m.id
	return func() tea.Msg {
		session, err := port.Get(ctx, id)
		return prefillMsg{gen: gen, session: session, err: err}
	}
}
