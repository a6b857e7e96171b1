package notes

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"praxis/internal/modules/notes/dto"
	apperrors "praxis/internal/platform/errors"
	"praxis/internal/platform/httpapi"
	"praxis/internal/ui/theme"
)

const navigateDelay = 1500 * time.Millisecond

type FormPort interface {
	Get(ctx context.Context, id string) (dto.NoteOutput, error)
	Create(ctx context.Context, input dto.CreateInput) error
	Update(ctx context.Context, input dto.UpdateInput) error
}

// CloseFormMsg asks the root model to return to the note list. The list
// refetches on every return; the server is authoritative.
type CloseFormMsg struct{}

type prefillMsg struct {
	gen  int
	note dto.NoteOutput
	err  error
}

type savedMsg struct {
	gen int
	err error
}

type navMsg struct{ gen int }

type FormModel struct {
	port FormPort
	id   string

	title    textinput.Model
	content  textarea.Model
	focusIdx int

	spinner    spinner.Model
	prefilling bool
	blocked    bool
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
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Focus()

	content := textarea.New()
	content.Placeholder = "write your note…"
	content.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	m := FormModel{
		port:       port,
		id:         id,
		title:      title,
		content:    content,
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
		m.content.SetWidth(min(m.width-8, 72))
		m.content.SetHeight(max(m.height-12, 6))
		return m, nil

	case prefillMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.prefilling = false
		if msg.err != nil {
			m.blocked = true
			m.errMsg = httpapi.MessageFor(msg.err, "Failed to load note data. Please try again later.")
			return m, nil
		}
		m.title.SetValue(msg.note.Title)
		m.content.SetValue(msg.note.Content)
		return m, nil

	case savedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrInvalidInput) {
				m.errMsg = "Title is required."
			} else {
				m.errMsg = httpapi.MessageFor(msg.err, "Failed to save the note. Please try again.")
			}
			return m, nil
		}
		m.succeeded = true
		if m.id == "" {
			m.okMsg = "Note created successfully."
			m.title.SetValue("")
			m.content.SetValue("")
		} else {
			m.okMsg = "Note updated successfully."
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
			m.setFocus((m.focusIdx + 1) % 2)
			return m, nil
		case "enter":
			if m.focusIdx == 0 {
				m.setFocus(1)
				return m, nil
			}
		case "ctrl+s":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focusIdx == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m FormModel) View() string {
	if m.prefilling {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading note data…")
	}

	title := "New Note"
	if m.id != "" {
		title = "Edit Note"
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
		theme.FieldLabel.Render("Title"),
		m.title.View(),
		"",
		theme.FieldLabel.Render("Content"),
		m.content.View(),
		"",
		status,
	)
	return theme.Pane.Render(form)
}

func (m FormModel) Leave() FormModel {
	m.cancel()
	m.gen++
	return m
}

func (m *FormModel) setFocus(idx int) {
	m.focusIdx = idx
	if idx == 0 {
		m.title.Focus()
		m.content.Blur()
	} else {
		m.content.Focus()
		m.title.Blur()
	}
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	m.errMsg = ""
	m.okMsg = ""
	m.submitting = true
	port, ctx, gen, id := m.port, m.ctx, m.gen, m.id
	title, content := m.title.Value(), m.content.Value()
	return m, func() tea.Msg {
		var err error
		if id == "" {
			err = port.Create(ctx, dto.CreateInput{Title: title, Content: content})
		} else {
			err = port.Update(ctx, dto.UpdateInput{ID: id, Title: title, Content: content})
		}
		return savedMsg{gen: gen, err: err}
	}
}

func (m FormModel) prefillCmd() tea.Cmd {
	port, ctx, gen, id := m.port, m.ctx, m.gen, m.id
	return func() tea.Msg {
		note, err := port.Get(ctx, id)
		return prefillMsg{gen: gen, note: note, err: err}
	}
}
