package login

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "praxis/internal/modules/auth/dto"
	"praxis/internal/ui/theme"
)

type AuthPort interface {
	Login(ctx context.Context, input authdto.LoginInput) authdto.LoginOutput
}

// SucceededMsg bubbles up to the root model, which flips the route guard
// to the authenticated state.
type SucceededMsg struct{ Username string }

type resultMsg struct{ out authdto.LoginOutput }

type Model struct {
	port       AuthPort
	username   textinput.Model
	password   textinput.Model
	focusIdx   int
	submitting bool
	errMsg     string
	width      int
	height     int
}

func New(port AuthPort) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 128
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{port: port, username: username, password: password}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultMsg:
		m.submitting = false
		if !msg.out.Success {
			m.errMsg = msg.out.Message
			return m, nil
		}
		m.errMsg = ""
		username := msg.out.Username
		return m, func() tea.Msg { return SucceededMsg{Username: username} }

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focusIdx + 1) % 2)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focusIdx + 1) % 2)
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focusIdx == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var status string
	switch {
	case m.submitting:
		status = theme.Muted.Render("Signing in…")
	case m.errMsg != "":
		status = theme.Danger.Render(m.errMsg)
	default:
		status = theme.Muted.Render("enter: sign in")
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Praxis Admin"),
		"",
		theme.FieldLabel.Render("Username"),
		m.username.View(),
		"",
		theme.FieldLabel.Render("Password"),
		m.password.View(),
		"",
		status,
	)
	card := theme.Pane.Width(48).Render(form)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// Reset clears the form, for when the user logs out and comes back.
func (m Model) Reset() Model {
	m.username.SetValue("")
	m.password.SetValue("")
	m.errMsg = ""
	m.submitting = false
	m.setFocus(0)
	return m
}

func (m *Model) setFocus(idx int) {
	m.focusIdx = idx
	if idx == 0 {
		m.username.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.username.Blur()
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	m.errMsg = ""
	m.submitting = true
	port := m.port
	input := authdto.LoginInput{
		Username: m.username.Value(),
		Password: m.password.Value(),
	}
	return m, func() tea.Msg {
		return resultMsg{out: port.Login(context.Background(), input)}
	}
}
