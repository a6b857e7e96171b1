package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	notesdto "praxis/internal/modules/notes/dto"
	sessionsdto "praxis/internal/modules/sessions/dto"
	"praxis/internal/ui/theme"
)

// recentCount is how many entries each pane shows.
const recentCount = 5

type SessionsPort interface {
	List(ctx context.Context) ([]sessionsdto.SessionOutput, error)
}

type NotesPort interface {
	List(ctx context.Context) ([]notesdto.NoteOutput, error)
}

// LoadedMsg carries both collections. Each resource fails independently:
// a broken feed empties its own pane and leaves the other intact.
type LoadedMsg struct {
	Gen         int
	Sessions    []sessionsdto.SessionOutput
	SessionsErr error
	Notes       []notesdto.NoteOutput
	NotesErr    error
}

type Model struct {
	sessions SessionsPort
	notes    NotesPort
	username string

	recentSessions []sessionsdto.SessionOutput
	recentNotes    []notesdto.NoteOutput
	sessionsErr    string
	notesErr       string

	spinner spinner.Model
	loading bool
	gen     int
	ctx     context.Context
	cancel  context.CancelFunc
	width   int
	height  int
}

func New(sessions SessionsPort, notes NotesPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{sessions: sessions, notes: notes, spinner: sp, loading: true}
}

func (m Model) SetUsername(name string) Model {
	m.username = name
	return m
}

func (m Model) Enter() (Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.gen++
	m.loading = true
	return m, tea.Batch(m.fetchCmd(), m.spinner.Tick)
}

func (m Model) Leave() Model {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.gen++
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LoadedMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.SessionsErr != nil {
			m.recentSessions = nil
			m.sessionsErr = "Could not load recent sessions."
		} else {
			m.recentSessions = firstN(msg.Sessions, recentCount)
			m.sessionsErr = ""
		}
		if msg.NotesErr != nil {
			m.recentNotes = nil
			m.notesErr = "Could not load recent notes."
		} else {
			m.recentNotes = firstNNotes(msg.Notes, recentCount)
			m.notesErr = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			return m.Enter()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading dashboard…")
	}

	greeting := theme.Title.Render("Welcome back, " + m.username)

	paneWidth := max((m.width-6)/2, 30)
	sessionsPane := theme.Pane.Width(paneWidth).Render(m.sessionsPane())
	notesPane := theme.Pane.Width(paneWidth).Render(m.notesPane())

	body := lipgloss.JoinHorizontal(lipgloss.Top, sessionsPane, " ", notesPane)
	footer := theme.Muted.Render("r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, greeting, "", body, "", footer)
}

func (m Model) sessionsPane() string {
	var b strings.Builder
	b.WriteString(theme.Hot.Render("Recent Sessions"))
	b.WriteString("\n\n")
	switch {
	case m.sessionsErr != "":
		b.WriteString(theme.Danger.Render(m.sessionsErr))
	case len(m.recentSessions) == 0:
		b.WriteString(theme.Muted.Render("No sessions yet."))
	default:
		for _, s := range m.recentSessions {
			b.WriteString(fmt.Sprintf("%s  %s\n", s.SessionDate, s.ClientName))
		}
	}
	return b.String()
}

func (m Model) notesPane() string {
	var b strings.Builder
	b.WriteString(theme.Hot.Render("Recent Notes"))
	b.WriteString("\n\n")
	switch {
	case m.notesErr != "":
		b.WriteString(theme.Danger.Render(m.notesErr))
	case len(m.recentNotes) == 0:
		b.WriteString(theme.Muted.Render("No notes yet."))
	default:
		for _, n := range m.recentNotes {
			b.WriteString(fmt.Sprintf("%s  %s\n", n.CreatedAt, n.Title))
		}
	}
	return b.String()
}

func (m Model) fetchCmd() tea.Cmd {
	sessions, notes, ctx, gen := m.sessions, m.notes, m.ctx, m.gen
	return func() tea.Msg {
		msg := LoadedMsg{Gen: gen}
		msg.Sessions, msg.SessionsErr = sessions.List(ctx)
		msg.Notes, msg.NotesErr = notes.List(ctx)
		return msg
	}
}

func firstN(s []sessionsdto.SessionOutput, n int) []sessionsdto.SessionOutput {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func firstNNotes(s []notesdto.NoteOutput, n int) []notesdto.NoteOutput {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
