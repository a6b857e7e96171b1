package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "praxis/internal/modules/auth/dto"
	notesdto "praxis/internal/modules/notes/dto"
	sessionsdto "praxis/internal/modules/sessions/dto"
	"praxis/internal/ui/theme"
	dashboardview "praxis/internal/ui/views/dashboard"
	loginview "praxis/internal/ui/views/login"
	notesview "praxis/internal/ui/views/notes"
	sessionsview "praxis/internal/ui/views/sessions"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type authPort interface {
	CheckStatus(ctx context.Context) authdto.StatusOutput
	Login(ctx context.Context, input authdto.LoginInput) authdto.LoginOutput
	Logout(ctx context.Context)
}

type sessionsPort interface {
	List(ctx context.Context) ([]sessionsdto.SessionOutput, error)
	Get(ctx context.Context, id string) (sessionsdto.SessionOutput, error)
	Create(ctx context.Context, input sessionsdto.CreateInput) error
	Update(ctx context.Context, input sessionsdto.UpdateInput) error
	Delete(ctx context.Context, id string) error
}

type notesPort interface {
	List(ctx context.Context) ([]notesdto.NoteOutput, error)
	Get(ctx context.Context, id string) (notesdto.NoteOutput, error)
	Create(ctx context.Context, input notesdto.CreateInput) error
	Update(ctx context.Context, input notesdto.UpdateInput) error
	Delete(ctx context.Context, id string) error
}

// ─── routes ──────────────────────────────────────────────────────────────────

// route is the guard state: every screen behind routeMain requires an
// authenticated session, and nothing renders before the initial check
// resolves.
type route int

const (
	routeChecking route = iota
	routeLogin
	routeMain
)

type tabID int

const (
	tabDashboard tabID = iota
	tabSessions
	tabNotes
	tabCount
)

var tabLabels = [tabCount]string{"Dashboard", "Sessions", "Notes"}

// ─── async messages ──────────────────────────────────────────────────────────

type statusCheckedMsg struct{ out authdto.StatusOutput }

type loggedOutMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the auth guard, tab routing,
// and the form overlays. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	auth     authPort
	sessions sessionsPort
	notes    notesPort

	route    route
	username string

	activeTab tabID
	dashView  dashboardview.Model
	sessView  sessionsview.Model
	noteView  notesview.Model
	loginView loginview.Model

	sessForm       sessionsview.FormModel
	sessFormActive bool
	noteForm       notesview.FormModel
	noteFormActive bool

	spinner spinner.Model
	width   int
	height  int
}

func NewModel(auth authPort, sessions sessionsPort, notes notesPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		auth:      auth,
		sessions:  sessions,
		notes:     notes,
		route:     routeChecking,
		activeTab: tabDashboard,
		dashView:  dashboardview.New(sessions, notes),
		sessView:  sessionsview.New(sessions),
		noteView:  notesview.New(notes),
		loginView: loginview.New(auth),
		spinner:   sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkStatusCmd(), m.spinner.Tick)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.propagateSize()
		return m, nil

	case statusCheckedMsg:
		if m.route != routeChecking {
			return m, nil
		}
		if !msg.out.Authenticated {
			m.route = routeLogin
			return m, nil
		}
		return m.enterMain(msg.out.Username)

	case loginview.SucceededMsg:
		return m.enterMain(msg.Username)

	case loggedOutMsg:
		m.route = routeLogin
		m.username = ""
		m.loginView = m.loginView.Reset()
		m.sessFormActive = false
		m.noteFormActive = false
		m.activeTab = tabDashboard
		return m, nil

	case spinner.TickMsg:
		if m.route == routeChecking {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case sessionsview.OpenFormMsg:
		m.sessView = m.sessView.Leave()
		m.sessForm = sessionsview.NewForm(m.sessions, msg.ID)
		m.sessFormActive = true
		m.propagateSize()
		return m, m.sessForm.Init()

	case sessionsview.CloseFormMsg:
		m.sessForm = m.sessForm.Leave()
		m.sessFormActive = false
		// The list refetches on every return; the server is authoritative.
		var cmd tea.Cmd
		m.sessView, cmd = m.sessView.Enter()
		return m, cmd

	case notesview.OpenFormMsg:
		m.noteView = m.noteView.Leave()
		m.noteForm = notesview.NewForm(m.notes, msg.ID)
		m.noteFormActive = true
		m.propagateSize()
		return m, m.noteForm.Init()

	case notesview.CloseFormMsg:
		m.noteForm = m.noteForm.Leave()
		m.noteFormActive = false
		var cmd tea.Cmd
		m.noteView, cmd = m.noteView.Enter()
		return m, cmd

	case tea.KeyMsg:
		switch m.route {
		case routeChecking:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		case routeLogin:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.loginView, cmd = m.loginView.Update(msg)
			return m, cmd
		}

		// Forms own the keyboard while open; esc bubbles a CloseFormMsg.
		if m.sessFormActive || m.noteFormActive {
			break
		}
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			return m.switchTab((m.activeTab + 1) % tabCount)
		case "shift+tab":
			return m.switchTab((m.activeTab + tabCount - 1) % tabCount)
		case "1":
			return m.switchTab(tabDashboard)
		case "2":
			return m.switchTab(tabSessions)
		case "3":
			return m.switchTab(tabNotes)
		case "ctrl+l":
			return m, m.logoutCmd()
		}
	}

	return m.updateActive(msg)
}

// updateActive routes a message to whichever screen currently owns it.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.route == routeLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case m.route != routeMain:
		return m, nil
	case m.sessFormActive:
		m.sessForm, cmd = m.sessForm.Update(msg)
	case m.noteFormActive:
		m.noteForm, cmd = m.noteForm.Update(msg)
	default:
		switch m.activeTab {
		case tabDashboard:
			m.dashView, cmd = m.dashView.Update(msg)
		case tabSessions:
			m.sessView, cmd = m.sessView.Update(msg)
		case tabNotes:
			m.noteView, cmd = m.noteView.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) enterMain(username string) (tea.Model, tea.Cmd) {
	m.route = routeMain
	m.username = username
	m.activeTab = tabDashboard
	m.dashView = m.dashView.SetUsername(username)
	var cmd tea.Cmd
	m.dashView, cmd = m.dashView.Enter()
	return m, cmd
}

func (m Model) switchTab(next tabID) (tea.Model, tea.Cmd) {
	if next == m.activeTab {
		return m, nil
	}
	switch m.activeTab {
	case tabDashboard:
		m.dashView = m.dashView.Leave()
	case tabSessions:
		m.sessView = m.sessView.Leave()
	case tabNotes:
		m.noteView = m.noteView.Leave()
	}
	m.activeTab = next
	var cmd tea.Cmd
	switch next {
	case tabDashboard:
		m.dashView, cmd = m.dashView.Enter()
	case tabSessions:
		m.sessView, cmd = m.sessView.Enter()
	case tabNotes:
		m.noteView, cmd = m.noteView.Enter()
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.route {
	case routeChecking:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Checking session…")
	case routeLogin:
		return m.loginView.View()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.sessFormActive:
		content = m.sessForm.View()
	case m.noteFormActive:
		content = m.noteForm.View()
	default:
		switch m.activeTab {
		case tabDashboard:
			content = m.dashView.View()
		case tabSessions:
			content = m.sessView.View()
		case tabNotes:
			content = m.noteView.View()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "praxis  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := theme.Hot.Render("● " + m.username)
	right := theme.Muted.Render("tab:switch  ctrl+l:logout  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabSessions:
		return m.sessView.Filtering()
	case tabNotes:
		return m.noteView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.sessView, _ = m.sessView.Update(sz)
	m.noteView, _ = m.noteView.Update(sz)
	m.loginView, _ = m.loginView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	if m.sessFormActive {
		m.sessForm, _ = m.sessForm.Update(sz)
	}
	if m.noteFormActive {
		m.noteForm, _ = m.noteForm.Update(sz)
	}
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) checkStatusCmd() tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		return statusCheckedMsg{out: auth.CheckStatus(context.Background())}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		auth.Logout(context.Background())
		return loggedOutMsg{}
	}
}
