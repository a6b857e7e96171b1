package sessions

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"praxis/internal/modules/sessions/dto"
	"praxis/internal/platform/httpapi"
	"praxis/internal/ui/components"
	"praxis/internal/ui/theme"
)

type ListPort interface {
	List(ctx context.Context) ([]dto.SessionOutput, error)
	Delete(ctx context.Context, id string) error
}

// LoadedMsg and DeletedMsg carry the generation of the fetch that produced
// them; results from a fetch superseded by navigation are dropped.
type LoadedMsg struct {
	Gen      int
	Sessions []dto.SessionOutput
	Err      error
}

type DeletedMsg struct {
	Gen int
	Err error
}

// OpenFormMsg asks the root model to open the session form. An empty ID
// means create mode.
type OpenFormMsg struct{ ID string }

type sessionItem struct {
	session dto.SessionOutput
}

func (i sessionItem) Title() string { return i.session.ClientName }
func (i sessionItem) Description() string {
	return fmt.Sprintf("seen %s · added %s", i.session.SessionDate, i.session.CreatedAt)
}
func (i sessionItem) FilterValue() string { return i.session.ClientName }

type Model struct {
	port    ListPort
	list    list.Model
	spinner spinner.Model
	confirm components.Confirm
	loading bool
	errMsg  string
	gen     int
	ctx     context.Context
	cancel  context.CancelFunc
	width   int
	height  int
}

func New(port ListPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Client Sessions"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, spinner: sp, loading: true}
}

// Enter starts (or restarts) the collection fetch. The root model calls it
// when the screen becomes active and when a sibling form signals a refresh.
func (m Model) Enter() (Model, tea.Cmd) {
	m = m.startFetch()
	return m, tea.Batch(m.fetchCmd(), m.spinner.Tick)
}

// Leave cancels any in-flight request so a late response cannot write into
// a screen the user already navigated away from.
func (m Model) Leave() Model {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.gen++
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirm.Visible() {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-2)

	case LoadedMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			// Fetch failures never show stale data: message plus empty list.
			m.errMsg = httpapi.MessageFor(msg.Err, "Could not load sessions. Please try again later.")
			return m, m.list.SetItems(nil)
		}
		m.errMsg = ""
		items := make([]list.Item, len(msg.Sessions))
		for n, s := range msg.Sessions {
			items[n] = sessionItem{session: s}
		}
		return m, m.list.SetItems(items)

	case DeletedMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if msg.Err != nil {
			m.errMsg = httpapi.MessageFor(msg.Err, "Could not delete the session. Please try again later.")
			return m, nil
		}
		// The server list is authoritative after every mutation.
		return m.Enter()

	case components.ConfirmedMsg:
		m = m.startOp()
		return m, m.deleteCmd(msg.Tag)

	case components.DeclinedMsg:
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if m.loading || m.Filtering() {
			break
		}
		switch msg.String() {
		case "n":
			return m, func() tea.Msg { return OpenFormMsg{} }
		case "enter", "e":
			if item, ok := m.list.SelectedItem().(sessionItem); ok {
				id := item.session.ID
				return m, func() tea.Msg { return OpenFormMsg{ID: id} }
			}
			return m, nil
		case "d":
			if item, ok := m.list.SelectedItem().(sessionItem); ok {
				m.confirm.Ask(
					fmt.Sprintf("Delete the session for %s?", item.session.ClientName),
					item.session.ID,
				)
			}
			return m, nil
		case "r":
			return m.Enter()
		}
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.confirm.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading sessions…")
	}

	var footer string
	if m.errMsg != "" {
		footer = theme.Danger.Render(m.errMsg)
	} else {
		footer = theme.Muted.Render("n: new  enter: edit  d: delete  r: refresh")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// startOp opens a fresh request window: a new context tied to this screen
// and a new generation so older completions are ignored.
func (m Model) startOp() Model {
	if m.cancel != nil {
		m.cancel()
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.gen++
	return m
}

func (m Model) startFetch() Model {
	m = m.startOp()
	m.loading = true
	return m
}

func (m Model) fetchCmd() tea.Cmd {
	port, ctx, gen := m.port, m.ctx, m.gen
	return func() tea.Msg {
		sessions, err := port.List(ctx)
		return LoadedMsg{Gen: gen, Sessions: sessions, Err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	port, ctx, gen := m.port, m.ctx, m.gen
	return func() tea.Msg {
		if err := port.Delete(ctx, id); err != nil {
			return DeletedMsg{Gen: gen, Err: err}
		}
		return DeletedMsg{Gen: gen}
	}
}
