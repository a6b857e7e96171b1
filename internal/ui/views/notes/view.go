package notes

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"praxis/internal/modules/notes/dto"
	"praxis/internal/platform/httpapi"
	"praxis/internal/ui/components"
	"praxis/internal/ui/theme"
)

type ListPort interface {
	List(ctx context.Context) ([]dto.NoteOutput, error)
	Delete(ctx context.Context, id string) error
}

type LoadedMsg struct {
	Gen   int
	Notes []dto.NoteOutput
	Err   error
}

type DeletedMsg struct {
	Gen int
	Err error
}

// OpenFormMsg asks the root model to open the note form. An empty ID
// means create mode.
type OpenFormMsg struct{ ID string }

type noteItem struct {
	note dto.NoteOutput
}

func (i noteItem) Title() string { return i.note.Title }
func (i noteItem) Description() string {
	return fmt.Sprintf("added %s", i.note.CreatedAt)
}
func (i noteItem) FilterValue() string { return i.note.Title }

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
	l.Title = "Personal Notes"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, spinner: sp, loading: true}
}

func (m Model) Enter() (Model, tea.Cmd) {
	m = m.startFetch()
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
			m.errMsg = httpapi.MessageFor(msg.Err, "Could not load notes. Please try again later.")
			return m, m.list.SetItems(nil)
		}
		m.errMsg = ""
		items := make([]list.Item, len(msg.Notes))
		for n, note := range msg.Notes {
			items[n] = noteItem{note: note}
		}
		return m, m.list.SetItems(items)

	case DeletedMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if msg.Err != nil {
			m.errMsg = httpapi.MessageFor(msg.Err, "Could not delete the note. Please try again later.")
			return m, nil
		}
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
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				id := item.note.ID
				return m, func() tea.Msg { return OpenFormMsg{ID: id} }
			}
			return m, nil
		case "d":
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				m.confirm.Ask(
					fmt.Sprintf("Delete the note %q?", item.note.Title),
					item.note.ID,
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
			m.spinner.View()+" Loading notes…")
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
		notes, err := port.List(ctx)
		return LoadedMsg{Gen: gen, Notes: notes, Err: err}
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
