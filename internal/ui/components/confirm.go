package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"praxis/internal/ui/theme"
)

// ConfirmedMsg is emitted when the user accepts the pending action.
type ConfirmedMsg struct{ Tag string }

// DeclinedMsg is emitted when the user declines or cancels.
type DeclinedMsg struct{ Tag string }

var confirmStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Red).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(0, 2)

// Confirm is a modal yes/no prompt. Tag identifies what is being confirmed
// so the parent can match the answer to the pending action.
type Confirm struct {
	prompt  string
	tag     string
	visible bool
}

func (c *Confirm) Ask(prompt, tag string) {
	c.prompt = prompt
	c.tag = tag
	c.visible = true
}

func (c Confirm) Visible() bool { return c.visible }

func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	if !c.visible {
		return c, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	tag := c.tag
	switch key.String() {
	case "y", "Y", "enter":
		c.visible = false
		return c, func() tea.Msg { return ConfirmedMsg{Tag: tag} }
	case "n", "N", "esc":
		c.visible = false
		return c, func() tea.Msg { return DeclinedMsg{Tag: tag} }
	}
	return c, nil
}

func (c Confirm) View() string {
	if !c.visible {
		return ""
	}
	body := theme.Hot.Render(c.prompt) + "\n" + theme.Muted.Render("y: yes  n: no")
	return confirmStyle.Render(body)
}
