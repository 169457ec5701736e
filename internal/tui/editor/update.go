package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.log.Info("editor closed")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Blur):
			m.textarea.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if m.textarea.Hovered() {
				m.textarea.Blur()
				return m, nil
			}
			return m, m.textarea.Focus()
		case key.Matches(msg, m.keys.Status):
			m.props.Status = m.props.Status.Next()
			m.textarea.Sync(m.props)
			m.log.WithFields(map[string]any{"status": m.props.Status.String()}).Debug("status changed")
			return m, nil
		}
	}

	return m, m.textarea.Update(msg)
}
