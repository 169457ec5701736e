package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkwell/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithParentWidth(m.width)

	sections := []string{
		titleStyle(m.theme).Render(fmt.Sprintf("inkwell • %s", m.title)),
		m.textarea.ViewWithContext(ctx),
		footerStyle(m.theme).Render(m.statusLine()),
		m.help.View(m.keys),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) statusLine() string {
	parts := []string{
		"status " + statusStyle(m.theme, m.props.Status).Render(m.props.Status.String()),
		m.mode(),
		fmt.Sprintf("%d chars", len([]rune(m.textarea.Value()))),
	}
	return strings.Join(parts, " · ")
}

func (m Model) mode() string {
	var mode string
	switch {
	case m.props.Disabled:
		mode = "disabled"
	case m.props.ReadOnly:
		mode = "read-only"
	case m.textarea.Hovered():
		mode = "editing"
	default:
		mode = "idle"
	}
	if m.textarea.Controlled() {
		mode += " (controlled)"
	}
	return mode
}
