package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkwell/internal/ui/components"
)

func titleStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Palette.Primary.Base).
		MarginBottom(components.MarginValue(theme, components.SpacingSizeExtraSmall))
}

func footerStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Palette.Neutral.Base).
		MarginTop(components.MarginValue(theme, components.SpacingSizeExtraSmall))
}

func statusStyle(theme components.Theme, status components.Status) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(components.ColorsFor(theme.Palette, status).Border)
}

func helpStyles(theme components.Theme) help.Styles {
	styles := help.New().Styles
	keyStyle := lipgloss.NewStyle().Foreground(theme.Palette.Info.Base)
	descStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base)
	sepStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)

	styles.ShortKey = keyStyle
	styles.ShortDesc = descStyle
	styles.ShortSeparator = sepStyle
	styles.FullKey = keyStyle
	styles.FullDesc = descStyle
	styles.FullSeparator = sepStyle
	return styles
}
