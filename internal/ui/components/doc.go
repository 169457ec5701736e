// Package components provides theme-aware UI components for terminal applications.
//
// # Overview
//
// Components render to strings with lipgloss and take input from the
// bubbletea update loop. Every colour a component draws with comes from a
// Theme that the caller passes in through a RenderContext; nothing reads
// package-level theme state.
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme).WithParentWidth(120)
//	output := component.ViewWithContext(ctx)
//
// View() renders with the default theme:
//
//	output := component.View()
//
// # Status colours
//
// Controls pick their colours from a Status (default, secondary, success,
// warning, error). ColorsFor is a pure lookup from (Palette, Status) to a
// StatusColors triple of text, border and hover border. Unknown statuses get
// the default triple.
//
// # Textarea
//
// Textarea is a multi-line input with controlled and uncontrolled modes:
//
//	ta := components.NewTextarea(components.TextareaProps{
//		InitialValue: "draft",
//		Placeholder:  "Write a note",
//		Status:       components.StatusWarning,
//		Width:        "60",
//		OnChange: func(e components.ChangeEvent) {
//			log.Printf("now %q", e.Value)
//		},
//	})
//
// Host models forward messages with Update and move focus with Focus and
// Blur. Prop changes, including a new controlled value, go through Sync.
//
// # Sizes
//
// Width and MinHeight are written like stylesheet sizes ("60", "12.5rem",
// "80%", "initial") and resolved to cells with ParseDimension. Malformed
// sizes fall back to the component's natural size.
//
// # Style modifiers
//
// Extra styling is layered on with StyleFunc appliers:
//
//	ta.WithAppliers(MarginX(SpacingSizeSmall), Border(BorderVariantDouble))
package components
