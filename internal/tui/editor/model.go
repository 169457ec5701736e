// Package editor hosts a single Textarea in a bubbletea program.
package editor

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkwell/internal/logger"
	"github.com/alexisbeaulieu97/inkwell/internal/ui/components"
)

// EventCounts tallies the textarea callbacks seen by the host.
type EventCounts struct {
	Changes int
	Focuses int
	Blurs   int
}

// Options configures a Model.
type Options struct {
	Props  components.TextareaProps
	Theme  components.Theme
	Title  string
	Logger *logger.Logger
}

// Model is the bubbletea model of the interactive editor.
type Model struct {
	textarea *components.Textarea
	props    components.TextareaProps
	theme    components.Theme
	title    string
	keys     keyMap
	help     help.Model
	log      *logger.Logger
	counts   *EventCounts
	width    int
	quitting bool
}

// NewModel builds the editor around a textarea configured by opts.Props.
// Callbacks already present in the props still run after the host's own.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	title := opts.Title
	if title == "" {
		title = "Textarea"
	}

	m := Model{
		theme:  opts.Theme.Normalize(),
		title:  title,
		keys:   defaultKeyMap(),
		help:   help.New(),
		log:    log.WithFields(map[string]any{"component": "textarea"}),
		counts: &EventCounts{},
	}
	m.help.Styles = helpStyles(m.theme)

	m.props = m.wrapCallbacks(opts.Props)
	m.textarea = components.NewTextarea(m.props)

	return m
}

func (m Model) wrapCallbacks(props components.TextareaProps) components.TextareaProps {
	counts, log := m.counts, m.log
	onChange, onFocus, onBlur := props.OnChange, props.OnFocus, props.OnBlur

	props.OnChange = func(e components.ChangeEvent) {
		counts.Changes++
		log.WithFields(map[string]any{"event": "change", "length": len([]rune(e.Value))}).Debug("textarea event")
		if onChange != nil {
			onChange(e)
		}
	}
	props.OnFocus = func(e components.FocusEvent) {
		counts.Focuses++
		log.WithFields(map[string]any{"event": "focus"}).Debug("textarea event")
		if onFocus != nil {
			onFocus(e)
		}
	}
	props.OnBlur = func(e components.FocusEvent) {
		counts.Blurs++
		log.WithFields(map[string]any{"event": "blur"}).Debug("textarea event")
		if onBlur != nil {
			onBlur(e)
		}
	}
	return props
}

// Init focuses the textarea. A disabled textarea stays unfocused.
func (m Model) Init() tea.Cmd {
	return m.textarea.Focus()
}

// Value returns the text currently in the textarea.
func (m Model) Value() string {
	return m.textarea.Value()
}

// Status returns the status the textarea is drawn with.
func (m Model) Status() components.Status {
	return m.props.Status
}

// Counts returns a snapshot of the callback tallies.
func (m Model) Counts() EventCounts {
	return *m.counts
}

// Textarea exposes the hosted component.
func (m Model) Textarea() *components.Textarea {
	return m.textarea
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
