package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Default textarea sizing.
const (
	DefaultTextareaWidth     = "initial"
	DefaultTextareaMinHeight = "6.25rem"

	// naturalTextareaColumns is the width used when Width is auto.
	naturalTextareaColumns = 40
	// minTextareaColumns mirrors a 12.5rem minimum width.
	minTextareaColumns = 25
	// maxTextareaParentPercent caps the width relative to the parent.
	maxTextareaParentPercent = 95
	// fallbackTextareaRows is used when MinHeight cannot be resolved.
	fallbackTextareaRows = 6
)

// ChangeEvent describes an accepted edit.
type ChangeEvent struct {
	// Value is the text after the edit.
	Value string
	// Previous is the text before the edit.
	Previous string
	// Msg is the message that caused the edit.
	Msg tea.Msg
}

// FocusEvent is delivered on focus and blur.
type FocusEvent struct {
	Value string
}

type (
	ChangeHandler func(ChangeEvent)
	FocusHandler  func(FocusEvent)
)

// TextareaAttributes are passed through to the underlying editor.
type TextareaAttributes struct {
	// CharLimit caps the number of characters; 0 means no limit.
	CharLimit int
	// MaxHeight caps the number of rows the content can grow to; 0 keeps the editor default.
	MaxHeight int
	ShowLineNumbers bool
	// Prompt is drawn at the start of every line.
	Prompt string
	// KeyMap replaces the editor key bindings when set.
	KeyMap *textarea.KeyMap
}

// TextareaProps configures a Textarea. The zero value is a usable,
// uncontrolled, empty textarea.
type TextareaProps struct {
	// Value switches the textarea into controlled mode when non-nil. It is
	// displayed in full even past CharLimit; "\r\n" and "\r" become "\n",
	// tabs become four spaces and other control characters are dropped.
	Value *string
	// InitialValue seeds an uncontrolled textarea. It is read once, at construction.
	InitialValue string
	Placeholder  string
	Status       Status
	// Width of the container, e.g. "60", "30rem", "80%". Defaults to "initial".
	Width string
	// MinHeight of the content area, e.g. "6", "6.25rem". Defaults to "6.25rem".
	MinHeight string
	Disabled  bool
	ReadOnly  bool

	OnChange ChangeHandler
	OnFocus  FocusHandler
	OnBlur   FocusHandler

	// Appliers add styling on top of the container, like an extra CSS class.
	Appliers   []StyleFunc
	Attributes TextareaAttributes
}

// StringValue returns a pointer to v, for use as a controlled Value.
func StringValue(v string) *string {
	return &v
}

func (p TextareaProps) withDefaults() TextareaProps {
	if p.Width == "" {
		p.Width = DefaultTextareaWidth
	}
	if p.MinHeight == "" {
		p.MinHeight = DefaultTextareaMinHeight
	}
	if p.Attributes.CharLimit < 0 {
		p.Attributes.CharLimit = 0
	}
	if p.Attributes.MaxHeight < 0 {
		p.Attributes.MaxHeight = 0
	}
	return p
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
