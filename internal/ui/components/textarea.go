package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ ContextualRenderable = (*Textarea)(nil)

// Textarea is a themed multi-line text input.
//
// It runs in one of two modes, chosen from the props on every Sync. In
// controlled mode (props.Value set) the caller owns the text: whenever the
// supplied value changes, the displayed text is reset to it. In uncontrolled
// mode the textarea is the only owner of its text and is seeded once from
// InitialValue. In both modes accepted edits update the displayed text and
// are reported through OnChange.
//
// Textarea is driven from a bubbletea Update loop and is not safe for
// concurrent use.
type Textarea struct {
	BaseComponent

	props TextareaProps
	input textarea.Model

	controlled bool
	// lastValue is the controlled value seen on the previous Sync.
	lastValue *string
	hover     bool

	defaultMaxHeight int
}

// NewTextarea builds a textarea from props.
func NewTextarea(props TextareaProps) *Textarea {
	t := &Textarea{
		BaseComponent: NewBaseComponent(),
		input:         textarea.New(),
	}
	t.defaultMaxHeight = t.input.MaxHeight
	// Point the editor at the style fields it will keep using from now on.
	t.input.Blur()

	props = props.withDefaults()
	t.props = props
	t.applyProps()

	seed := props.InitialValue
	if props.Value != nil {
		seed = *props.Value
	}
	t.setValue(seed)
	t.controlled = props.Value != nil
	t.lastValue = cloneString(props.Value)

	return t
}

// Sync applies an external props update. The controlled value only
// overrides the displayed text when it differs from the previously supplied
// one; InitialValue is ignored after construction.
func (t *Textarea) Sync(props TextareaProps) {
	wasDisabled := t.props.Disabled

	props = props.withDefaults()
	t.props = props
	t.applyProps()

	t.controlled = props.Value != nil
	if props.Value != nil && (t.lastValue == nil || *t.lastValue != *props.Value) {
		t.setValue(*props.Value)
	}
	t.lastValue = cloneString(props.Value)

	if props.Disabled && !wasDisabled && t.hover {
		t.blur()
	}
}

// lineEndings folds CRLF and lone CR into LF before the editor sees them.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// setValue replaces the text with a supplied value. CharLimit and MaxHeight
// only bound typing, so they are lifted while the value goes in.
func (t *Textarea) setValue(v string) {
	charLimit, maxHeight := t.input.CharLimit, t.input.MaxHeight
	t.input.CharLimit, t.input.MaxHeight = 0, 0
	t.input.SetValue(lineEndings.Replace(v))
	t.input.CharLimit, t.input.MaxHeight = charLimit, maxHeight
}

func (t *Textarea) applyProps() {
	attrs := t.props.Attributes

	t.input.Placeholder = t.props.Placeholder
	t.input.CharLimit = attrs.CharLimit
	t.input.MaxHeight = t.defaultMaxHeight
	if attrs.MaxHeight > 0 {
		t.input.MaxHeight = attrs.MaxHeight
	}
	t.input.ShowLineNumbers = attrs.ShowLineNumbers
	t.input.Prompt = attrs.Prompt
	if attrs.KeyMap != nil {
		t.input.KeyMap = *attrs.KeyMap
	}

	t.SetAppliers(t.props.Appliers...)
}

// Update handles an input message. Disabled textareas ignore everything.
// Read-only textareas accept cursor movement but never change their text or
// call OnChange.
func (t *Textarea) Update(msg tea.Msg) tea.Cmd {
	if t.props.Disabled {
		return nil
	}
	if t.props.ReadOnly && !t.readOnlyAllows(msg) {
		return nil
	}

	previous := t.input.Value()

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	current := t.input.Value()
	if current == previous {
		return cmd
	}

	if t.props.ReadOnly {
		t.setValue(previous)
		return cmd
	}

	if t.props.OnChange != nil {
		t.props.OnChange(ChangeEvent{Value: current, Previous: previous, Msg: msg})
	}
	return cmd
}

func (t *Textarea) readOnlyAllows(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return true
	}
	km := t.input.KeyMap
	return key.Matches(keyMsg,
		km.CharacterForward,
		km.CharacterBackward,
		km.WordForward,
		km.WordBackward,
		km.LineNext,
		km.LinePrevious,
		km.LineStart,
		km.LineEnd,
		km.InputBegin,
		km.InputEnd,
	)
}

// Focus gives the textarea input focus and turns on its hover styling.
// It does nothing while disabled.
func (t *Textarea) Focus() tea.Cmd {
	if t.props.Disabled {
		return nil
	}
	t.hover = true
	cmd := t.input.Focus()
	if t.props.OnFocus != nil {
		t.props.OnFocus(FocusEvent{Value: t.Value()})
	}
	return cmd
}

// Blur removes input focus and hover styling. It does nothing while disabled.
func (t *Textarea) Blur() {
	if t.props.Disabled {
		return
	}
	t.blur()
}

func (t *Textarea) blur() {
	t.hover = false
	t.input.Blur()
	if t.props.OnBlur != nil {
		t.props.OnBlur(FocusEvent{Value: t.Value()})
	}
}

// Value returns the displayed text. Supplied values come back with line
// endings folded to "\n", tabs expanded to four spaces and other control
// characters removed.
func (t *Textarea) Value() string {
	return t.input.Value()
}

// Hovered reports whether the textarea is between a focus and a blur.
func (t *Textarea) Hovered() bool {
	return t.hover
}

// Focused reports whether the underlying editor has input focus.
func (t *Textarea) Focused() bool {
	return t.input.Focused()
}

// Controlled reports whether the caller owns the value.
func (t *Textarea) Controlled() bool {
	return t.controlled
}

// Props returns a copy of the current props.
func (t *Textarea) Props() TextareaProps {
	props := t.props
	props.Value = cloneString(props.Value)
	props.Appliers = append([]StyleFunc(nil), props.Appliers...)
	return props
}

// WithStatus changes the status.
func (t *Textarea) WithStatus(status Status) *Textarea {
	t.props.Status = status
	return t
}

// WithPlaceholder changes the placeholder.
func (t *Textarea) WithPlaceholder(placeholder string) *Textarea {
	t.props.Placeholder = placeholder
	t.input.Placeholder = placeholder
	return t
}

// WithAppliers adds container styling on top of the textarea's own.
func (t *Textarea) WithAppliers(appliers ...StyleFunc) *Textarea {
	t.props.Appliers = append(append([]StyleFunc(nil), t.props.Appliers...), appliers...)
	t.AddAppliers(appliers...)
	return t
}

// Colors returns the status colours of the textarea under theme.
func (t *Textarea) Colors(theme Theme) StatusColors {
	return ColorsFor(theme.Palette, t.props.Status)
}

// BorderColor returns the border colour the container is drawn with.
// The error border is kept in every state so errors stay visible.
func (t *Textarea) BorderColor(theme Theme) lipgloss.AdaptiveColor {
	if t.props.Disabled && t.props.Status != StatusError {
		return DisabledColors(theme.Palette).Border
	}
	return t.Colors(theme).BorderFor(t.hover)
}

// View renders the textarea with the default theme.
func (t *Textarea) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the textarea with the theme and layout in ctx.
func (t *Textarea) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme.Normalize()
	colors := t.Colors(theme)
	paddingX := PaddingValue(theme, SpacingSizeExtraSmall)

	width, height := t.layout(ctx)
	contentWidth := width - lipgloss.Width(theme.Borders.Rounded.Left) - lipgloss.Width(theme.Borders.Rounded.Right)

	t.input.FocusedStyle, t.input.BlurredStyle = editorStyles(theme, colors, t.props.Disabled)
	t.input.SetWidth(max(1, contentWidth-2*paddingX))
	t.input.SetHeight(height)

	style := lipgloss.NewStyle().
		Border(theme.Borders.Rounded).
		BorderForeground(t.BorderColor(theme)).
		Foreground(colors.Text).
		Padding(0, paddingX).
		Width(contentWidth)

	if t.props.Disabled {
		style = style.
			Background(DisabledColors(theme.Palette).Background).
			Faint(true)
	}

	style = t.ApplyStrategy(style, theme)
	return style.Render(t.input.View())
}

// layout resolves the outer width and the content height in cells.
func (t *Textarea) layout(ctx RenderContext) (int, int) {
	width := naturalTextareaColumns
	if d, err := ParseDimension(t.props.Width); err == nil {
		if cols := d.Columns(ctx.ParentWidth); cols > 0 {
			width = cols
		}
	}
	if ctx.ParentWidth > 0 {
		if limit := ctx.ParentWidth * maxTextareaParentPercent / 100; width > limit {
			width = limit
		}
	}
	width = max(width, minTextareaColumns)

	height := fallbackTextareaRows
	if d, err := ParseDimension(t.props.MinHeight); err == nil && !d.IsAuto() {
		if rows := d.Rows(0); rows > 0 {
			height = rows
		}
	}
	height = max(height, t.input.LineCount())
	if t.input.MaxHeight > 0 {
		height = min(height, t.input.MaxHeight)
	}

	return ctx.Constraints.Constrain(width, height)
}

func editorStyles(theme Theme, colors StatusColors, disabled bool) (textarea.Style, textarea.Style) {
	text := lipgloss.NewStyle().Foreground(colors.Text)
	muted := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base)
	if disabled {
		text = text.Faint(true)
	}

	blurred := textarea.Style{
		Base:             lipgloss.NewStyle(),
		CursorLine:       text,
		CursorLineNumber: muted,
		EndOfBuffer:      muted,
		LineNumber:       muted,
		Placeholder:      muted,
		Prompt:           lipgloss.NewStyle().Foreground(colors.Border),
		Text:             text,
	}

	focused := blurred
	focused.CursorLineNumber = muted.Foreground(colors.HoverBorder)
	focused.Prompt = lipgloss.NewStyle().Foreground(colors.HoverBorder)

	return focused, blurred
}
