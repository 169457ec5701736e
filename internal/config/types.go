package config

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkwell/internal/ui/components"
)

// Config represents the full inkwell configuration document.
type Config struct {
	Theme    ThemeConfig    `yaml:"theme,omitempty"`
	Textarea TextareaConfig `yaml:"textarea,omitempty"`
}

// ThemeConfig selects a built-in theme and optionally overrides palette slots.
type ThemeConfig struct {
	Name    string            `yaml:"name,omitempty" validate:"omitempty,theme_name"`
	Palette map[string]string `yaml:"palette,omitempty" validate:"omitempty,dive,keys,palette_slot,endkeys,hexcolor"`
}

// TextareaConfig holds the textarea props that can be written in a file.
// Status is deliberately not validated: unknown statuses render with the
// default colours.
type TextareaConfig struct {
	Value           *string `yaml:"value,omitempty"`
	InitialValue    string  `yaml:"initial_value,omitempty"`
	Placeholder     string  `yaml:"placeholder,omitempty"`
	Status          string  `yaml:"status,omitempty"`
	Width           string  `yaml:"width,omitempty" validate:"omitempty,dimension"`
	MinHeight       string  `yaml:"min_height,omitempty" validate:"omitempty,dimension"`
	Disabled        bool    `yaml:"disabled,omitempty"`
	ReadOnly        bool    `yaml:"read_only,omitempty"`
	CharLimit       int     `yaml:"char_limit,omitempty" validate:"min=0"`
	MaxHeight       int     `yaml:"max_height,omitempty" validate:"min=0,max=1000"`
	ShowLineNumbers bool    `yaml:"show_line_numbers,omitempty"`
	Prompt          string  `yaml:"prompt,omitempty" validate:"max=8"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{Name: components.ThemeNameDefault},
		Textarea: TextareaConfig{
			Placeholder: "Start typing…",
			Width:       components.DefaultTextareaWidth,
			MinHeight:   components.DefaultTextareaMinHeight,
		},
	}
}

// ResolveTheme returns the named theme with palette overrides applied.
// Invalid entries are skipped; ValidateConfig reports them.
func (c *Config) ResolveTheme() components.Theme {
	if c == nil {
		return components.DefaultTheme()
	}

	theme, _ := components.ThemeByName(c.Theme.Name)
	if len(c.Theme.Palette) == 0 {
		return theme
	}

	slots := make([]string, 0, len(c.Theme.Palette))
	for slot := range c.Theme.Palette {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	palette := theme.Palette
	for _, slot := range slots {
		hex := c.Theme.Palette[slot]
		palette, _ = palette.Override(slot, lipgloss.AdaptiveColor{Light: hex, Dark: hex})
	}
	return theme.WithPalette(palette)
}

// StatusKnown reports whether the configured status names a real status.
func (c *Config) StatusKnown() bool {
	if c == nil {
		return true
	}
	_, ok := components.ParseStatus(c.Textarea.Status)
	return ok
}

// TextareaProps converts the textarea section into component props.
// Callbacks are left for the caller to attach.
func (c *Config) TextareaProps() components.TextareaProps {
	if c == nil {
		return components.TextareaProps{}
	}

	tc := c.Textarea
	status, _ := components.ParseStatus(tc.Status)

	var value *string
	if tc.Value != nil {
		v := *tc.Value
		value = &v
	}

	return components.TextareaProps{
		Value:        value,
		InitialValue: tc.InitialValue,
		Placeholder:  tc.Placeholder,
		Status:       status,
		Width:        tc.Width,
		MinHeight:    tc.MinHeight,
		Disabled:     tc.Disabled,
		ReadOnly:     tc.ReadOnly,
		Attributes: components.TextareaAttributes{
			CharLimit:       tc.CharLimit,
			MaxHeight:       tc.MaxHeight,
			ShowLineNumbers: tc.ShowLineNumbers,
			Prompt:          tc.Prompt,
		},
	}
}
