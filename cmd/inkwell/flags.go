package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/inkwell/internal/config"
	"github.com/alexisbeaulieu97/inkwell/internal/logger"
)

// isTerminal is swapped out in tests.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// textareaFlags are shared by edit and render. Only flags the user actually
// set override the config file.
type textareaFlags struct {
	ConfigPath   string
	Theme        string
	Status       string
	Width        string
	MinHeight    string
	Placeholder  string
	Value        string
	InitialValue string
	Disabled     bool
	ReadOnly     bool
	CharLimit    int
	LineNumbers  bool
	LogFile      string
	LogLevel     string
}

func (f *textareaFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "Path to configuration file")
	fs.StringVar(&f.Theme, "theme", "", "Theme name (default, light, dark)")
	fs.StringVar(&f.Status, "status", "", "Status colour (default, secondary, success, warning, error)")
	fs.StringVar(&f.Width, "width", "", "Container width, e.g. 60, 30rem, 80%")
	fs.StringVar(&f.MinHeight, "min-height", "", "Minimum content height, e.g. 6, 6.25rem")
	fs.StringVar(&f.Placeholder, "placeholder", "", "Text shown while empty")
	fs.StringVar(&f.Value, "value", "", "Controlled value")
	fs.StringVar(&f.InitialValue, "initial-value", "", "Initial value of an uncontrolled textarea")
	fs.BoolVar(&f.Disabled, "disabled", false, "Disable the textarea")
	fs.BoolVar(&f.ReadOnly, "read-only", false, "Make the textarea read-only")
	fs.IntVar(&f.CharLimit, "char-limit", 0, "Maximum number of characters (0 for no limit)")
	fs.BoolVar(&f.LineNumbers, "line-numbers", false, "Show line numbers")
	fs.StringVar(&f.LogFile, "log-file", "", "Append logs to this file")
	fs.StringVar(&f.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// load reads the config file, if any, then applies the flags the user set.
func (f *textareaFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		parsed, err := config.ParseConfig(f.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	changed := cmd.Flags().Changed
	tc := &cfg.Textarea
	if changed("theme") {
		cfg.Theme.Name = f.Theme
	}
	if changed("status") {
		tc.Status = f.Status
	}
	if changed("width") {
		tc.Width = f.Width
	}
	if changed("min-height") {
		tc.MinHeight = f.MinHeight
	}
	if changed("placeholder") {
		tc.Placeholder = f.Placeholder
	}
	if changed("value") {
		value := f.Value
		tc.Value = &value
	}
	if changed("initial-value") {
		tc.InitialValue = f.InitialValue
	}
	if changed("disabled") {
		tc.Disabled = f.Disabled
	}
	if changed("read-only") {
		tc.ReadOnly = f.ReadOnly
	}
	if changed("char-limit") {
		tc.CharLimit = f.CharLimit
	}
	if changed("line-numbers") {
		tc.ShowLineNumbers = f.LineNumbers
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logger builds the command logger. Without --log-file, output goes to fallback.
func (f *textareaFlags) logger(fallback io.Writer) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         f.LogLevel,
		HumanReadable: f.LogFile == "",
		Writer:        fallback,
		File:          f.LogFile,
	})
}

func warnUnknownStatus(log *logger.Logger, cfg *config.Config) {
	if cfg.StatusKnown() {
		return
	}
	log.WithFields(map[string]any{"status": cfg.Textarea.Status}).Warn("unknown status, using default colours")
}

// terminalWidth returns the width of w when it is a terminal, 0 otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(f.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
