package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkwell/internal/config"
	inkerrors "github.com/alexisbeaulieu97/inkwell/pkg/errors"
)

func parseFlags(t *testing.T, args ...string) (*cobra.Command, *textareaFlags) {
	t.Helper()

	flags := &textareaFlags{}
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, flags
}

func TestLoadWithoutFlagsUsesDefaults(t *testing.T) {
	cmd, flags := parseFlags(t)

	cfg, err := flags.load(cmd)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesOnlyChangedFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	contents := `textarea:
  placeholder: "from file"
  status: success
  width: "60"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cmd, flags := parseFlags(t, "--config", path, "--status", "error", "--value", "", "--read-only")

	cfg, err := flags.load(cmd)
	require.NoError(t, err)
	require.Equal(t, "from file", cfg.Textarea.Placeholder)
	require.Equal(t, "60", cfg.Textarea.Width)
	require.Equal(t, "error", cfg.Textarea.Status)
	require.True(t, cfg.Textarea.ReadOnly)
	require.NotNil(t, cfg.Textarea.Value, "an empty --value still selects controlled mode")
	require.Empty(t, *cfg.Textarea.Value)
}

func TestLoadReportsConfigErrors(t *testing.T) {
	cmd, flags := parseFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := flags.load(cmd)
	var parseErr *inkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadValidatesFlagValues(t *testing.T) {
	cmd, flags := parseFlags(t, "--theme", "neon")

	_, err := flags.load(cmd)
	var validationErr *inkerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme.name", validationErr.Field)
}

func TestTerminalWidthOfNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	require.Zero(t, terminalWidth(f))
	require.Zero(t, terminalWidth(nil))
}
