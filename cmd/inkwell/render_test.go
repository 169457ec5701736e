package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	inkerrors "github.com/alexisbeaulieu97/inkwell/pkg/errors"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func topBorderWidth(t *testing.T, output string) int {
	t.Helper()

	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "╭") {
			return lipgloss.Width(line)
		}
	}
	t.Fatalf("no border in output:\n%s", output)
	return 0
}

func TestRenderDrawsPlaceholder(t *testing.T) {
	out, _, err := executeRoot(t, "render", "--placeholder", "Write a note", "--parent-width", "80")
	require.NoError(t, err)
	require.Contains(t, out, "Write a note")
	require.Equal(t, 40, topBorderWidth(t, out))
}

func TestRenderResolvesWidthAgainstParent(t *testing.T) {
	out, _, err := executeRoot(t, "render", "--width", "50%", "--parent-width", "100")
	require.NoError(t, err)
	require.Equal(t, 50, topBorderWidth(t, out))
}

func TestRenderDrawsValue(t *testing.T) {
	out, _, err := executeRoot(t, "render", "--value", "controlled text", "--parent-width", "80")
	require.NoError(t, err)
	require.Contains(t, out, "controlled text")
}

func TestRenderWarnsOnUnknownStatus(t *testing.T) {
	out, errOut, err := executeRoot(t, "render", "--status", "loud", "--parent-width", "80")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.Contains(t, errOut, "unknown status")
	require.Contains(t, errOut, "loud")
}

func TestRenderRejectsMalformedWidth(t *testing.T) {
	_, _, err := executeRoot(t, "render", "--width", "wide")
	require.Error(t, err)

	var validationErr *inkerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "textarea.width", validationErr.Field)
}

func TestRenderUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	contents := `theme:
  name: light
textarea:
  initial_value: "from config"
  width: "30"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	out, _, err := executeRoot(t, "render", "--config", path, "--parent-width", "80")
	require.NoError(t, err)
	require.Contains(t, out, "from config")
	require.Equal(t, 30, topBorderWidth(t, out))
}

func TestRenderWritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "inkwell.log")

	_, errOut, err := executeRoot(t, "render", "--status", "loud", "--log-file", logPath, "--parent-width", "80")
	require.NoError(t, err)
	require.Empty(t, errOut)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "unknown status")
}

func TestRenderRejectsOutOfRangeWidth(t *testing.T) {
	_, _, err := executeRoot(t, "render", "--width", "1e9")
	require.Error(t, err)

	var validationErr *inkerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "textarea.width", validationErr.Field)
}

func TestRenderBoundsWidthWithoutParent(t *testing.T) {
	out, _, err := executeRoot(t, "render", "--width", "5000")
	require.NoError(t, err)
	require.Equal(t, 1000, topBorderWidth(t, out))
}
