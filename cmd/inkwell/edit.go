package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkwell/internal/tui/editor"
	inkerrors "github.com/alexisbeaulieu97/inkwell/pkg/errors"
)

var editProgramRunner = runEditProgram

func newEditCmd() *cobra.Command {
	flags := &textareaFlags{}
	var title string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit text in an interactive textarea and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
				return inkerrors.NewUsageError("edit", "an interactive terminal is required; use render instead")
			}

			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			// Anything written to the terminal would tear the UI.
			log, err := flags.logger(io.Discard)
			if err != nil {
				return err
			}
			defer log.Close()

			warnUnknownStatus(log, cfg)

			model := editor.NewModel(editor.Options{
				Props:  cfg.TextareaProps(),
				Theme:  cfg.ResolveTheme(),
				Title:  title,
				Logger: log,
			})

			value, err := editProgramRunner(model)
			if err != nil {
				log.Error(err, "editor failed")
				return fmt.Errorf("run editor: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&title, "title", "Textarea", "Title shown above the textarea")

	return cmd
}

func runEditProgram(model editor.Model) (string, error) {
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(editor.Model); ok {
		return m.Value(), nil
	}
	return model.Value(), nil
}
