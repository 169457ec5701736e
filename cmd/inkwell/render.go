package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkwell/internal/ui/components"
)

type renderOptions struct {
	ParentWidth int
	Focused     bool
}

func newRenderCmd() *cobra.Command {
	flags := &textareaFlags{}
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the textarea once to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			log, err := flags.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer log.Close()

			warnUnknownStatus(log, cfg)

			width := opts.ParentWidth
			if !cmd.Flags().Changed("parent-width") {
				width = terminalWidth(cmd.OutOrStdout())
			}

			ta := components.NewTextarea(cfg.TextareaProps())
			if opts.Focused {
				ta.Focus()
			}

			ctx := components.DefaultContext().
				WithTheme(cfg.ResolveTheme()).
				WithParentWidth(width)

			log.WithFields(map[string]any{"parent_width": width, "status": ta.Props().Status.String()}).Debug("rendering textarea")
			fmt.Fprintln(cmd.OutOrStdout(), ta.ViewWithContext(ctx))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&opts.ParentWidth, "parent-width", 0, "Width to lay out against (defaults to the terminal width)")
	cmd.Flags().BoolVar(&opts.Focused, "focused", false, "Render in the focused state")

	return cmd
}
